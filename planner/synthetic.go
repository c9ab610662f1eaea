package planner

import (
	"fmt"
	"strings"
	"unicode"
)

// fallbackImage is served for every destination outside the curated set.
const fallbackImage = "https://images.unsplash.com/photo-1469854523086-cc02fe5d8800?q=80&w=3840&auto=format&fit=crop"

// TitleCase capitalizes the first letter of every whitespace-delimited word and
// leaves all other characters unchanged. Letters after punctuation are not
// touched, so "st. john's" becomes "St. John's".
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	startOfWord := true
	for _, r := range s {
		if unicode.IsSpace(r) {
			startOfWord = true
			b.WriteRune(r)
			continue
		}
		if startOfWord {
			b.WriteRune(unicode.ToUpper(r))
			startOfWord = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Synthesize builds a plausible catalog for a destination we know nothing
// about, by templating the title-cased city name into fixed venue patterns.
// Same input, same catalog, every time.
func Synthesize(destination string) CityCatalog {
	city := TitleCase(destination)
	return CityCatalog{
		Venues: map[string][]string{
			CategoryFood: {
				fmt.Sprintf("The %s Bistro", city),
				fmt.Sprintf("%s Spice Kitchen", city),
				fmt.Sprintf("Royal %s Grill", city),
				fmt.Sprintf("Taste of %s Central", city),
				fmt.Sprintf("The Golden Spoon %s", city),
				fmt.Sprintf("%s Street Food Hub", city),
			},
			CategoryTourist: {
				fmt.Sprintf("%s National Museum", city),
				fmt.Sprintf("Historic Old Town of %s", city),
				fmt.Sprintf("%s City Park", city),
				fmt.Sprintf("The Grand %s Monument", city),
				fmt.Sprintf("%s Botanical Gardens", city),
				fmt.Sprintf("Sunset Viewpoint at %s", city),
			},
			CategoryShopping: {
				fmt.Sprintf("%s Central Market", city),
				fmt.Sprintf("The Grand %s Mall", city),
				fmt.Sprintf("%s Artisan Bazaar", city),
				fmt.Sprintf("Downtown %s Plaza", city),
				fmt.Sprintf("%s Souvenir Lane", city),
			},
		},
		Image: fallbackImage,
	}
}
