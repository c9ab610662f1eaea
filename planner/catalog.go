package planner

import "strings"

// Fixed activity categories a priority can point at.
const (
	CategoryFood     = "Food Spots"
	CategoryTourist  = "Tourist Spots"
	CategoryShopping = "Shopping"
)

// CityCatalog maps a category to its candidate venues for one destination.
type CityCatalog struct {
	Venues map[string][]string `json:"venues" bson:"venues"`
	Image  string              `json:"image" bson:"image"`
}

// curatedCatalogs holds the hand-picked destinations. Read-only after init,
// safe to share across requests.
var curatedCatalogs = map[string]CityCatalog{
	"kochi": {
		Venues: map[string][]string{
			CategoryFood:     {"B for Biriyani", "Pai Dosa", "Kashi Art Cafe", "Grand Pavilion", "Paragon Restaurant", "Dhe Puttu"},
			CategoryTourist:  {"Fort Kochi Beach", "Chinese Fishing Nets", "Mattancherry Palace", "Jewish Synagogue", "Marine Drive", "Hill Palace"},
			CategoryShopping: {"Lulu Mall", "Jew Town", "Broadway Market", "Centre Square Mall", "Oberon Mall"},
		},
		Image: "https://images.unsplash.com/photo-1590050752117-238cb0fb12b1?q=80&w=3840&auto=format&fit=crop",
	},
	"paris": {
		Venues: map[string][]string{
			CategoryFood:     {"Le Meurice", "L'Ambroisie", "Café de Flore", "Pierre Hermé", "Le Jules Verne"},
			CategoryTourist:  {"Eiffel Tower", "Louvre Museum", "Notre-Dame Cathedral", "Arc de Triomphe", "Sacré-Cœur"},
			CategoryShopping: {"Champs-Élysées", "Galeries Lafayette", "Le Marais", "Avenue Montaigne"},
		},
		Image: "https://images.unsplash.com/photo-1499856871940-a09627c6dcf6?q=80&w=3840&auto=format&fit=crop",
	},
	"tokyo": {
		Venues: map[string][]string{
			CategoryFood:     {"Sukiyabashi Jiro", "Ichiran Ramen", "Robot Restaurant", "Tsukiji Outer Market"},
			CategoryTourist:  {"Senso-ji Temple", "Tokyo Skytree", "Shibuya Crossing", "Meiji Shrine", "TeamLab Planets"},
			CategoryShopping: {"Ginza", "Harajuku (Takeshita Street)", "Akihabara", "Shinjuku"},
		},
		Image: "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?q=80&w=3840&auto=format&fit=crop",
	},
	"london": {
		Venues: map[string][]string{
			CategoryFood:     {"Dishoom", "The Ledbury", "Sketch", "Borough Market"},
			CategoryTourist:  {"London Eye", "Tower Bridge", "British Museum", "Buckingham Palace"},
			CategoryShopping: {"Oxford Street", "Harrods", "Covent Garden", "Camden Market"},
		},
		Image: "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?q=80&w=3840&auto=format&fit=crop",
	},
	"dubai": {
		Venues: map[string][]string{
			CategoryFood:     {"At.mosphere", "Pierchic", "Ravi Restaurant", "Al Ustad Special Kebab"},
			CategoryTourist:  {"Burj Khalifa", "The Dubai Mall", "Palm Jumeirah", "Desert Safari"},
			CategoryShopping: {"Dubai Mall", "Mall of the Emirates", "Gold Souk", "Souk Madinat Jumeirah"},
		},
		Image: "https://images.unsplash.com/photo-1512453979798-5ea904ac6605?q=80&w=3840&auto=format&fit=crop",
	},
	"new york": {
		Venues: map[string][]string{
			CategoryFood:     {"Katz's Delicatessen", "Le Bernardin", "Joe's Pizza", "Peter Luger Steak House"},
			CategoryTourist:  {"Statue of Liberty", "Central Park", "Times Square", "Empire State Building"},
			CategoryShopping: {"Fifth Avenue", "SoHo", "Macy's Herald Square", "Chelsea Market"},
		},
		Image: "https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9?q=80&w=3840&auto=format&fit=crop",
	},
	"rome": {
		Venues: map[string][]string{
			CategoryFood:     {"La Pergola", "Roscioli", "Da Enzo al 29", "Pizzarium"},
			CategoryTourist:  {"Colosseum", "Trevi Fountain", "Pantheon", "Vatican City"},
			CategoryShopping: {"Via del Corso", "Via Condotti", "Porta Portese Market"},
		},
		Image: "https://images.unsplash.com/photo-1552832230-c0197dd311b5?q=80&w=3840&auto=format&fit=crop",
	},
	"bali": {
		Venues: map[string][]string{
			CategoryFood:     {"Locavore", "Merah Putih", "Naughty Nuri's", "Potato Head Beach Club"},
			CategoryTourist:  {"Uluwatu Temple", "Sacred Monkey Forest", "Tegallalang Rice Terrace", "Seminyak Beach"},
			CategoryShopping: {"Ubud Art Market", "Seminyak Village", "Love Anchor Canggu"},
		},
		Image: "https://images.unsplash.com/photo-1537996194471-e657df975ab4?q=80&w=3840&auto=format&fit=crop",
	},
	"sydney": {
		Venues: map[string][]string{
			CategoryFood:     {"Quay", "The Grounds of Alexandria", "Mr. Wong", "Icebergs Dining Room"},
			CategoryTourist:  {"Sydney Opera House", "Bondi Beach", "Sydney Harbour Bridge", "Taronga Zoo"},
			CategoryShopping: {"Queen Victoria Building", "Pitt Street Mall", "The Rocks Markets"},
		},
		Image: "https://images.unsplash.com/photo-1506973035872-a4ec16b8e8d9?q=80&w=3840&auto=format&fit=crop",
	},
}

// Lookup returns the curated catalog for a destination, if there is one.
// The key is the destination lowercased and trimmed.
func Lookup(destination string) (CityCatalog, bool) {
	catalog, ok := curatedCatalogs[strings.ToLower(strings.TrimSpace(destination))]
	return catalog, ok
}
