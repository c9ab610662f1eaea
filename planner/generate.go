package planner

import "fmt"

// MaxDays is the request-level cap on itinerary length. Generate itself is
// total over any positive day count; handlers enforce the range.
const (
	MinDays = 1
	MaxDays = 30
)

// ActivityAssignment is one time slot: the activity category and the venue
// picked for it.
type ActivityAssignment struct {
	Type  string `json:"type" bson:"type"`
	Place string `json:"place" bson:"place"`
}

// DayPlan is one day's morning/afternoon/evening assignments.
type DayPlan struct {
	Day       int                `json:"day" bson:"day"`
	Morning   ActivityAssignment `json:"morning" bson:"morning"`
	Afternoon ActivityAssignment `json:"afternoon" bson:"afternoon"`
	Evening   ActivityAssignment `json:"evening" bson:"evening"`
}

// Generate derives a day-by-day plan from the destination, day count and the
// three ranked priorities. It is pure and deterministic: no randomness, no
// I/O, identical inputs give identical plans.
//
// Mornings take priority one and afternoons priority two; on even days the
// two swap so a multi-day trip doesn't read the same every day. Evenings are
// always priority three. Venues rotate through the catalog list with a
// per-slot offset so short lists don't repeat within a day.
func Generate(destination string, days int, priorities [3]string) []DayPlan {
	catalog, ok := Lookup(destination)
	if !ok {
		catalog = Synthesize(destination)
	}

	plans := make([]DayPlan, 0, days)
	for i := 1; i <= days; i++ {
		morning, afternoon := priorities[0], priorities[1]
		if i%2 == 0 {
			morning, afternoon = afternoon, morning
		}
		evening := priorities[2]

		plans = append(plans, DayPlan{
			Day:       i,
			Morning:   ActivityAssignment{Type: morning, Place: pickVenue(catalog, morning, destination, i, 0)},
			Afternoon: ActivityAssignment{Type: afternoon, Place: pickVenue(catalog, afternoon, destination, i, 1)},
			Evening:   ActivityAssignment{Type: evening, Place: pickVenue(catalog, evening, destination, i, 2)},
		})
	}
	return plans
}

// pickVenue selects list[(day+offset) mod len] for the category, or a
// deterministic placeholder when the category has no venues.
func pickVenue(catalog CityCatalog, category, destination string, day, offset int) string {
	list := catalog.Venues[category]
	if len(list) == 0 {
		return fmt.Sprintf("%s near %s", category, destination)
	}
	return list[(day+offset)%len(list)]
}
