package planner

import "fmt"

// DisplaySlot pairs an assignment with the narrative line shown to the user.
type DisplaySlot struct {
	Type     string `json:"type"`
	Place    string `json:"place"`
	Headline string `json:"headline"`
	Body     string `json:"body"`
}

// DisplayDay is a rendering-ready day: same places as the stored DayPlan,
// wrapped in display copy.
type DisplayDay struct {
	Day       int         `json:"day"`
	Morning   DisplaySlot `json:"morning"`
	Afternoon DisplaySlot `json:"afternoon"`
	Evening   DisplaySlot `json:"evening"`
}

// Render turns stored plans into display records. The place strings pass
// through untouched, only the surrounding copy is added.
func Render(destination string, plans []DayPlan) []DisplayDay {
	city := TitleCase(destination)
	out := make([]DisplayDay, 0, len(plans))
	for _, p := range plans {
		out = append(out, DisplayDay{
			Day: p.Day,
			Morning: DisplaySlot{
				Type:     p.Morning.Type,
				Place:    p.Morning.Place,
				Headline: fmt.Sprintf("Morning: %s", p.Morning.Type),
				Body:     fmt.Sprintf("Start your day fresh! We recommend you visit %s. It's a great place to begin your exploration of %s.", p.Morning.Place, city),
			},
			Afternoon: DisplaySlot{
				Type:     p.Afternoon.Type,
				Place:    p.Afternoon.Place,
				Headline: fmt.Sprintf("Afternoon: %s", p.Afternoon.Type),
				Body:     fmt.Sprintf("Take a break and head over to %s. Perfect for the afternoon vibe and crowd favorite.", p.Afternoon.Place),
			},
			Evening: DisplaySlot{
				Type:     p.Evening.Type,
				Place:    p.Evening.Place,
				Headline: fmt.Sprintf("Evening: %s", p.Evening.Type),
				Body:     fmt.Sprintf("End your day at %s. A great way to wrap up Day %d and relax.", p.Evening.Place, p.Day),
			},
		})
	}
	return out
}
