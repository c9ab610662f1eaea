package models

import (
	"time"

	"sanchaari/planner"
)

// Itinerary is the persisted travel plan. Immutable after creation apart
// from UpdatedAt; only its owner may read or delete it.
type Itinerary struct {
	ItineraryID string            `json:"id" bson:"itineraryid"`
	UserID      string            `json:"-" bson:"userid"`
	Destination string            `json:"destination" bson:"destination"`
	Days        int               `json:"days" bson:"days"`
	Priorities  [3]string         `json:"priorities" bson:"priorities"`
	Items       []planner.DayPlan `json:"items" bson:"items"`
	CreatedAt   time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt   *time.Time        `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}
