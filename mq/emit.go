package mq

import (
	"context"
	"encoding/json"
	"log"

	"sanchaari/rdx"
)

const channel = "sanchaari-events"

// Event describes a domain event published for interested consumers
// (analytics, cache warmers). Best-effort: failures are logged, never
// surfaced to the request.
type Event struct {
	Name     string `json:"name"`
	EntityID string `json:"entity_id"`
	UserID   string `json:"user_id"`
}

// Emit publishes an event to the Redis event channel.
func Emit(ctx context.Context, name, entityID, userID string) {
	data, err := json.Marshal(Event{Name: name, EntityID: entityID, UserID: userID})
	if err != nil {
		log.Printf("mq: failed to marshal event %s: %v", name, err)
		return
	}
	if err := rdx.Conn.Publish(ctx, channel, data).Err(); err != nil {
		log.Printf("mq: failed to publish event %s: %v", name, err)
	}
}
