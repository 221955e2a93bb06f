package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventLog is one append-only audit record. Details is an opaque JSON
// document; writes are best-effort and never block a chat turn.
type EventLog struct {
	Id        uuid.UUID
	Event     string
	Details   map[string]interface{}
	CreatedAt time.Time
}
