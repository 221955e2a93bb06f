package entity

import (
	"time"

	"github.com/google/uuid"
)

// Lead is a visitor who completed the qualification script. Duplicates are
// possible: saving is not idempotent across sessions.
type Lead struct {
	Id        uuid.UUID
	Name      string
	Phone     string
	UserType  string
	SessionId string
	CreatedAt time.Time
}
