package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type EventLog struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Event     string         `gorm:"type:varchar(64);not null;index"`
	Details   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"default:now();not null;index"`
}

func (EventLog) TableName() string {
	return "event_logs"
}
