package model

import (
	"time"

	"github.com/google/uuid"
)

type Lead struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:text;not null"`
	Phone     string    `gorm:"type:varchar(32);not null;index"`
	UserType  string    `gorm:"type:varchar(16)"`
	SessionId string    `gorm:"type:text;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Lead) TableName() string {
	return "leads"
}
