package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Session owns one mutable parameter configuration. Only the current values
// are stored; bounds always come from the model's default ranges and no run
// history is kept.
type Session struct {
	ID         uuid.UUID `gorm:"primaryKey;"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Name       string                         `gorm:"uniqueIndex;not null"`
	Parameters *JSONField[map[string]float64] `gorm:"type:jsonb;not null"`
}

type SessionList []Session

func (s Session) String() string {
	val, _ := json.Marshal(s)
	return string(val)
}

func NewSessionFromId(id uuid.UUID) *Session {
	return &Session{ID: id}
}
