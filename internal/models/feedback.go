package models

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is a 1-5 rating left by one user about another, optionally tied
// to an accepted swap. A nil SwapID is itself a grouping key: at most one
// swap-less feedback may exist per (from, to) pair. Records are never
// updated or deleted once written.
type Feedback struct {
	ID        string    `gorm:"size:20;primaryKey" json:"id"`
	FromID    uuid.UUID `gorm:"type:uuid;not null;index" json:"from_id"`
	ToID      uuid.UUID `gorm:"type:uuid;not null;index" json:"to_id"`
	SwapID    *string   `gorm:"size:20;index" json:"swap_id,omitempty"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"size:300" json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (Feedback) TableName() string { return "feedbacks" }
