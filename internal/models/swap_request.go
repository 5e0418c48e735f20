package models

import (
	"time"

	"github.com/google/uuid"
)

type SwapStatus string

const (
	SwapStatusPending  SwapStatus = "pending"
	SwapStatusAccepted SwapStatus = "accepted"
	SwapStatusRejected SwapStatus = "rejected"
)

// SwapRequest is a proposal by the requester to exchange one skill for
// another with the recipient. Status moves exactly once, pending to accepted
// or rejected; both are terminal. Requester and recipient ids are weak
// references: deleting a user leaves its requests in place.
//
// IDs are xids, which sort by creation time, so ordering by (created_at, id)
// descending yields a stable newest-first listing even across equal
// timestamps.
type SwapRequest struct {
	ID             string     `gorm:"size:20;primaryKey" json:"id"`
	RequesterID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"requester_id"`
	RecipientID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"recipient_id"`
	OfferedSkill   string     `gorm:"size:100;not null" json:"offered_skill"`
	RequestedSkill string     `gorm:"size:100;not null" json:"requested_skill"`
	Message        string     `gorm:"size:200" json:"message,omitempty"`
	Status         SwapStatus `gorm:"size:10;not null;default:'pending';index" json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (SwapRequest) TableName() string { return "swap_requests" }
