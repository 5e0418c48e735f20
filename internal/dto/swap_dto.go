package dto

import "github.com/ksrami99/SkillSwap/internal/models"

type CreateSwapRequest struct {
	OfferedSkill   string `json:"offered_skill" validate:"required,min=1,max=100"`
	RequestedSkill string `json:"requested_skill" validate:"required,min=1,max=100"`
	Message        string `json:"message" validate:"omitempty,max=200"`
}

type UpdateSwapRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

// SwapListResponse splits the caller's requests into the two disjoint
// directions, each newest-first.
type SwapListResponse struct {
	Sent     []models.SwapRequest `json:"sent"`
	Received []models.SwapRequest `json:"received"`
}
