package dto

import "github.com/ksrami99/SkillSwap/internal/models"

// UpdateProfileRequest is a partial patch of the caller's own profile.
// Pointer fields distinguish "leave unchanged" from "set to zero value".
// Email, password, role and visibility are deliberately absent: email and
// password change through auth flows, role is never self-assigned, and
// visibility has its own toggle endpoint.
type UpdateProfileRequest struct {
	Name          *string   `json:"name" validate:"omitempty,min=2,max=50"`
	Location      *string   `json:"location" validate:"omitempty,max=100"`
	ProfilePhoto  *string   `json:"profile_photo" validate:"omitempty,url"`
	SkillsOffered *[]string `json:"skills_offered" validate:"omitempty,max=10,dive,min=1,max=100"`
	SkillsWanted  *[]string `json:"skills_wanted" validate:"omitempty,max=10,dive,min=1,max=100"`
	Availability  *string   `json:"availability" validate:"omitempty,oneof=weekdays weekends evenings mornings anytime"`
}

// UserResponse decorates a user record with its derived aggregate rating.
type UserResponse struct {
	*models.User
	Rating float64 `json:"rating"`
}
