package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Availability string

const (
	AvailabilityWeekdays Availability = "weekdays"
	AvailabilityWeekends Availability = "weekends"
	AvailabilityEvenings Availability = "evenings"
	AvailabilityMornings Availability = "mornings"
	AvailabilityAnytime  Availability = "anytime"
)

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is a marketplace member. Email is stored lowercase so uniqueness is
// case-insensitive. The aggregate rating is derived from the feedback table
// on every read and never stored here.
type User struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string                      `gorm:"size:50;not null" json:"name"`
	Email         string                      `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password      string                      `gorm:"not null" json:"-"`
	Location      string                      `gorm:"size:100" json:"location,omitempty"`
	ProfilePhoto  string                      `gorm:"size:500" json:"profile_photo,omitempty"`
	SkillsOffered datatypes.JSONSlice[string] `json:"skills_offered"`
	SkillsWanted  datatypes.JSONSlice[string] `json:"skills_wanted"`
	Availability  Availability                `gorm:"size:20;not null;default:'anytime'" json:"availability"`
	Visibility    Visibility                  `gorm:"size:10;not null;default:'public'" json:"visibility"`
	Role          Role                        `gorm:"size:20;not null;default:'user'" json:"role"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}
