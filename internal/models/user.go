// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRole represents the platform-wide role of a user.
type UserRole string

const (
	// RoleUser is the default role for regular members.
	RoleUser UserRole = "user"
	// RoleAdmin grants access to the administrative API surface.
	RoleAdmin UserRole = "admin"
)

// User represents a member of the skill-swap platform.
type User struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	Email           string    `gorm:"size:255;unique;not null" json:"email"`
	PasswordHash    string    `gorm:"size:255;not null" json:"-"`
	Location        string    `gorm:"size:255" json:"location,omitempty"`
	ProfilePhotoURL string    `gorm:"size:255" json:"profile_photo_url,omitempty"`
	// Availability is free text, e.g. "weekends, evenings".
	Availability    string    `gorm:"type:text" json:"availability,omitempty"`
	ProfileIsPublic bool      `gorm:"not null;default:true" json:"profile_is_public"`
	IsBanned        bool      `gorm:"not null;default:false" json:"is_banned"`
	Role            UserRole  `gorm:"type:varchar(20);not null;default:'user';index" json:"role"`
	CreatedAt       time.Time `json:"created_at"`

	OfferedSkills []UserOfferedSkill `gorm:"foreignKey:UserID" json:"offered_skills,omitempty"`
	WantedSkills  []UserWantedSkill  `gorm:"foreignKey:UserID" json:"wanted_skills,omitempty"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns a UUID when one was not provided by the caller.
// Postgres also has a gen_random_uuid() default, but generating here keeps
// sqlite-backed test databases behaving identically.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
