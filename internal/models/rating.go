package models

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds. Enforced in the service layer, not by the schema.
const (
	MinRating = 1
	MaxRating = 5
)

// Rating is feedback left by one participant of a completed swap about
// the other. At most one rating exists per swap request.
type Rating struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	SwapID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"swap_id"`
	RaterID uuid.UUID `gorm:"type:uuid;not null;index" json:"rater_id"`
	RateeID uuid.UUID `gorm:"type:uuid;not null;index" json:"ratee_id"`
	// Rating is the 1-5 score.
	Rating    int       `gorm:"not null" json:"rating"`
	Feedback  string    `gorm:"type:text" json:"feedback,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Rating) TableName() string {
	return "ratings"
}
