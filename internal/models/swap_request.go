package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SwapStatus represents the lifecycle state of a swap request.
type SwapStatus string

const (
	// SwapStatusPending indicates the request is awaiting a response.
	SwapStatusPending SwapStatus = "pending"
	// SwapStatusAccepted indicates the receiver agreed to the swap.
	SwapStatusAccepted SwapStatus = "accepted"
	// SwapStatusRejected indicates the receiver declined the swap.
	SwapStatusRejected SwapStatus = "rejected"
	// SwapStatusCompleted indicates both sides finished the exchange.
	SwapStatusCompleted SwapStatus = "completed"
	// SwapStatusCancelled indicates a participant withdrew the swap.
	SwapStatusCancelled SwapStatus = "cancelled"
)

// AllSwapStatuses lists every valid status. Order matters for stable
// serialization of aggregates.
var AllSwapStatuses = []SwapStatus{
	SwapStatusPending,
	SwapStatusAccepted,
	SwapStatusRejected,
	SwapStatusCompleted,
	SwapStatusCancelled,
}

// swapTransitions is the validated transition table. Rejected, completed
// and cancelled are terminal.
var swapTransitions = map[SwapStatus][]SwapStatus{
	SwapStatusPending:  {SwapStatusAccepted, SwapStatusRejected, SwapStatusCancelled},
	SwapStatusAccepted: {SwapStatusCompleted, SwapStatusCancelled},
}

// Valid reports whether the status is a member of the fixed enumeration.
func (s SwapStatus) Valid() bool {
	for _, known := range AllSwapStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is a legal
// lifecycle transition.
func (s SwapStatus) CanTransitionTo(next SwapStatus) bool {
	for _, allowed := range swapTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// SwapRequest is an offer by one user to exchange a skill they offer for
// a skill another user offers.
type SwapRequest struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	RequesterID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"requester_id"`
	ReceiverID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"receiver_id"`
	RequesterSkillID uint       `gorm:"not null" json:"requester_skill_id"`
	ReceiverSkillID  uint       `gorm:"not null" json:"receiver_skill_id"`
	Message          string     `gorm:"type:text" json:"message,omitempty"`
	Status           SwapStatus `gorm:"type:varchar(20);not null;default:'pending';index:idx_swap_requests_status" json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	Requester      *User   `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Receiver       *User   `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
	RequesterSkill *Skill  `gorm:"foreignKey:RequesterSkillID" json:"requester_skill,omitempty"`
	ReceiverSkill  *Skill  `gorm:"foreignKey:ReceiverSkillID" json:"receiver_skill,omitempty"`
	Rating         *Rating `gorm:"foreignKey:SwapID" json:"rating,omitempty"`
}

// TableName specifies the table name for GORM
func (SwapRequest) TableName() string {
	return "swap_requests"
}

// BeforeCreate assigns a UUID when one was not provided by the caller.
func (r *SwapRequest) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Participant reports whether the given user is the requester or receiver.
func (r *SwapRequest) Participant(userID uuid.UUID) bool {
	return r.RequesterID == userID || r.ReceiverID == userID
}
