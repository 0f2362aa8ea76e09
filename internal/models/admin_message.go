package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminMessage is a platform-wide broadcast authored by an administrator.
// Messages are insert-only; there is no update or delete path.
type AdminMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AdminID   uuid.UUID `gorm:"type:uuid;not null;index" json:"admin_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`

	Admin *User `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
}

// TableName specifies the table name for GORM
func (AdminMessage) TableName() string {
	return "admin_messages"
}

// BeforeCreate assigns a UUID when one was not provided by the caller.
func (m *AdminMessage) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
