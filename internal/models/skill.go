package models

import "github.com/google/uuid"

// Skill is an entry in the global skill directory.
type Skill struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;unique;not null" json:"name"`
	// IsInappropriate is a moderation flag; flagged skills stay in the
	// directory but are hidden from public browsing.
	IsInappropriate bool `gorm:"not null;default:false" json:"is_inappropriate"`
}

// TableName specifies the table name for GORM
func (Skill) TableName() string {
	return "skills"
}

// UserOfferedSkill links a user to a skill they can teach.
// Composite identity: a (user, skill) pair appears at most once.
type UserOfferedSkill struct {
	UserID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	SkillID uint      `gorm:"primaryKey" json:"skill_id"`

	Skill *Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}

// TableName specifies the table name for GORM
func (UserOfferedSkill) TableName() string {
	return "user_offered_skills"
}

// UserWantedSkill links a user to a skill they want to learn.
type UserWantedSkill struct {
	UserID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	SkillID uint      `gorm:"primaryKey" json:"skill_id"`

	Skill *Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}

// TableName specifies the table name for GORM
func (UserWantedSkill) TableName() string {
	return "user_wanted_skills"
}
