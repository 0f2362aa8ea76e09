package database

import "skillswap/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Skill{},
		&models.UserOfferedSkill{},
		&models.UserWantedSkill{},
		&models.SwapRequest{},
		&models.Rating{},
		&models.AdminMessage{},
	}
}
