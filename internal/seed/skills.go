package seed

import (
	"fmt"

	"skillswap/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BuiltInSkills defines the permanent skill catalogue seeded on every
// environment. Names must satisfy the skill name validation rules.
var BuiltInSkills = []string{
	"Guitar Lessons",
	"Piano Lessons",
	"Spanish Conversation",
	"French Conversation",
	"Japanese for Beginners",
	"Sourdough Baking",
	"Vegetarian Cooking",
	"Yoga",
	"Personal Training",
	"Photography",
	"Photo Editing",
	"Web Development",
	"Python Programming",
	"Data Analysis",
	"Graphic Design",
	"Creative Writing",
	"Public Speaking",
	"Gardening",
	"Woodworking",
	"Bike Repair",
	"Car Maintenance",
	"Sewing",
	"Knitting",
	"Chess Coaching",
	"Swimming Lessons",
}

// Skills upserts the built-in skill catalogue. Existing rows keep their
// moderation state.
func Skills(db *gorm.DB) error {
	for _, name := range BuiltInSkills {
		skill := models.Skill{Name: name}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&skill).Error
		if err != nil {
			return fmt.Errorf("seed built-in skill %q: %w", name, err)
		}
	}
	return nil
}
