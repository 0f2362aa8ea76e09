package seed

import (
	"errors"
	"fmt"
	"log"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// Seeder orchestrates demo data generation on top of Factory.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder with default factory options.
func NewSeeder(db *gorm.DB) *Seeder {
	return NewSeederWithOptions(db, SeedOptions{})
}

// NewSeederWithOptions creates a Seeder with explicit factory options.
func NewSeederWithOptions(db *gorm.DB, opts SeedOptions) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db, opts)}
}

// Factory exposes the underlying entity factory.
func (s *Seeder) Factory() *Factory {
	return s.factory
}

// ClearAll removes all seedable data. Deletion order respects foreign keys.
func (s *Seeder) ClearAll() error {
	tables := []any{
		&models.Rating{},
		&models.SwapRequest{},
		&models.AdminMessage{},
		&models.UserOfferedSkill{},
		&models.UserWantedSkill{},
		&models.Skill{},
		&models.User{},
	}
	for _, table := range tables {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return fmt.Errorf("clear %T: %w", table, err)
		}
	}
	return nil
}

// SeedMarketplace creates users and attaches offered and wanted skills to
// each from the existing skill catalogue. Call Skills first so the
// catalogue is populated.
func (s *Seeder) SeedMarketplace(numUsers int) ([]*models.User, error) {
	var skills []models.Skill
	if err := s.db.Find(&skills).Error; err != nil {
		return nil, fmt.Errorf("load skill catalogue: %w", err)
	}
	if len(skills) == 0 {
		return nil, fmt.Errorf("skill catalogue is empty, seed built-in skills first")
	}

	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}

		offered := s.pickSkills(skills, 1+s.factory.rng.Intn(3))
		for _, skill := range offered {
			if err := s.factory.OfferSkill(user, &skill); err != nil {
				return nil, fmt.Errorf("link offered skill: %w", err)
			}
		}
		wanted := s.pickSkills(skills, 1+s.factory.rng.Intn(3))
		for _, skill := range wanted {
			if err := s.factory.WantSkill(user, &skill); err != nil {
				return nil, fmt.Errorf("link wanted skill: %w", err)
			}
		}

		users = append(users, user)
	}

	log.Printf("seeded %d users with skill listings", len(users))
	return users, nil
}

// SeedActivity creates swap requests across all lifecycle states between
// the given users, and ratings for a share of the completed swaps.
func (s *Seeder) SeedActivity(users []*models.User, numSwaps int) (int, error) {
	if len(users) < 2 {
		return 0, fmt.Errorf("need at least 2 users to seed swaps")
	}

	var skills []models.Skill
	if err := s.db.Find(&skills).Error; err != nil {
		return 0, fmt.Errorf("load skill catalogue: %w", err)
	}
	if len(skills) == 0 {
		return 0, fmt.Errorf("skill catalogue is empty, seed built-in skills first")
	}

	statuses := []models.SwapStatus{
		models.SwapStatusPending,
		models.SwapStatusPending,
		models.SwapStatusAccepted,
		models.SwapStatusRejected,
		models.SwapStatusCancelled,
		models.SwapStatusCompleted,
		models.SwapStatusCompleted,
	}

	created := 0
	rated := 0
	for i := 0; i < numSwaps; i++ {
		requester := users[s.factory.rng.Intn(len(users))]
		receiver := users[s.factory.rng.Intn(len(users))]
		if requester.ID == receiver.ID {
			continue
		}

		requesterSkill := skills[s.factory.rng.Intn(len(skills))]
		receiverSkill := skills[s.factory.rng.Intn(len(skills))]
		status := statuses[s.factory.rng.Intn(len(statuses))]

		swap, err := s.factory.CreateSwap(requester, receiver, &requesterSkill, &receiverSkill, status)
		if err != nil {
			return created, fmt.Errorf("create swap: %w", err)
		}
		created++

		// Rate roughly two thirds of completed swaps.
		if status == models.SwapStatusCompleted && s.factory.rng.Intn(3) > 0 {
			if _, err := s.factory.CreateRating(swap); err != nil {
				return created, fmt.Errorf("create rating: %w", err)
			}
			rated++
		}
	}

	log.Printf("seeded %d swaps (%d rated)", created, rated)
	return created, nil
}

// SeedAnnouncements creates an admin user if none exists and posts a few
// platform broadcasts.
func (s *Seeder) SeedAnnouncements(numMessages int) error {
	var admin models.User
	err := s.db.Where("role = ?", models.RoleAdmin).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		created, factoryErr := s.factory.CreateUser(func(u *models.User) {
			u.Name = "Platform Admin"
			u.Email = "admin@skillswap.local"
			u.Role = models.RoleAdmin
		})
		if factoryErr != nil {
			return fmt.Errorf("create admin: %w", factoryErr)
		}
		admin = *created
	} else if err != nil {
		return fmt.Errorf("load admin: %w", err)
	}

	for i := 0; i < numMessages; i++ {
		if _, err := s.factory.CreateBroadcast(&admin); err != nil {
			return fmt.Errorf("create broadcast: %w", err)
		}
	}
	return nil
}

// pickSkills returns up to n distinct random skills.
func (s *Seeder) pickSkills(skills []models.Skill, n int) []models.Skill {
	if n > len(skills) {
		n = len(skills)
	}
	picked := make([]models.Skill, 0, n)
	for _, idx := range s.factory.rng.Perm(len(skills))[:n] {
		picked = append(picked, skills[idx])
	}
	return picked
}
