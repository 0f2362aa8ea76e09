// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"skillswap/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedOptions tune factory behaviour.
type SeedOptions struct {
	// SkipBcrypt stores a plain-text password marker instead of hashing.
	// Dramatically faster for large seeds; never use outside development.
	SkipBcrypt bool
	// MaxDays bounds how far in the past generated created_at values go.
	MaxDays int
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db   *gorm.DB
	opts SeedOptions
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts SeedOptions) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	// #nosec G404: acceptable for seeding
	return &Factory{db: db, opts: opts, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// pastTime returns a timestamp spread over the configured history window.
func (f *Factory) pastTime() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)
}

var availabilityTemplates = []string{
	"weekday evenings",
	"weekends only",
	"flexible, message me",
	"Tuesday and Thursday after 6pm",
	"Saturday mornings",
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Name:            gofakeit.Name(),
		Email:           fmt.Sprintf("%d.%s", gofakeit.Number(100, 999), gofakeit.Email()),
		Location:        gofakeit.City(),
		ProfilePhotoURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		Availability:    availabilityTemplates[f.rng.Intn(len(availabilityTemplates))],
		ProfileIsPublic: f.rng.Intn(10) > 0,
		Role:            models.RoleUser,
		CreatedAt:       f.pastTime(),
	}

	if f.opts.SkipBcrypt {
		user.PasswordHash = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.PasswordHash = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateSkill constructs and persists a `models.Skill` with a unique name.
func (f *Factory) CreateSkill(overrides ...func(*models.Skill)) (*models.Skill, error) {
	skill := &models.Skill{
		Name: fmt.Sprintf("%s %s %d", gofakeit.HackerAdjective(), gofakeit.Hobby(), gofakeit.Number(10, 99)),
	}

	for _, override := range overrides {
		override(skill)
	}

	if err := f.db.Create(skill).Error; err != nil {
		return nil, err
	}
	return skill, nil
}

// OfferSkill links a skill to the user's offered list.
func (f *Factory) OfferSkill(user *models.User, skill *models.Skill) error {
	link := &models.UserOfferedSkill{UserID: user.ID, SkillID: skill.ID}
	return f.db.Create(link).Error
}

// WantSkill links a skill to the user's wanted list.
func (f *Factory) WantSkill(user *models.User, skill *models.Skill) error {
	link := &models.UserWantedSkill{UserID: user.ID, SkillID: skill.ID}
	return f.db.Create(link).Error
}

// CreateSwap constructs and persists a swap request between the two users
// in the given status.
func (f *Factory) CreateSwap(requester, receiver *models.User, requesterSkill, receiverSkill *models.Skill, status models.SwapStatus, overrides ...func(*models.SwapRequest)) (*models.SwapRequest, error) {
	swap := &models.SwapRequest{
		RequesterID:      requester.ID,
		ReceiverID:       receiver.ID,
		RequesterSkillID: requesterSkill.ID,
		ReceiverSkillID:  receiverSkill.ID,
		Message:          gofakeit.Sentence(8),
		Status:           status,
		CreatedAt:        f.pastTime(),
	}

	for _, override := range overrides {
		override(swap)
	}

	if err := f.db.Create(swap).Error; err != nil {
		return nil, err
	}
	return swap, nil
}

// CreateRating persists a rating of the given swap by the requester.
// Fails if the swap has already been rated.
func (f *Factory) CreateRating(swap *models.SwapRequest, overrides ...func(*models.Rating)) (*models.Rating, error) {
	rating := &models.Rating{
		SwapID:   swap.ID,
		RaterID:  swap.RequesterID,
		RateeID:  swap.ReceiverID,
		Rating:   f.rng.Intn(3) + 3,
		Feedback: gofakeit.Sentence(10),
	}

	for _, override := range overrides {
		override(rating)
	}

	if err := f.db.Create(rating).Error; err != nil {
		return nil, err
	}
	return rating, nil
}

// CreateBroadcast persists a platform announcement authored by the admin.
func (f *Factory) CreateBroadcast(admin *models.User, overrides ...func(*models.AdminMessage)) (*models.AdminMessage, error) {
	message := &models.AdminMessage{
		AdminID: admin.ID,
		Content: gofakeit.Sentence(12),
	}

	for _, override := range overrides {
		override(message)
	}

	if err := f.db.Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}
