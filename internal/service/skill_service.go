package service

import (
	"context"

	"skillswap/internal/models"
	"skillswap/internal/repository"
	"skillswap/internal/validation"

	"github.com/google/uuid"
)

// SkillService provides skill-directory business logic.
type SkillService struct {
	skillRepo repository.SkillRepository
}

// NewSkillService returns a new SkillService.
func NewSkillService(skillRepo repository.SkillRepository) *SkillService {
	return &SkillService{skillRepo: skillRepo}
}

// CreateSkill adds a skill to the global directory. Names are normalized
// before the uniqueness check so "guitar" and "Guitar " collide.
func (s *SkillService) CreateSkill(ctx context.Context, name string) (*models.Skill, error) {
	normalized, err := validation.NormalizeSkillName(name)
	if err != nil {
		return nil, err
	}

	skill := &models.Skill{Name: normalized}
	if err := s.skillRepo.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

// ListSkills returns the skill directory, hiding flagged entries unless
// includeInappropriate is set (admin view).
func (s *SkillService) ListSkills(ctx context.Context, includeInappropriate bool) ([]models.Skill, error) {
	return s.skillRepo.List(ctx, includeInappropriate)
}

// FlagSkill sets or clears the moderation flag on a skill.
func (s *SkillService) FlagSkill(ctx context.Context, skillID uint, flagged bool) (*models.Skill, error) {
	return s.skillRepo.SetInappropriate(ctx, skillID, flagged)
}

// OfferSkill links a skill the user can teach.
func (s *SkillService) OfferSkill(ctx context.Context, userID uuid.UUID, skillID uint) error {
	if _, err := s.skillRepo.GetByID(ctx, skillID); err != nil {
		return err
	}
	return s.skillRepo.AddOffered(ctx, userID, skillID)
}

// WantSkill links a skill the user wants to learn.
func (s *SkillService) WantSkill(ctx context.Context, userID uuid.UUID, skillID uint) error {
	if _, err := s.skillRepo.GetByID(ctx, skillID); err != nil {
		return err
	}
	return s.skillRepo.AddWanted(ctx, userID, skillID)
}

// DropOfferedSkill removes an offered-skill link.
func (s *SkillService) DropOfferedSkill(ctx context.Context, userID uuid.UUID, skillID uint) error {
	return s.skillRepo.RemoveOffered(ctx, userID, skillID)
}

// DropWantedSkill removes a wanted-skill link.
func (s *SkillService) DropWantedSkill(ctx context.Context, userID uuid.UUID, skillID uint) error {
	return s.skillRepo.RemoveWanted(ctx, userID, skillID)
}
