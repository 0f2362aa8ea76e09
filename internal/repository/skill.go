package repository

import (
	"context"
	"errors"

	"skillswap/internal/cache"
	"skillswap/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkillRepository defines persistence operations for the skill directory.
type SkillRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Skill, error)
	GetByName(ctx context.Context, name string) (*models.Skill, error)
	Create(ctx context.Context, skill *models.Skill) error
	List(ctx context.Context, includeInappropriate bool) ([]models.Skill, error)
	SetInappropriate(ctx context.Context, id uint, flagged bool) (*models.Skill, error)
	AddOffered(ctx context.Context, userID uuid.UUID, skillID uint) error
	AddWanted(ctx context.Context, userID uuid.UUID, skillID uint) error
	RemoveOffered(ctx context.Context, userID uuid.UUID, skillID uint) error
	RemoveWanted(ctx context.Context, userID uuid.UUID, skillID uint) error
}

type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository returns a new SkillRepository implementation.
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) GetByID(ctx context.Context, id uint) (*models.Skill, error) {
	var skill models.Skill
	key := cache.SkillKey(id)

	err := cache.Aside(ctx, key, &skill, cache.SkillTTL, func() error {
		if err := r.db.WithContext(ctx).First(&skill, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Skill", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) GetByName(ctx context.Context, name string) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&skill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &skill, nil
}

func (r *skillRepository) Create(ctx context.Context, skill *models.Skill) error {
	if err := r.db.WithContext(ctx).Create(skill).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Skill with this name already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *skillRepository) List(ctx context.Context, includeInappropriate bool) ([]models.Skill, error) {
	var skills []models.Skill
	query := r.db.WithContext(ctx).Order("name ASC")
	if !includeInappropriate {
		query = query.Where("is_inappropriate = ?", false)
	}
	if err := query.Find(&skills).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return skills, nil
}

func (r *skillRepository) SetInappropriate(ctx context.Context, id uint, flagged bool) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.WithContext(ctx).First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Skill", id)
		}
		return nil, models.NewInternalError(err)
	}

	if skill.IsInappropriate != flagged {
		if err := r.db.WithContext(ctx).Model(&skill).Update("is_inappropriate", flagged).Error; err != nil {
			return nil, models.NewInternalError(err)
		}
		skill.IsInappropriate = flagged
	}

	cache.InvalidateSkill(ctx, id)
	return &skill, nil
}

func (r *skillRepository) AddOffered(ctx context.Context, userID uuid.UUID, skillID uint) error {
	link := models.UserOfferedSkill{UserID: userID, SkillID: skillID}
	if err := r.db.WithContext(ctx).Create(&link).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, userID)
	return nil
}

func (r *skillRepository) AddWanted(ctx context.Context, userID uuid.UUID, skillID uint) error {
	link := models.UserWantedSkill{UserID: userID, SkillID: skillID}
	if err := r.db.WithContext(ctx).Create(&link).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, userID)
	return nil
}

func (r *skillRepository) RemoveOffered(ctx context.Context, userID uuid.UUID, skillID uint) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND skill_id = ?", userID, skillID).
		Delete(&models.UserOfferedSkill{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, userID)
	return nil
}

func (r *skillRepository) RemoveWanted(ctx context.Context, userID uuid.UUID, skillID uint) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND skill_id = ?", userID, skillID).
		Delete(&models.UserWantedSkill{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, userID)
	return nil
}
