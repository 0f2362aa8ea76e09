package repository

import (
	"context"
	"errors"

	"skillswap/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RatingRepository defines persistence operations for swap ratings.
type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	GetBySwapID(ctx context.Context, swapID uuid.UUID) (*models.Rating, error)
	ListForRatee(ctx context.Context, rateeID uuid.UUID) ([]models.Rating, error)
	AverageForRatee(ctx context.Context, rateeID uuid.UUID) (float64, int64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository returns a new RatingRepository implementation.
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	if err := r.db.WithContext(ctx).Create(rating).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Swap has already been rated")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *ratingRepository) GetBySwapID(ctx context.Context, swapID uuid.UUID) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.WithContext(ctx).Where("swap_id = ?", swapID).First(&rating).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &rating, nil
}

func (r *ratingRepository) ListForRatee(ctx context.Context, rateeID uuid.UUID) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.db.WithContext(ctx).
		Where("ratee_id = ?", rateeID).
		Order("created_at DESC").
		Find(&ratings).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ratings, nil
}

// AverageForRatee returns the mean score and rating count for a user.
// A user with no ratings yields (0, 0, nil).
func (r *ratingRepository) AverageForRatee(ctx context.Context, rateeID uuid.UUID) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("ratee_id = ?", rateeID).
		Scan(&result).Error; err != nil {
		return 0, 0, models.NewInternalError(err)
	}
	return result.Avg, result.Count, nil
}
