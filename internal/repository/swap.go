package repository

import (
	"context"
	"errors"

	"skillswap/internal/cache"
	"skillswap/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SwapRepository defines persistence operations for swap requests.
type SwapRepository interface {
	Create(ctx context.Context, swap *models.SwapRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SwapRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.SwapStatus) error
	ListForUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.SwapRequest, error)
	StatusCounts(ctx context.Context) (map[models.SwapStatus]int64, error)
}

type swapRepository struct {
	db *gorm.DB
}

// NewSwapRepository returns a new SwapRepository implementation.
func NewSwapRepository(db *gorm.DB) SwapRepository {
	return &swapRepository{db: db}
}

func (r *swapRepository) Create(ctx context.Context, swap *models.SwapRequest) error {
	if err := r.db.WithContext(ctx).Create(swap).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateSwapStats(ctx)
	return nil
}

func (r *swapRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SwapRequest, error) {
	var swap models.SwapRequest
	if err := r.db.WithContext(ctx).First(&swap, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Swap request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &swap, nil
}

func (r *swapRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.SwapStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.SwapRequest{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Swap request", id)
	}
	cache.InvalidateSwapStats(ctx)
	return nil
}

// ListForUser returns swaps where the user is either side of the exchange,
// newest first.
func (r *swapRepository) ListForUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.SwapRequest, error) {
	var swaps []models.SwapRequest
	if err := r.db.WithContext(ctx).
		Where("requester_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&swaps).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return swaps, nil
}

// countRow receives one GROUP BY bucket from the status aggregation.
type countRow struct {
	Status models.SwapStatus
	Count  int64
}

// StatusCounts returns a count per lifecycle status. Every known status is
// present in the result, zero-valued when no swap holds it. Rows with an
// unrecognized status (stale data from older schemas) are dropped.
func (r *swapRepository) StatusCounts(ctx context.Context) (map[models.SwapStatus]int64, error) {
	counts := make(map[models.SwapStatus]int64, len(models.AllSwapStatuses))
	for _, s := range models.AllSwapStatuses {
		counts[s] = 0
	}

	var rows []countRow
	if err := r.db.WithContext(ctx).
		Model(&models.SwapRequest{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	for _, row := range rows {
		if _, known := counts[row.Status]; known {
			counts[row.Status] = row.Count
		}
	}
	return counts, nil
}
