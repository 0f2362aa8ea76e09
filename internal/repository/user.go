// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"time"

	"skillswap/internal/cache"
	"skillswap/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context, offset, limit int) ([]models.User, error)
	SetBanStatus(ctx context.Context, id uuid.UUID, banned bool) (*models.User, error)
	CountAdmins(ctx context.Context) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// cachedUser is the Redis representation of a user. models.User hides
// password_hash from JSON, so the model cannot round-trip through the
// cache without losing the hash.
type cachedUser struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	PasswordHash    string          `json:"password_hash"`
	Location        string          `json:"location"`
	ProfilePhotoURL string          `json:"profile_photo_url"`
	Availability    string          `json:"availability"`
	ProfileIsPublic bool            `json:"profile_is_public"`
	IsBanned        bool            `json:"is_banned"`
	Role            models.UserRole `json:"role"`
	CreatedAt       time.Time       `json:"created_at"`
}

func newCachedUser(u *models.User) *cachedUser {
	return &cachedUser{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		PasswordHash:    u.PasswordHash,
		Location:        u.Location,
		ProfilePhotoURL: u.ProfilePhotoURL,
		Availability:    u.Availability,
		ProfileIsPublic: u.ProfileIsPublic,
		IsBanned:        u.IsBanned,
		Role:            u.Role,
		CreatedAt:       u.CreatedAt,
	}
}

func (cu *cachedUser) toModel() *models.User {
	return &models.User{
		ID:              cu.ID,
		Name:            cu.Name,
		Email:           cu.Email,
		PasswordHash:    cu.PasswordHash,
		Location:        cu.Location,
		ProfilePhotoURL: cu.ProfilePhotoURL,
		Availability:    cu.Availability,
		ProfileIsPublic: cu.ProfileIsPublic,
		IsBanned:        cu.IsBanned,
		Role:            cu.Role,
		CreatedAt:       cu.CreatedAt,
	}
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	key := cache.UserKey(id)

	var cu cachedUser
	found, err := cache.GetJSON(ctx, key, &cu)
	if err != nil {
		return nil, err
	}
	if found {
		return cu.toModel(), nil
	}

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewInternalError(err)
	}

	_ = cache.SetJSON(ctx, key, newCachedUser(&user), cache.UserTTL)
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("User with this email already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

// List returns users ordered by creation time with id as a tiebreaker so
// pagination is stable across requests.
func (r *userRepository) List(ctx context.Context, offset, limit int) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// SetBanStatus updates the ban flag and returns the refreshed user. The
// write is idempotent; banning an already banned user succeeds.
func (r *userRepository) SetBanStatus(ctx context.Context, id uuid.UUID, banned bool) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewInternalError(err)
	}

	if user.IsBanned != banned {
		if err := r.db.WithContext(ctx).Model(&user).Update("is_banned", banned).Error; err != nil {
			return nil, models.NewInternalError(err)
		}
		user.IsBanned = banned
	}

	cache.InvalidateUser(ctx, id)
	return &user, nil
}

func (r *userRepository) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
