// Package service contains the business logic between HTTP handlers and
// the data access layer.
package service

import (
	"context"

	"skillswap/internal/models"
	"skillswap/internal/observability"
	"skillswap/internal/repository"

	"github.com/google/uuid"
)

type UserService struct {
	userRepo repository.UserRepository
}

type UpdateProfileInput struct {
	UserID          uuid.UUID
	Name            string
	Location        string
	ProfilePhotoURL string
	Availability    string
	ProfileIsPublic *bool
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) ListUsers(ctx context.Context, offset, limit int) ([]models.User, error) {
	return s.userRepo.List(ctx, offset, limit)
}

func (s *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	const maxNameLen = 255
	const maxAvailabilityLen = 500

	if in.Name != "" {
		if len(in.Name) > maxNameLen {
			return nil, models.NewValidationError("Name too long (max 255 characters)")
		}
		user.Name = in.Name
	}
	if in.Location != "" {
		user.Location = in.Location
	}
	if in.ProfilePhotoURL != "" {
		user.ProfilePhotoURL = in.ProfilePhotoURL
	}
	if in.Availability != "" {
		if len(in.Availability) > maxAvailabilityLen {
			return nil, models.NewValidationError("Availability too long (max 500 characters)")
		}
		user.Availability = in.Availability
	}
	if in.ProfileIsPublic != nil {
		user.ProfileIsPublic = *in.ProfileIsPublic
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// SetBanStatus bans or unbans the target user. The operation is
// idempotent; repeating it returns the current state without error.
func (s *UserService) SetBanStatus(ctx context.Context, targetID uuid.UUID, banned bool) (*models.User, error) {
	user, err := s.userRepo.SetBanStatus(ctx, targetID, banned)
	if err != nil {
		return nil, err
	}

	action := "unban"
	if banned {
		action = "ban"
	}
	observability.UserBans.WithLabelValues(action).Inc()

	return user, nil
}
