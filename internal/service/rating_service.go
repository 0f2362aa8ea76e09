package service

import (
	"context"
	"fmt"

	"skillswap/internal/models"
	"skillswap/internal/repository"

	"github.com/google/uuid"
)

// RatingService provides post-swap feedback business logic.
type RatingService struct {
	ratingRepo repository.RatingRepository
	swapRepo   repository.SwapRepository
}

// RateSwapInput carries the fields needed to rate a completed swap.
type RateSwapInput struct {
	RaterID  uuid.UUID
	SwapID   uuid.UUID
	Score    int
	Feedback string
}

// RatingSummary aggregates a user's received ratings.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// NewRatingService returns a new RatingService.
func NewRatingService(ratingRepo repository.RatingRepository, swapRepo repository.SwapRepository) *RatingService {
	return &RatingService{
		ratingRepo: ratingRepo,
		swapRepo:   swapRepo,
	}
}

// RateSwap records feedback for a completed swap. The rater must be a
// participant, the score must fall within bounds, and a swap can only be
// rated once.
func (s *RatingService) RateSwap(ctx context.Context, in RateSwapInput) (*models.Rating, error) {
	if in.Score < models.MinRating || in.Score > models.MaxRating {
		return nil, models.NewValidationError(fmt.Sprintf("Rating must be between %d and %d", models.MinRating, models.MaxRating))
	}

	swap, err := s.swapRepo.GetByID(ctx, in.SwapID)
	if err != nil {
		return nil, err
	}

	if !swap.Participant(in.RaterID) {
		return nil, models.NewUnauthorizedError("You are not a participant of this swap")
	}
	if swap.Status != models.SwapStatusCompleted {
		return nil, models.NewValidationError("Only completed swaps can be rated")
	}

	rateeID := swap.RequesterID
	if in.RaterID == swap.RequesterID {
		rateeID = swap.ReceiverID
	}

	rating := &models.Rating{
		SwapID:   in.SwapID,
		RaterID:  in.RaterID,
		RateeID:  rateeID,
		Rating:   in.Score,
		Feedback: in.Feedback,
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return nil, err
	}

	return rating, nil
}

// GetUserRatings returns the ratings a user has received, newest first.
func (s *RatingService) GetUserRatings(ctx context.Context, rateeID uuid.UUID) ([]models.Rating, error) {
	return s.ratingRepo.ListForRatee(ctx, rateeID)
}

// GetUserSummary returns the mean score and count of a user's ratings.
func (s *RatingService) GetUserSummary(ctx context.Context, rateeID uuid.UUID) (*RatingSummary, error) {
	avg, count, err := s.ratingRepo.AverageForRatee(ctx, rateeID)
	if err != nil {
		return nil, err
	}
	return &RatingSummary{Average: avg, Count: count}, nil
}
