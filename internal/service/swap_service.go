package service

import (
	"context"

	"skillswap/internal/models"
	"skillswap/internal/observability"
	"skillswap/internal/repository"

	"github.com/google/uuid"
)

// SwapService provides swap-request lifecycle business logic.
type SwapService struct {
	swapRepo  repository.SwapRepository
	userRepo  repository.UserRepository
	skillRepo repository.SkillRepository
}

// CreateSwapInput carries the fields needed to open a swap request.
type CreateSwapInput struct {
	RequesterID      uuid.UUID
	ReceiverID       uuid.UUID
	RequesterSkillID uint
	ReceiverSkillID  uint
	Message          string
}

// NewSwapService returns a new SwapService.
func NewSwapService(swapRepo repository.SwapRepository, userRepo repository.UserRepository, skillRepo repository.SkillRepository) *SwapService {
	return &SwapService{
		swapRepo:  swapRepo,
		userRepo:  userRepo,
		skillRepo: skillRepo,
	}
}

// CreateSwap opens a pending swap request from the requester to the receiver.
func (s *SwapService) CreateSwap(ctx context.Context, in CreateSwapInput) (*models.SwapRequest, error) {
	if in.RequesterID == in.ReceiverID {
		return nil, models.NewValidationError("Cannot open a swap request with yourself")
	}

	receiver, err := s.userRepo.GetByID(ctx, in.ReceiverID)
	if err != nil {
		return nil, err
	}
	if receiver.IsBanned {
		return nil, models.NewValidationError("Receiver account is banned")
	}

	if _, err := s.skillRepo.GetByID(ctx, in.RequesterSkillID); err != nil {
		return nil, err
	}
	if _, err := s.skillRepo.GetByID(ctx, in.ReceiverSkillID); err != nil {
		return nil, err
	}

	swap := &models.SwapRequest{
		RequesterID:      in.RequesterID,
		ReceiverID:       in.ReceiverID,
		RequesterSkillID: in.RequesterSkillID,
		ReceiverSkillID:  in.ReceiverSkillID,
		Message:          in.Message,
		Status:           models.SwapStatusPending,
	}
	if err := s.swapRepo.Create(ctx, swap); err != nil {
		return nil, err
	}

	observability.SwapRequestsCreated.Inc()
	return swap, nil
}

// GetSwap returns a swap request visible to the given participant.
func (s *SwapService) GetSwap(ctx context.Context, actorID, swapID uuid.UUID) (*models.SwapRequest, error) {
	swap, err := s.swapRepo.GetByID(ctx, swapID)
	if err != nil {
		return nil, err
	}
	if !swap.Participant(actorID) {
		return nil, models.NewUnauthorizedError("You are not a participant of this swap")
	}
	return swap, nil
}

// ListSwapsForUser returns swaps where the user is requester or receiver.
func (s *SwapService) ListSwapsForUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.SwapRequest, error) {
	return s.swapRepo.ListForUser(ctx, userID, offset, limit)
}

// UpdateStatus moves a swap through its lifecycle. Accepting or rejecting
// is reserved to the receiver; cancelling and completing are open to either
// participant.
func (s *SwapService) UpdateStatus(ctx context.Context, actorID, swapID uuid.UUID, next models.SwapStatus) (*models.SwapRequest, error) {
	if !next.Valid() {
		return nil, models.NewValidationError("Unknown swap status")
	}

	swap, err := s.swapRepo.GetByID(ctx, swapID)
	if err != nil {
		return nil, err
	}

	if !swap.Participant(actorID) {
		return nil, models.NewUnauthorizedError("You are not a participant of this swap")
	}

	switch next {
	case models.SwapStatusAccepted, models.SwapStatusRejected:
		if actorID != swap.ReceiverID {
			return nil, models.NewUnauthorizedError("Only the receiver can respond to a swap request")
		}
	case models.SwapStatusPending:
		return nil, models.NewValidationError("Cannot move a swap back to pending")
	}

	if !swap.Status.CanTransitionTo(next) {
		return nil, models.NewValidationError("Cannot transition swap from " + string(swap.Status) + " to " + string(next))
	}

	if err := s.swapRepo.UpdateStatus(ctx, swapID, next); err != nil {
		return nil, err
	}

	observability.SwapStatusTransitions.WithLabelValues(string(next)).Inc()

	swap.Status = next
	return swap, nil
}

// StatusCounts returns the count of swaps per lifecycle status. All five
// statuses are always present in the result.
func (s *SwapService) StatusCounts(ctx context.Context) (map[models.SwapStatus]int64, error) {
	return s.swapRepo.StatusCounts(ctx)
}
