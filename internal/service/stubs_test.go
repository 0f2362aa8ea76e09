package service

import (
	"context"

	"skillswap/internal/models"

	"github.com/google/uuid"
)

type userRepoStub struct {
	getByIDFn      func(context.Context, uuid.UUID) (*models.User, error)
	getByEmailFn   func(context.Context, string) (*models.User, error)
	createFn       func(context.Context, *models.User) error
	updateFn       func(context.Context, *models.User) error
	listFn         func(context.Context, int, int) ([]models.User, error)
	setBanStatusFn func(context.Context, uuid.UUID, bool) (*models.User, error)
	countAdminsFn  func(context.Context) (int64, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) List(ctx context.Context, offset, limit int) ([]models.User, error) {
	return s.listFn(ctx, offset, limit)
}
func (s *userRepoStub) SetBanStatus(ctx context.Context, id uuid.UUID, banned bool) (*models.User, error) {
	return s.setBanStatusFn(ctx, id, banned)
}
func (s *userRepoStub) CountAdmins(ctx context.Context) (int64, error) {
	return s.countAdminsFn(ctx)
}

type swapRepoStub struct {
	createFn       func(context.Context, *models.SwapRequest) error
	getByIDFn      func(context.Context, uuid.UUID) (*models.SwapRequest, error)
	updateStatusFn func(context.Context, uuid.UUID, models.SwapStatus) error
	listForUserFn  func(context.Context, uuid.UUID, int, int) ([]models.SwapRequest, error)
	statusCountsFn func(context.Context) (map[models.SwapStatus]int64, error)
}

func (s *swapRepoStub) Create(ctx context.Context, swap *models.SwapRequest) error {
	return s.createFn(ctx, swap)
}
func (s *swapRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*models.SwapRequest, error) {
	return s.getByIDFn(ctx, id)
}
func (s *swapRepoStub) UpdateStatus(ctx context.Context, id uuid.UUID, status models.SwapStatus) error {
	return s.updateStatusFn(ctx, id, status)
}
func (s *swapRepoStub) ListForUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.SwapRequest, error) {
	return s.listForUserFn(ctx, userID, offset, limit)
}
func (s *swapRepoStub) StatusCounts(ctx context.Context) (map[models.SwapStatus]int64, error) {
	return s.statusCountsFn(ctx)
}

type skillRepoStub struct {
	getByIDFn          func(context.Context, uint) (*models.Skill, error)
	getByNameFn        func(context.Context, string) (*models.Skill, error)
	createFn           func(context.Context, *models.Skill) error
	listFn             func(context.Context, bool) ([]models.Skill, error)
	setInappropriateFn func(context.Context, uint, bool) (*models.Skill, error)
	addOfferedFn       func(context.Context, uuid.UUID, uint) error
	addWantedFn        func(context.Context, uuid.UUID, uint) error
	removeOfferedFn    func(context.Context, uuid.UUID, uint) error
	removeWantedFn     func(context.Context, uuid.UUID, uint) error
}

func (s *skillRepoStub) GetByID(ctx context.Context, id uint) (*models.Skill, error) {
	return s.getByIDFn(ctx, id)
}
func (s *skillRepoStub) GetByName(ctx context.Context, name string) (*models.Skill, error) {
	return s.getByNameFn(ctx, name)
}
func (s *skillRepoStub) Create(ctx context.Context, skill *models.Skill) error {
	return s.createFn(ctx, skill)
}
func (s *skillRepoStub) List(ctx context.Context, includeInappropriate bool) ([]models.Skill, error) {
	return s.listFn(ctx, includeInappropriate)
}
func (s *skillRepoStub) SetInappropriate(ctx context.Context, id uint, flagged bool) (*models.Skill, error) {
	return s.setInappropriateFn(ctx, id, flagged)
}
func (s *skillRepoStub) AddOffered(ctx context.Context, userID uuid.UUID, skillID uint) error {
	return s.addOfferedFn(ctx, userID, skillID)
}
func (s *skillRepoStub) AddWanted(ctx context.Context, userID uuid.UUID, skillID uint) error {
	return s.addWantedFn(ctx, userID, skillID)
}
func (s *skillRepoStub) RemoveOffered(ctx context.Context, userID uuid.UUID, skillID uint) error {
	return s.removeOfferedFn(ctx, userID, skillID)
}
func (s *skillRepoStub) RemoveWanted(ctx context.Context, userID uuid.UUID, skillID uint) error {
	return s.removeWantedFn(ctx, userID, skillID)
}

type ratingRepoStub struct {
	createFn          func(context.Context, *models.Rating) error
	getBySwapIDFn     func(context.Context, uuid.UUID) (*models.Rating, error)
	listForRateeFn    func(context.Context, uuid.UUID) ([]models.Rating, error)
	averageForRateeFn func(context.Context, uuid.UUID) (float64, int64, error)
}

func (s *ratingRepoStub) Create(ctx context.Context, rating *models.Rating) error {
	return s.createFn(ctx, rating)
}
func (s *ratingRepoStub) GetBySwapID(ctx context.Context, swapID uuid.UUID) (*models.Rating, error) {
	return s.getBySwapIDFn(ctx, swapID)
}
func (s *ratingRepoStub) ListForRatee(ctx context.Context, rateeID uuid.UUID) ([]models.Rating, error) {
	return s.listForRateeFn(ctx, rateeID)
}
func (s *ratingRepoStub) AverageForRatee(ctx context.Context, rateeID uuid.UUID) (float64, int64, error) {
	return s.averageForRateeFn(ctx, rateeID)
}

type messageRepoStub struct {
	createFn func(context.Context, *models.AdminMessage) error
	listFn   func(context.Context, int, int) ([]models.AdminMessage, error)
}

func (s *messageRepoStub) Create(ctx context.Context, message *models.AdminMessage) error {
	return s.createFn(ctx, message)
}
func (s *messageRepoStub) List(ctx context.Context, offset, limit int) ([]models.AdminMessage, error) {
	return s.listFn(ctx, offset, limit)
}
