package server

import (
	"skillswap/internal/models"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ratingsEnabled checks the rollout flag for the caller.
func (s *Server) ratingsEnabled(c *fiber.Ctx) bool {
	return s.featureFlags.Enabled("ratings", callerID(c))
}

// RateSwap handles POST /api/swaps/:id/rating
func (s *Server) RateSwap(c *fiber.Ctx) error {
	if !s.ratingsEnabled(c) {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Resource", c.Path()))
	}

	swapID, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Rating   int    `json:"rating"`
		Feedback string `json:"feedback"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	rating, err := s.ratingService.RateSwap(c.Context(), service.RateSwapInput{
		RaterID:  callerID(c),
		SwapID:   swapID,
		Score:    req.Rating,
		Feedback: req.Feedback,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(rating)
}

// GetUserRatings handles GET /api/users/:id/ratings
func (s *Server) GetUserRatings(c *fiber.Ctx) error {
	if !s.ratingsEnabled(c) {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Resource", c.Path()))
	}

	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	ratings, err := s.ratingService.GetUserRatings(c.Context(), id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ratings": ratings})
}

// GetUserRatingSummary handles GET /api/users/:id/ratings/summary
func (s *Server) GetUserRatingSummary(c *fiber.Ctx) error {
	if !s.ratingsEnabled(c) {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Resource", c.Path()))
	}

	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	summary, err := s.ratingService.GetUserSummary(c.Context(), id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(summary)
}
