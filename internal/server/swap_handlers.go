package server

import (
	"skillswap/internal/models"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateSwap handles POST /api/swaps
func (s *Server) CreateSwap(c *fiber.Ctx) error {
	var req struct {
		ReceiverID       string `json:"receiver_id"`
		RequesterSkillID uint   `json:"requester_skill_id"`
		ReceiverSkillID  uint   `json:"receiver_skill_id"`
		Message          string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	receiverID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid receiver_id"))
	}
	if req.RequesterSkillID == 0 || req.ReceiverSkillID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("requester_skill_id and receiver_skill_id are required"))
	}

	swap, err := s.swapService.CreateSwap(c.Context(), service.CreateSwapInput{
		RequesterID:      callerID(c),
		ReceiverID:       receiverID,
		RequesterSkillID: req.RequesterSkillID,
		ReceiverSkillID:  req.ReceiverSkillID,
		Message:          req.Message,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(swap)
}

// GetMySwaps handles GET /api/swaps
func (s *Server) GetMySwaps(c *fiber.Ctx) error {
	p := parsePagination(c, 20)

	swaps, err := s.swapService.ListSwapsForUser(c.Context(), callerID(c), p.Skip, p.Limit)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"swaps": swaps,
		"skip":  p.Skip,
		"limit": p.Limit,
	})
}

// GetSwap handles GET /api/swaps/:id
func (s *Server) GetSwap(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	swap, err := s.swapService.GetSwap(c.Context(), callerID(c), id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(swap)
}

// UpdateSwapStatus handles PUT /api/swaps/:id/status
func (s *Server) UpdateSwapStatus(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil || req.Status == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Field 'status' is required"))
	}

	swap, err := s.swapService.UpdateStatus(c.Context(), callerID(c), id, models.SwapStatus(req.Status))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(swap)
}
