package server

import (
	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// BroadcastMessage handles POST /api/admin/messages. The author is the
// authenticated admin; any author field in the body is ignored.
func (s *Server) BroadcastMessage(c *fiber.Ctx) error {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	message, err := s.messageService.Broadcast(c.Context(), callerID(c), req.Content)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}

// GetMessages handles GET /api/admin/messages
func (s *Server) GetMessages(c *fiber.Ctx) error {
	p := parsePagination(c, 20)

	messages, err := s.messageService.ListMessages(c.Context(), p.Skip, p.Limit)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"messages": messages,
		"skip":     p.Skip,
		"limit":    p.Limit,
	})
}
