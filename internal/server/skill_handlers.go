package server

import (
	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetSkills handles GET /api/skills. Flagged skills are hidden from the
// public directory.
func (s *Server) GetSkills(c *fiber.Ctx) error {
	skills, err := s.skillService.ListSkills(c.Context(), false)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"skills": skills})
}

// CreateSkill handles POST /api/skills
func (s *Server) CreateSkill(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	skill, err := s.skillService.CreateSkill(c.Context(), req.Name)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(skill)
}
