package server

import (
	"skillswap/internal/database"
	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetAllUsers handles GET /api/admin/users with skip/limit pagination.
// The body is the bare ordered list of user projections.
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	p := parsePagination(c, 100)

	users, err := s.userService.ListUsers(c.Context(), p.Skip, p.Limit)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(users)
}

// BanUser handles PUT /api/admin/users/:id/ban
func (s *Server) BanUser(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.SetBanStatus(c.Context(), id, true)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(user)
}

// UnbanUser handles PUT /api/admin/users/:id/unban
func (s *Server) UnbanUser(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.SetBanStatus(c.Context(), id, false)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(user)
}

// FlagSkill handles PUT /api/admin/skills/:skillId/flag
func (s *Server) FlagSkill(c *fiber.Ctx) error {
	skillID, err := s.parseID(c, "skillId")
	if err != nil {
		return nil
	}

	var req struct {
		Flagged *bool `json:"flagged"`
	}
	if err := c.BodyParser(&req); err != nil || req.Flagged == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Field 'flagged' is required"))
	}

	skill, err := s.skillService.FlagSkill(c.Context(), skillID, *req.Flagged)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(skill)
}

// GetFeatureFlags handles GET /api/admin/feature-flags
func (s *Server) GetFeatureFlags(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"flags":     s.featureFlags.Raw(),
		"evaluated": s.featureFlags.Snapshot(callerID(c)),
	})
}

// GetSchemaStatus handles GET /api/admin/schema-status
func (s *Server) GetSchemaStatus(c *fiber.Ctx) error {
	status, err := database.GetSchemaStatus(c.Context(), s.db, s.config)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	pending := make([]string, 0, len(status.PendingMigrations))
	for _, m := range status.PendingMigrations {
		pending = append(pending, m.String())
	}

	return c.JSON(fiber.Map{
		"mode":                  status.Mode,
		"environment":           status.Environment,
		"will_run_sql":          status.WillRunSQL,
		"will_run_auto_migrate": status.WillRunAutoMigrate,
		"applied_versions":      status.AppliedVersions,
		"pending_migrations":    pending,
	})
}
