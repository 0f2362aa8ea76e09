package server

import (
	"skillswap/internal/models"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

// publicUserView is the projection of a user safe for other members.
type publicUserView struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Location        string `json:"location,omitempty"`
	ProfilePhotoURL string `json:"profile_photo_url,omitempty"`
	Availability    string `json:"availability,omitempty"`
}

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetUserByID(c.Context(), callerID(c))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		Name            string `json:"name"`
		Location        string `json:"location"`
		ProfilePhotoURL string `json:"profile_photo_url"`
		Availability    string `json:"availability"`
		ProfileIsPublic *bool  `json:"profile_is_public"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:          callerID(c),
		Name:            req.Name,
		Location:        req.Location,
		ProfilePhotoURL: req.ProfilePhotoURL,
		Availability:    req.Availability,
		ProfileIsPublic: req.ProfileIsPublic,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(user)
}

// GetUserProfile handles GET /api/users/:id. Private profiles are only
// visible to their owner.
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUserByID(c.Context(), id)
	if err != nil {
		return mapServiceError(c, err)
	}

	if user.ID == callerID(c) {
		return c.JSON(user)
	}

	if !user.ProfileIsPublic || user.IsBanned {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("User", id))
	}

	return c.JSON(publicUserView{
		ID:              user.ID.String(),
		Name:            user.Name,
		Location:        user.Location,
		ProfilePhotoURL: user.ProfilePhotoURL,
		Availability:    user.Availability,
	})
}

// OfferSkill handles POST /api/users/me/skills/offered/:skillId
func (s *Server) OfferSkill(c *fiber.Ctx) error {
	skillID, err := s.parseID(c, "skillId")
	if err != nil {
		return nil
	}

	if err := s.skillService.OfferSkill(c.Context(), callerID(c), skillID); err != nil {
		return mapServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DropOfferedSkill handles DELETE /api/users/me/skills/offered/:skillId
func (s *Server) DropOfferedSkill(c *fiber.Ctx) error {
	skillID, err := s.parseID(c, "skillId")
	if err != nil {
		return nil
	}

	if err := s.skillService.DropOfferedSkill(c.Context(), callerID(c), skillID); err != nil {
		return mapServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// WantSkill handles POST /api/users/me/skills/wanted/:skillId
func (s *Server) WantSkill(c *fiber.Ctx) error {
	skillID, err := s.parseID(c, "skillId")
	if err != nil {
		return nil
	}

	if err := s.skillService.WantSkill(c.Context(), callerID(c), skillID); err != nil {
		return mapServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DropWantedSkill handles DELETE /api/users/me/skills/wanted/:skillId
func (s *Server) DropWantedSkill(c *fiber.Ctx) error {
	skillID, err := s.parseID(c, "skillId")
	if err != nil {
		return nil
	}

	if err := s.skillService.DropWantedSkill(c.Context(), callerID(c), skillID); err != nil {
		return mapServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
