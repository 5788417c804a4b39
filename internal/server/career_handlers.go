// Package server contains the HTTP handlers and route wiring for the content API.
package server

import (
	"careerboard/internal/models"
	"careerboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// careerBody is the request shape shared by create and update. On update the
// username field is consumed for the ownership check only and is never
// written to the record.
type careerBody struct {
	Username string `json:"username"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

// ListCareers handles GET /careers/
func (s *Server) ListCareers(c *fiber.Ctx) error {
	ctx := c.UserContext()
	page := parsePagination(c, 20)

	in := service.ListCareersInput{
		Username: c.Query("username"),
		Title:    c.Query("title"),
		Ordering: c.Query("ordering"),
		Limit:    page.Limit,
		Offset:   page.Offset,
	}

	if raw := c.Query("created_after"); raw != "" {
		t, err := parseTimestamp(raw)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid created_after timestamp"))
		}
		in.CreatedAfter = &t
	}
	if raw := c.Query("created_before"); raw != "" {
		t, err := parseTimestamp(raw)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid created_before timestamp"))
		}
		in.CreatedBefore = &t
	}

	careers, err := s.careerService.ListCareers(ctx, in)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(careers)
}

// GetCareer handles GET /careers/:id
func (s *Server) GetCareer(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	career, err := s.careerService.GetCareer(ctx, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(career)
}

// CreateCareer handles POST /careers/
func (s *Server) CreateCareer(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req careerBody
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	career, err := s.careerService.CreateCareer(ctx, service.CreateCareerInput{
		Username: req.Username,
		Title:    req.Title,
		Content:  req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(career)
}

// UpdateCareer handles PUT and PATCH /careers/:id. Both verbs apply the same
// partial-update semantics; fields absent from the body stay untouched.
func (s *Server) UpdateCareer(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req careerBody
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	career, err := s.careerService.UpdateCareer(ctx, service.UpdateCareerInput{
		CareerID:       id,
		CallerUsername: req.Username,
		Title:          req.Title,
		Content:        req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	// Full representation, not just the fields that changed.
	return c.JSON(career)
}

// DeleteCareer handles DELETE /careers/:id?username=...
// Identity travels on the query string because the verb carries no body.
func (s *Server) DeleteCareer(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.careerService.DeleteCareer(ctx, service.DeleteCareerInput{
		CareerID:       id,
		CallerUsername: c.Query("username"),
	}); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
