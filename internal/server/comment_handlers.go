// Package server contains the HTTP handlers and route wiring for the content API.
package server

import (
	"strconv"

	"careerboard/internal/models"
	"careerboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListComments handles GET /comments/?post={id}
func (s *Server) ListComments(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var postID *uint
	if raw := c.Query("post"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid post ID"))
		}
		v := uint(id)
		postID = &v
	}

	comments, err := s.commentService.ListComments(ctx, postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(comments)
}

// CreateComment handles POST /comments/ with body {post, username, content}.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		Post     uint   `json:"post"`
		Username string `json:"username"`
		Content  string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(ctx, service.CreateCommentInput{
		PostID:   req.Post,
		Username: req.Username,
		Content:  req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// UpdateComment handles PUT and PATCH /comments/:id. The username in the body
// is the caller's asserted identity, checked against the comment's own author.
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req struct {
		Username string `json:"username"`
		Content  string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.UpdateComment(ctx, service.UpdateCommentInput{
		CommentID:      id,
		CallerUsername: req.Username,
		Content:        req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(comment)
}

// DeleteComment handles DELETE /comments/:id?username=...
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(ctx, service.DeleteCommentInput{
		CommentID:      id,
		CallerUsername: c.Query("username"),
	}); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
