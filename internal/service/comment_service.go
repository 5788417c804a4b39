package service

import (
	"context"

	"careerboard/internal/models"
	"careerboard/internal/repository"
)

// CommentService carries the comment CRUD contract. Ownership checks compare
// against the comment's own stored username, not the parent career's.
type CommentService struct {
	commentRepo repository.CommentRepository
	careerRepo  repository.CareerRepository
}

type CreateCommentInput struct {
	PostID   uint
	Username string
	Content  string
}

type UpdateCommentInput struct {
	CommentID      uint
	CallerUsername string
	Content        string
}

type DeleteCommentInput struct {
	CommentID      uint
	CallerUsername string
}

// NewCommentService creates a new comment service.
func NewCommentService(commentRepo repository.CommentRepository, careerRepo repository.CareerRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		careerRepo:  careerRepo,
	}
}

// ListComments returns comments newest first, optionally restricted to one
// career. It deliberately does not check that the career exists: after a
// cascade delete the filtered list must come back empty, not 404.
func (s *CommentService) ListComments(ctx context.Context, postID *uint) ([]*models.Comment, error) {
	return s.commentRepo.List(ctx, postID)
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.PostID == 0 {
		return nil, models.NewValidationError("Post is required")
	}
	if in.Username == "" {
		return nil, models.NewValidationError("Username is required")
	}
	if len(in.Username) > maxHandleLen {
		return nil, models.NewValidationError("Username too long (max 255 characters)")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}

	// The parent career must exist; a dangling post id is NotFound, not a
	// validation failure.
	if _, err := s.careerRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   in.PostID,
		Username: in.Username,
		Content:  in.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	if in.CallerUsername == "" {
		return nil, models.NewValidationError("Username is required to update a comment")
	}
	if comment.Username != in.CallerUsername {
		return nil, models.NewUnauthorizedError("You can only edit your own comments")
	}

	if in.Content != "" {
		comment.Content = in.Content
	}

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return err
	}
	if in.CallerUsername == "" {
		return models.NewValidationError("Username is required to delete a comment")
	}
	if comment.Username != in.CallerUsername {
		return models.NewUnauthorizedError("You can only delete your own comments")
	}

	return s.commentRepo.Delete(ctx, in.CommentID)
}
