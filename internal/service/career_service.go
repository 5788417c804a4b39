// Package service implements the content contract: input validation, the
// ownership gate on mutation, and filter handling. Handlers stay thin and
// repositories stay dumb; everything with a decision in it lives here.
package service

import (
	"context"
	"time"

	"careerboard/internal/models"
	"careerboard/internal/repository"
)

// maxHandleLen caps username and title fields, mirroring the column size.
const maxHandleLen = 255

// CareerService carries the career CRUD contract.
type CareerService struct {
	careerRepo repository.CareerRepository
}

type CreateCareerInput struct {
	Username string
	Title    string
	Content  string
}

// ListCareersInput mirrors repository.CareerFilter; the service owns no list
// semantics beyond passing validated criteria through.
type ListCareersInput struct {
	Username      string
	Title         string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	Ordering      string
	Limit         int
	Offset        int
}

// UpdateCareerInput applies a partial update. Empty Title/Content mean
// "leave untouched"; a request supplying neither is an accepted no-op.
type UpdateCareerInput struct {
	CareerID       uint
	CallerUsername string
	Title          string
	Content        string
}

type DeleteCareerInput struct {
	CareerID       uint
	CallerUsername string
}

// NewCareerService creates a new career service.
func NewCareerService(careerRepo repository.CareerRepository) *CareerService {
	return &CareerService{careerRepo: careerRepo}
}

func (s *CareerService) ListCareers(ctx context.Context, in ListCareersInput) ([]*models.Career, error) {
	return s.careerRepo.List(ctx, repository.CareerFilter{
		Username:      in.Username,
		Title:         in.Title,
		CreatedAfter:  in.CreatedAfter,
		CreatedBefore: in.CreatedBefore,
		Ordering:      in.Ordering,
		Limit:         in.Limit,
		Offset:        in.Offset,
	})
}

func (s *CareerService) GetCareer(ctx context.Context, id uint) (*models.Career, error) {
	return s.careerRepo.GetByID(ctx, id)
}

func (s *CareerService) CreateCareer(ctx context.Context, in CreateCareerInput) (*models.Career, error) {
	if in.Username == "" {
		return nil, models.NewValidationError("Username is required")
	}
	if len(in.Username) > maxHandleLen {
		return nil, models.NewValidationError("Username too long (max 255 characters)")
	}
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxHandleLen {
		return nil, models.NewValidationError("Title too long (max 255 characters)")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}

	career := &models.Career{
		Username: in.Username,
		Title:    in.Title,
		Content:  in.Content,
	}
	if err := s.careerRepo.Create(ctx, career); err != nil {
		return nil, err
	}

	// Re-fetch so the response carries the store-assigned id and timestamp.
	return s.careerRepo.GetByID(ctx, career.ID)
}

// UpdateCareer enforces the ownership gate before any write: unknown id,
// then missing caller identity, then case-sensitive username mismatch.
// Username, id and created_datetime are never mutable through this call.
func (s *CareerService) UpdateCareer(ctx context.Context, in UpdateCareerInput) (*models.Career, error) {
	career, err := s.careerRepo.GetByID(ctx, in.CareerID)
	if err != nil {
		return nil, err
	}
	if in.CallerUsername == "" {
		return nil, models.NewValidationError("Username is required to update a post")
	}
	if career.Username != in.CallerUsername {
		return nil, models.NewUnauthorizedError("You can only edit your own posts")
	}

	if len(in.Title) > maxHandleLen {
		return nil, models.NewValidationError("Title too long (max 255 characters)")
	}

	if in.Title != "" {
		career.Title = in.Title
	}
	if in.Content != "" {
		career.Content = in.Content
	}

	if err := s.careerRepo.Update(ctx, career); err != nil {
		return nil, err
	}
	return s.careerRepo.GetByID(ctx, career.ID)
}

func (s *CareerService) DeleteCareer(ctx context.Context, in DeleteCareerInput) error {
	career, err := s.careerRepo.GetByID(ctx, in.CareerID)
	if err != nil {
		return err
	}
	if in.CallerUsername == "" {
		return models.NewValidationError("Username is required to delete a post")
	}
	if career.Username != in.CallerUsername {
		return models.NewUnauthorizedError("You can only delete your own posts")
	}

	return s.careerRepo.Delete(ctx, in.CareerID)
}
