package service

import (
	"context"
	"testing"

	"careerboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn  func(context.Context, *models.Comment) error
	getByIDFn func(context.Context, uint) (*models.Comment, error)
	listFn    func(context.Context, *uint) ([]*models.Comment, error)
	updateFn  func(context.Context, *models.Comment) error
	deleteFn  func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) List(ctx context.Context, postID *uint) ([]*models.Comment, error) {
	return s.listFn(ctx, postID)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:  func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listFn:    func(_ context.Context, _ *uint) ([]*models.Comment, error) { return nil, nil },
		updateFn:  func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:  func(_ context.Context, _ uint) error { return nil },
	}
}

func TestCommentService_CreateComment_Validation(t *testing.T) {
	t.Parallel()

	svc := NewCommentService(noopCommentRepo(), noopCareerRepo())
	ctx := context.Background()

	tests := []struct {
		name string
		in   CreateCommentInput
	}{
		{"missing post", CreateCommentInput{Username: "bob", Content: "hi"}},
		{"missing username", CreateCommentInput{PostID: 1, Content: "hi"}},
		{"missing content", CreateCommentInput{PostID: 1, Username: "bob"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.CreateComment(ctx, tt.in)
			assertValidationError(t, err)
		})
	}
}

func TestCommentService_CreateComment_UnknownParentIsNotFound(t *testing.T) {
	t.Parallel()

	careers := noopCareerRepo()
	careers.getByIDFn = func(_ context.Context, id uint) (*models.Career, error) {
		return nil, models.NewNotFoundError("Career", id)
	}
	comments := noopCommentRepo()
	comments.createFn = func(_ context.Context, _ *models.Comment) error {
		t.Fatal("create must not be called for a dangling post id")
		return nil
	}

	svc := NewCommentService(comments, careers)
	_, err := svc.CreateComment(context.Background(), CreateCommentInput{
		PostID:   42,
		Username: "bob",
		Content:  "hi",
	})
	assertNotFoundError(t, err)
}

func TestCommentService_CreateComment_Success(t *testing.T) {
	t.Parallel()

	comments := noopCommentRepo()
	comments.createFn = func(_ context.Context, comment *models.Comment) error {
		comment.ID = 3
		return nil
	}
	comments.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, PostID: 1, Username: "bob", Content: "hi"}, nil
	}

	svc := NewCommentService(comments, noopCareerRepo())
	comment, err := svc.CreateComment(context.Background(), CreateCommentInput{
		PostID:   1,
		Username: "bob",
		Content:  "hi",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(3), comment.ID)
	assert.Equal(t, uint(1), comment.PostID)
}

func TestCommentService_ListComments_NoExistenceCheck(t *testing.T) {
	t.Parallel()

	careers := noopCareerRepo()
	careers.getByIDFn = func(_ context.Context, _ uint) (*models.Career, error) {
		t.Fatal("list must not probe the career store")
		return nil, nil
	}
	comments := noopCommentRepo()
	comments.listFn = func(_ context.Context, postID *uint) ([]*models.Comment, error) {
		require.NotNil(t, postID)
		assert.Equal(t, uint(99), *postID)
		return []*models.Comment{}, nil
	}

	svc := NewCommentService(comments, careers)
	postID := uint(99)
	got, err := svc.ListComments(context.Background(), &postID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCommentService_UpdateComment_Gates(t *testing.T) {
	t.Parallel()

	stored := func() *models.Comment {
		return &models.Comment{ID: 5, PostID: 1, Username: "bob", Content: "original"}
	}

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()
		comments := noopCommentRepo()
		comments.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		svc := NewCommentService(comments, noopCareerRepo())
		_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{CommentID: 5, Content: "x"})
		assertNotFoundError(t, err)
	})

	t.Run("missing caller username", func(t *testing.T) {
		t.Parallel()
		comments := noopCommentRepo()
		comments.getByIDFn = func(_ context.Context, _ uint) (*models.Comment, error) { return stored(), nil }
		svc := NewCommentService(comments, noopCareerRepo())
		_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{CommentID: 5, Content: "x"})
		assertValidationError(t, err)
	})

	t.Run("gate compares the comment's own username", func(t *testing.T) {
		t.Parallel()
		comments := noopCommentRepo()
		comments.getByIDFn = func(_ context.Context, _ uint) (*models.Comment, error) { return stored(), nil }
		svc := NewCommentService(comments, noopCareerRepo())
		// "alice" may own the parent career, but the comment belongs to bob.
		_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{
			CommentID:      5,
			CallerUsername: "alice",
			Content:        "x",
		})
		assertUnauthorizedError(t, err)
	})

	t.Run("owner updates content", func(t *testing.T) {
		t.Parallel()
		record := stored()
		comments := noopCommentRepo()
		comments.getByIDFn = func(_ context.Context, _ uint) (*models.Comment, error) { return record, nil }
		svc := NewCommentService(comments, noopCareerRepo())
		comment, err := svc.UpdateComment(context.Background(), UpdateCommentInput{
			CommentID:      5,
			CallerUsername: "bob",
			Content:        "edited",
		})
		require.NoError(t, err)
		assert.Equal(t, "edited", comment.Content)
		assert.Equal(t, "bob", comment.Username)
	})
}

func TestCommentService_DeleteComment_Gates(t *testing.T) {
	t.Parallel()

	t.Run("non-owner cannot delete", func(t *testing.T) {
		t.Parallel()
		comments := noopCommentRepo()
		comments.getByIDFn = func(_ context.Context, _ uint) (*models.Comment, error) {
			return &models.Comment{ID: 5, Username: "bob"}, nil
		}
		comments.deleteFn = func(_ context.Context, _ uint) error {
			t.Fatal("delete must not be called on ownership mismatch")
			return nil
		}
		svc := NewCommentService(comments, noopCareerRepo())
		err := svc.DeleteComment(context.Background(), DeleteCommentInput{CommentID: 5, CallerUsername: "alice"})
		assertUnauthorizedError(t, err)
	})

	t.Run("owner can delete", func(t *testing.T) {
		t.Parallel()
		deleted := false
		comments := noopCommentRepo()
		comments.getByIDFn = func(_ context.Context, _ uint) (*models.Comment, error) {
			return &models.Comment{ID: 5, Username: "bob"}, nil
		}
		comments.deleteFn = func(_ context.Context, id uint) error {
			deleted = true
			assert.Equal(t, uint(5), id)
			return nil
		}
		svc := NewCommentService(comments, noopCareerRepo())
		err := svc.DeleteComment(context.Background(), DeleteCommentInput{CommentID: 5, CallerUsername: "bob"})
		require.NoError(t, err)
		assert.True(t, deleted)
	})
}
