package server

import (
	"fmt"
	"testing"

	"careerboard/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment_Validation(t *testing.T) {
	t.Parallel()
	app, _ := newTestServer(t)
	career := createCareer(t, app, "alice", "title", "content")

	tests := []struct {
		name       string
		body       fiber.Map
		wantStatus int
	}{
		{"missing post", fiber.Map{"username": "bob", "content": "hi"}, fiber.StatusBadRequest},
		{"missing username", fiber.Map{"post": career.ID, "content": "hi"}, fiber.StatusBadRequest},
		{"missing content", fiber.Map{"post": career.ID, "username": "bob"}, fiber.StatusBadRequest},
		{"unknown post", fiber.Map{"post": 9999, "username": "bob", "content": "hi"}, fiber.StatusNotFound},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, app, fiber.MethodPost, "/comments/", tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestComment_OwnershipIsCommentAuthor(t *testing.T) {
	t.Parallel()
	app, _ := newTestServer(t)
	career := createCareer(t, app, "alice", "title", "content")
	comment := createComment(t, app, career.ID, "bob", "original")

	t.Run("career author cannot edit someone else's comment", func(t *testing.T) {
		resp := doRequest(t, app, fiber.MethodPatch,
			fmt.Sprintf("/comments/%d", comment.ID),
			fiber.Map{"username": "alice", "content": "hijacked"})
		require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		errBody := decodeJSON[errorJSON](t, resp)
		assert.Equal(t, "You can only edit your own comments", errBody.Error)
		assert.Equal(t, models.CodeUnauthorized, errBody.Code)
	})

	t.Run("missing username on update is 400", func(t *testing.T) {
		resp := doRequest(t, app, fiber.MethodPatch,
			fmt.Sprintf("/comments/%d", comment.ID),
			fiber.Map{"content": "anonymous edit"})
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		errBody := decodeJSON[errorJSON](t, resp)
		assert.Equal(t, "Username is required to update a comment", errBody.Error)
	})

	t.Run("comment author edits their comment", func(t *testing.T) {
		resp := doRequest(t, app, fiber.MethodPut,
			fmt.Sprintf("/comments/%d", comment.ID),
			fiber.Map{"username": "bob", "content": "edited"})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		updated := decodeJSON[commentJSON](t, resp)
		assert.Equal(t, "edited", updated.Content)
		assert.Equal(t, "bob", updated.Username)
		assert.Equal(t, career.ID, updated.Post)
	})

	t.Run("career author cannot delete the comment", func(t *testing.T) {
		resp := doRequest(t, app, fiber.MethodDelete,
			fmt.Sprintf("/comments/%d?username=alice", comment.ID), nil)
		require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		errBody := decodeJSON[errorJSON](t, resp)
		assert.Equal(t, "You can only delete your own comments", errBody.Error)
	})

	t.Run("missing username on delete is 400", func(t *testing.T) {
		resp := doRequest(t, app, fiber.MethodDelete,
			fmt.Sprintf("/comments/%d", comment.ID), nil)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		errBody := decodeJSON[errorJSON](t, resp)
		assert.Equal(t, "Username is required to delete a comment", errBody.Error)
	})

	t.Run("comment author deletes it", func(t *testing.T) {
		resp := doRequest(t, app, fiber.MethodDelete,
			fmt.Sprintf("/comments/%d?username=bob", comment.ID), nil)
		require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

		resp = doRequest(t, app, fiber.MethodDelete,
			fmt.Sprintf("/comments/%d?username=bob", comment.ID), nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestListComments(t *testing.T) {
	t.Parallel()
	app, _ := newTestServer(t)
	one := createCareer(t, app, "alice", "one", "content")
	two := createCareer(t, app, "bob", "two", "content")
	createComment(t, app, one.ID, "carol", "on one")
	createComment(t, app, two.ID, "carol", "on two")
	createComment(t, app, one.ID, "dave", "later on one")

	t.Run("all comments newest first", func(t *testing.T) {
		resp := doRequest(t, app, fiber.MethodGet, "/comments/", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		comments := decodeJSON[[]commentJSON](t, resp)
		assert.Len(t, comments, 3)
	})

	t.Run("filtered by post", func(t *testing.T) {
		resp := doRequest(t, app, fiber.MethodGet, fmt.Sprintf("/comments/?post=%d", two.ID), nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		comments := decodeJSON[[]commentJSON](t, resp)
		require.Len(t, comments, 1)
		assert.Equal(t, "on two", comments[0].Content)
	})

	t.Run("garbage post id is 400", func(t *testing.T) {
		resp := doRequest(t, app, fiber.MethodGet, "/comments/?post=abc", nil)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		errBody := decodeJSON[errorJSON](t, resp)
		assert.Equal(t, "Invalid post ID", errBody.Error)
	})

	t.Run("unknown post is an empty array, not 404", func(t *testing.T) {
		resp := doRequest(t, app, fiber.MethodGet, "/comments/?post=9999", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		comments := decodeJSON[[]commentJSON](t, resp)
		assert.NotNil(t, comments)
		assert.Empty(t, comments)
	})
}
