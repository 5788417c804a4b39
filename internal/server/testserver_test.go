package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"careerboard/internal/config"
	"careerboard/internal/database"
	"careerboard/internal/repository"
	"careerboard/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer wires a Server onto an in-memory sqlite database. It builds
// the struct directly instead of going through NewServerWithDeps so repeated
// tests do not re-register Prometheus collectors.
func newTestServer(t *testing.T) (*fiber.App, *Server) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	careerRepo := repository.NewCareerRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	s := &Server{
		config:         &config.Config{Env: "test", Port: "0"},
		db:             db,
		careerRepo:     careerRepo,
		commentRepo:    commentRepo,
		careerService:  service.NewCareerService(careerRepo),
		commentService: service.NewCommentService(commentRepo, careerRepo),
	}

	app := fiber.New()
	s.SetupRoutes(app)
	return app, s
}

// careerJSON mirrors the career wire representation.
type careerJSON struct {
	ID              uint      `json:"id"`
	Username        string    `json:"username"`
	CreatedDatetime time.Time `json:"created_datetime"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
}

// commentJSON mirrors the comment wire representation.
type commentJSON struct {
	ID              uint      `json:"id"`
	Post            uint      `json:"post"`
	Username        string    `json:"username"`
	Content         string    `json:"content"`
	CreatedDatetime time.Time `json:"created_datetime"`
}

type errorJSON struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NoError(t, resp.Body.Close())
	return out
}

// createCareer posts a career and returns its wire representation.
func createCareer(t *testing.T, app *fiber.App, username, title, content string) careerJSON {
	t.Helper()

	resp := doRequest(t, app, fiber.MethodPost, "/careers/", fiber.Map{
		"username": username,
		"title":    title,
		"content":  content,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decodeJSON[careerJSON](t, resp)
}

func createComment(t *testing.T, app *fiber.App, postID uint, username, content string) commentJSON {
	t.Helper()

	resp := doRequest(t, app, fiber.MethodPost, "/comments/", fiber.Map{
		"post":     postID,
		"username": username,
		"content":  content,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decodeJSON[commentJSON](t, resp)
}
