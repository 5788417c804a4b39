package repository

import (
	"testing"
	"time"

	"careerboard/internal/database"
	"careerboard/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory sqlite database with the schema migrated.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// seedCareer inserts a career with an explicit creation time so ordering and
// range tests are deterministic.
func seedCareer(t *testing.T, db *gorm.DB, username, title string, created time.Time) *models.Career {
	t.Helper()

	career := &models.Career{
		Username:        username,
		Title:           title,
		Content:         "content by " + username,
		CreatedDatetime: created,
	}
	require.NoError(t, db.Create(career).Error)
	return career
}

func seedComment(t *testing.T, db *gorm.DB, postID uint, username, content string, created time.Time) *models.Comment {
	t.Helper()

	comment := &models.Comment{
		PostID:          postID,
		Username:        username,
		Content:         content,
		CreatedDatetime: created,
	}
	require.NoError(t, db.Create(comment).Error)
	return comment
}
