// Package seed provides helpers to create development and demo data for the
// content API. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"careerboard/internal/models"
	"careerboard/internal/observability"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options controls how much demo data the seeder creates.
type Options struct {
	Authors           int
	CareersPerAuthor  int
	CommentsPerCareer int
}

// DefaultOptions is a small data set suitable for local development.
func DefaultOptions() Options {
	return Options{
		Authors:           5,
		CareersPerAuthor:  4,
		CommentsPerCareer: 3,
	}
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db}
}

// Username generates a plausible author handle.
func (f *Factory) Username() string {
	return strings.ToLower(gofakeit.Username())
}

// CreateCareer persists a demo career for the given author, applying any overrides.
func (f *Factory) CreateCareer(username string, overrides ...func(*models.Career)) (*models.Career, error) {
	career := &models.Career{
		Username: username,
		Title:    gofakeit.Sentence(5),
		Content:  gofakeit.Paragraph(2, 4, 12, " "),
	}
	for _, override := range overrides {
		override(career)
	}
	if err := f.db.Create(career).Error; err != nil {
		return nil, fmt.Errorf("seed career: %w", err)
	}
	observability.SeededRecords.WithLabelValues("career").Inc()
	return career, nil
}

// CreateComment persists a demo comment on the given career.
func (f *Factory) CreateComment(career *models.Career, username string, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:   career.ID,
		Username: username,
		Content:  gofakeit.Sentence(10),
	}
	for _, override := range overrides {
		override(comment)
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, fmt.Errorf("seed comment: %w", err)
	}
	observability.SeededRecords.WithLabelValues("comment").Inc()
	return comment, nil
}

// Run populates the database with demo authors, careers and comments.
// Commenters are drawn from the full author pool, so most careers end up
// with replies from other users.
func Run(db *gorm.DB, opts Options) error {
	f := NewFactory(db)

	authors := make([]string, 0, opts.Authors)
	for i := 0; i < opts.Authors; i++ {
		authors = append(authors, f.Username())
	}
	if len(authors) == 0 {
		return nil
	}

	for _, author := range authors {
		for i := 0; i < opts.CareersPerAuthor; i++ {
			career, err := f.CreateCareer(author)
			if err != nil {
				return err
			}
			for j := 0; j < opts.CommentsPerCareer; j++ {
				commenter := authors[rand.Intn(len(authors))]
				if _, err := f.CreateComment(career, commenter); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
