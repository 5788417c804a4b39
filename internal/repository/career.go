// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"careerboard/internal/models"

	"gorm.io/gorm"
)

// CareerFilter describes the AND-combined list criteria for careers.
// Zero values mean "no constraint". Ordering is a single sort key, optionally
// prefixed with '-' for descending; unrecognized keys fall back to the
// default newest-first ordering.
type CareerFilter struct {
	Username      string
	Title         string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	Ordering      string
	Limit         int
	Offset        int
}

// CareerRepository defines the interface for career data operations.
type CareerRepository interface {
	Create(ctx context.Context, career *models.Career) error
	GetByID(ctx context.Context, id uint) (*models.Career, error)
	List(ctx context.Context, filter CareerFilter) ([]*models.Career, error)
	Update(ctx context.Context, career *models.Career) error
	Delete(ctx context.Context, id uint) error
}

type careerRepository struct {
	db *gorm.DB
}

// NewCareerRepository creates a new career repository.
func NewCareerRepository(db *gorm.DB) CareerRepository {
	return &careerRepository{db: db}
}

func (r *careerRepository) Create(ctx context.Context, career *models.Career) error {
	return r.db.WithContext(ctx).Create(career).Error
}

func (r *careerRepository) GetByID(ctx context.Context, id uint) (*models.Career, error) {
	var career models.Career
	if err := r.db.WithContext(ctx).First(&career, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Career", id)
		}
		return nil, err
	}
	return &career, nil
}

func (r *careerRepository) List(ctx context.Context, filter CareerFilter) ([]*models.Career, error) {
	careers := make([]*models.Career, 0)

	q := r.db.WithContext(ctx).Model(&models.Career{})
	if filter.Username != "" {
		q = q.Where(`LOWER(username) LIKE LOWER(?) ESCAPE '\'`, "%"+escapeLike(filter.Username)+"%")
	}
	if filter.Title != "" {
		q = q.Where(`LOWER(title) LIKE LOWER(?) ESCAPE '\'`, "%"+escapeLike(filter.Title)+"%")
	}
	if filter.CreatedAfter != nil {
		q = q.Where("created_datetime >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		q = q.Where("created_datetime <= ?", *filter.CreatedBefore)
	}

	q = applyCareerOrdering(q, filter.Ordering)
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	if err := q.Find(&careers).Error; err != nil {
		return nil, err
	}
	return careers, nil
}

// careerOrderingColumns is the whitelist of sortable columns. Anything else
// falls through to the default ordering.
var careerOrderingColumns = map[string]string{
	"created_datetime": "created_datetime",
	"title":            "title",
	"username":         "username",
}

// applyCareerOrdering appends the ORDER BY clause for the requested sort key.
// A '-' prefix requests descending order; the default is newest first.
func applyCareerOrdering(db *gorm.DB, ordering string) *gorm.DB {
	key := ordering
	desc := false
	if strings.HasPrefix(key, "-") {
		key = key[1:]
		desc = true
	}

	column, ok := careerOrderingColumns[key]
	if !ok {
		return db.Order("created_datetime DESC")
	}
	if desc {
		return db.Order(column + " DESC")
	}
	return db.Order(column + " ASC")
}

// escapeLike neutralizes LIKE wildcards in user-supplied match strings so a
// literal '%' or '_' in a filter matches itself.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	return strings.ReplaceAll(s, "_", `\_`)
}

func (r *careerRepository) Update(ctx context.Context, career *models.Career) error {
	return r.db.WithContext(ctx).Save(career).Error
}

// Delete removes the career and all of its comments in one transaction, so a
// failed comment sweep never leaves an orphaned parent delete.
func (r *careerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Career{}, id).Error
	})
}
