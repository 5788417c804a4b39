// Package models contains data structures for the application's domain models.
package models

import "time"

// Career represents a top-level authored text post.
//
// Username is fixed at creation time and acts as the ownership credential for
// later mutation; it is compared case-sensitively against the caller-supplied
// username on update and delete.
type Career struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Username        string    `gorm:"size:255;not null;index" json:"username"`
	CreatedDatetime time.Time `gorm:"column:created_datetime;not null;autoCreateTime;index" json:"created_datetime"`
	Title           string    `gorm:"size:255;not null" json:"title"`
	Content         string    `gorm:"type:text;not null" json:"content"`
}

// TableName specifies the table name for GORM.
func (Career) TableName() string {
	return "careers"
}
