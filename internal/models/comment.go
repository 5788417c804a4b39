package models

import "time"

// Comment is a text reply attached to exactly one Career. Deleting the parent
// career removes its comments. The comment's own username, not the parent's,
// gates update and delete.
type Comment struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	PostID          uint      `gorm:"column:post_id;not null;index" json:"post"`
	Career          *Career   `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Username        string    `gorm:"size:255;not null" json:"username"`
	Content         string    `gorm:"type:text;not null" json:"content"`
	CreatedDatetime time.Time `gorm:"column:created_datetime;not null;autoCreateTime;index" json:"created_datetime"`
}

// TableName specifies the table name for GORM.
func (Comment) TableName() string {
	return "comments"
}
