package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is a reply to a post, optionally threaded under a parent comment.
// Lifecycle mirrors Post: author-only soft delete, removed rows invisible.
type Comment struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID        uuid.UUID  `gorm:"type:uuid;index;not null" json:"author_id"`
	PostID          uuid.UUID  `gorm:"type:uuid;index;not null" json:"post_id"`
	Content         string     `gorm:"type:text;not null" json:"content"`
	ParentCommentID *uuid.UUID `gorm:"type:uuid" json:"parent_comment_id,omitempty"`
	IsRemoved       bool       `gorm:"default:false;index" json:"is_removed"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
