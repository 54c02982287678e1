package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Post content types form a closed set; anything else is rejected at the edge.
const (
	ContentTypeText  = "text"
	ContentTypeImage = "image"
	ContentTypeVideo = "video"
	ContentTypeLink  = "link"
)

// Post represents content published into a community. Posts are never
// physically deleted; the author can flip IsRemoved, after which the row is
// invisible to every read path.
type Post struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID    uuid.UUID      `gorm:"type:uuid;index;not null" json:"author_id"`
	CommunityID uuid.UUID      `gorm:"type:uuid;index;not null" json:"community_id"`
	Content     string         `gorm:"type:text;not null" json:"content"`
	ContentType string         `gorm:"size:16;not null" json:"content_type"`
	Metadata    datatypes.JSON `json:"metadata,omitempty"` // opaque, stored and returned verbatim
	IsRemoved   bool           `gorm:"default:false;index" json:"is_removed"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
