package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Community groups posts under an owner. Communities have no soft-delete or
// ownership-gated mutation in the current API.
type Community struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string     `gorm:"size:255;not null" json:"name"`
	Description   string     `gorm:"type:text" json:"description,omitempty"`
	Authoritarian bool       `gorm:"default:false" json:"authoritarian"`
	OwnerID       uuid.UUID  `gorm:"type:uuid;index;not null" json:"owner_id"`
	ThemeID       *uuid.UUID `gorm:"type:uuid" json:"theme_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (c *Community) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
