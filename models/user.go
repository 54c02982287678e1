package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User is a profile row keyed by the identity the auth provider knows the
// caller as. Profiles are created once and are read-only afterwards.
type User struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	RealName  string            `gorm:"size:255;not null" json:"real_name"`
	BirthDate string            `gorm:"size:10;not null" json:"birth_date"` // YYYY-MM-DD
	Region    string            `gorm:"size:64" json:"region"`
	Verified  bool              `gorm:"default:false" json:"verified"`
	SSOLinks  datatypes.JSONMap `json:"sso_links,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// BeforeCreate assigns a fresh id when the row was built without one.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
