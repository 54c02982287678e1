package models

import "gorm.io/gorm"

// Visible restricts a query to rows that have not been soft-deleted. Every
// read over posts or comments goes through this scope, including the
// existence check before an ownership-gated delete, so a removed row is
// not-found for all purposes.
func Visible(db *gorm.DB) *gorm.DB {
	return db.Where("is_removed = ?", false)
}
