package repository

import "gorm.io/gorm"

// notDeleted is the default scope for master-data queries. Every list/search
// goes through it so a new query site cannot accidentally leak soft-deleted
// rows; lookups by ID stay unscoped for audit access.
func notDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}
