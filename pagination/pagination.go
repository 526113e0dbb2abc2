// Package pagination translates 1-based page requests into GORM scopes,
// shared by the product and user listings.
package pagination

import "gorm.io/gorm"

// Paginate builds a scope ordering by sortField and selecting page pageNum
// of size pageSize. Page numbers below 1 are clamped to 1. Any sortDir
// other than the exact literal "asc" sorts descending.
func Paginate(pageNum, pageSize int, sortField, sortDir string) func(*gorm.DB) *gorm.DB {
	if pageNum < 1 {
		pageNum = 1
	}
	order := sortField + " desc"
	if sortDir == "asc" {
		order = sortField + " asc"
	}
	offset := (pageNum - 1) * pageSize
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(order).Offset(offset).Limit(pageSize)
	}
}
