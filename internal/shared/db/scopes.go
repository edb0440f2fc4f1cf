// Package db provides database utilities including transaction management and query scopes.
package db

import (
	"gorm.io/gorm"
)

// Paginate applies LIMIT/OFFSET for a 1-based page.
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		if pageSize < 1 {
			return db
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

// Omit drops large columns from list queries.
func Omit(columns ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Omit(columns...)
	}
}
