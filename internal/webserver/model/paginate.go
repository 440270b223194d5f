package model

import (
	"gorm.io/gorm"
)

const (
	BoardsPerPage   = 20
	maxResultsLimit = 100
)

// Paginate limits a query to the rows of the requested page, counting from 1
func Paginate(currentPage int, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if currentPage < 1 {
			currentPage = 1
		}

		switch {
		case pageSize > maxResultsLimit:
			pageSize = maxResultsLimit
		case pageSize <= 0:
			pageSize = BoardsPerPage
		}

		offset := (currentPage - 1) * pageSize
		return db.Offset(offset).Limit(pageSize)
	}
}
