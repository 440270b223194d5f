package model

import (
	"time"
	"unicode/utf8"
)

const (
	TypeChat = "chat"
	TypeText = "text"
	TypeNote = "note"

	MaxBodyLength = 5000
)

var ContentTypes = []string{TypeChat, TypeText, TypeNote}

// Content is an item placed on a board. Exactly one of UserID and UserEmail is set,
// depending on whether its author was signed in or used an invitation link.
type Content struct {
	ID             uint `gorm:"primarykey"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	BoardID        uint    `gorm:"index; not null"`
	UserID         *uint   `gorm:"index"`
	UserEmail      *string `gorm:"index"`
	Body           string  `gorm:"type:text; not null"`
	Type           string  `gorm:"not null; default:'text'"`
	Position       string
	LastModifiedBy string
	// Modified is the unix nanosecond stamp of the last change, unique and
	// increasing in commit order within a board, so pollers can ask for
	// everything changed after the last value they saw.
	Modified int64 `gorm:"index; not null; default:0"`
	Deleted  bool  `gorm:"not null; default:false"`
}

// Author returns the identity of who created the item
func (c Content) Author() string {
	if c.UserID != nil {
		return UserIdentity(*c.UserID)
	}
	if c.UserEmail != nil {
		return *c.UserEmail
	}
	return ""
}

func ValidateBody(body string) map[string]string {
	errs := map[string]string{}

	if body == "" {
		errs["message"] = "Content too short."
	}

	if utf8.RuneCountInString(body) > MaxBodyLength {
		errs["message"] = "Content too long."
	}

	return errs
}
