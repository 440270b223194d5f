package model

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	DefaultBoardLifetime = 24 * time.Hour
	MaxTitleLength       = 100
)

type Board struct {
	ID          uint `gorm:"primarykey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Title       string `gorm:"not null"`
	OwnerID     uint   `gorm:"index; not null"`
	ExpiresAt   time.Time
	LockedUntil time.Time
	LockedBy    string
	// LockVersion is bumped on every lease acquisition, so acquisitions can be
	// done as a compare-and-set over the version read with the board.
	LockVersion uint `gorm:"not null; default:0"`
}

// NewBoard returns a board owned by ownerID which expires after lifetime.
// The lock starts lapsed and attributed to the owner.
func NewBoard(title string, ownerID uint, now time.Time, lifetime time.Duration) *Board {
	return &Board{
		Title:       strings.TrimSpace(title),
		OwnerID:     ownerID,
		CreatedAt:   now,
		ExpiresAt:   now.Add(lifetime),
		LockedUntil: now,
		LockedBy:    UserIdentity(ownerID),
	}
}

// Expired reports whether the board no longer accepts changes at the given instant
func (b Board) Expired(now time.Time) bool {
	return !now.Before(b.ExpiresAt)
}

// LockedFor reports whether the lease is held by an identity other than the passed one
func (b Board) LockedFor(identity string, now time.Time) bool {
	return !now.After(b.LockedUntil) && b.LockedBy != identity
}

func ValidateTitle(title string) map[string]string {
	errs := map[string]string{}
	title = strings.TrimSpace(title)

	if title == "" {
		errs["title"] = "Title cannot be empty"
	}

	if utf8.RuneCountInString(title) > MaxTitleLength {
		errs["title"] = "Title cannot be longer than 100 characters"
	}

	return errs
}
