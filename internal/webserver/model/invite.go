package model

import (
	"net/mail"
	"strings"
	"time"
)

const (
	AccessView = "view"
	AccessEdit = "edit"
)

// Invite grants access to a board to whoever holds its ID, which doubles as
// the token used in anonymous invitation links.
type Invite struct {
	ID        string `gorm:"primarykey"`
	CreatedAt time.Time
	BoardID   uint   `gorm:"not null; uniqueIndex:idx_invites_board_email"`
	Email     string `gorm:"type:text collate nocase; not null; uniqueIndex:idx_invites_board_email; index"`
	Type      string `gorm:"not null"`
}

// ValidateInvite checks the email and access type of a new invite
func ValidateInvite(email, accessType string) map[string]string {
	errs := map[string]string{}

	if _, err := mail.ParseAddress(email); err != nil || strings.ContainsAny(email, "<> ") {
		errs["email"] = "Incorrect email address"
	}

	if len(email) > 100 {
		errs["email"] = "Email cannot be longer than 100 characters"
	}

	if accessType != AccessView && accessType != AccessEdit {
		errs["type"] = "Incorrect access type"
	}

	return errs
}
