// Package access decides who may read and write a board: it resolves the
// access level of a caller, hands out the short edit lease of a board and
// gates every content mutation behind both.
package access

import (
	"fmt"
	"time"

	"github.com/svera/corkboard/internal/errs"
	"github.com/svera/corkboard/internal/webserver/model"
)

// Type is the extent of the access a caller has over a board
type Type string

const (
	None Type = "none"
	View Type = model.AccessView
	Edit Type = model.AccessEdit
)

// Caller identifies who performs a request: either a signed in user or
// someone holding an invitation link. UserID takes precedence when both are set.
type Caller struct {
	UserID      uint
	InviteToken string
}

// Anonymous reports whether the caller has not signed in
func (c Caller) Anonymous() bool {
	return c.UserID == 0
}

// Access is the outcome of resolving a caller against a board
type Access struct {
	HasAccess bool
	IsOwner   bool
	Type      Type
	// Identity is the value stored as lock holder and as author of content:
	// the user ID for signed in callers, the invite email for anonymous ones.
	Identity string
	Email    string
}

// CanEdit reports whether the access allows non chat writes
func (a Access) CanEdit() bool {
	return a.HasAccess && a.Type == Edit
}

type userStore interface {
	FindByID(id uint) (*model.User, error)
}

type inviteStore interface {
	FindByBoardAndEmail(boardID uint, email string) (*model.Invite, error)
	FindByToken(boardID uint, token string) (*model.Invite, error)
}

// Clock supplies the current time, shared by every lease and expiry comparison
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Resolver finds out the access level of callers. It never writes.
type Resolver struct {
	users   userStore
	invites inviteStore
}

func NewResolver(users userStore, invites inviteStore) *Resolver {
	return &Resolver{
		users:   users,
		invites: invites,
	}
}

// Resolve returns the access the caller has over board. Storage failures are
// returned as errors and never grant access.
func (r *Resolver) Resolve(board *model.Board, caller Caller) (Access, error) {
	if caller.Anonymous() {
		return r.resolveInvite(board, caller.InviteToken)
	}

	identity := model.UserIdentity(caller.UserID)
	if board.OwnerID == caller.UserID {
		return Access{HasAccess: true, IsOwner: true, Type: Edit, Identity: identity}, nil
	}

	user, err := r.users.FindByID(caller.UserID)
	if err != nil {
		return Access{Type: None}, fmt.Errorf("resolving user %d: %w", caller.UserID, err)
	}
	if user == nil {
		return Access{Type: None}, nil
	}

	invite, err := r.invites.FindByBoardAndEmail(board.ID, user.Email)
	if err != nil {
		return Access{Type: None}, fmt.Errorf("resolving invite for board %d: %w", board.ID, err)
	}
	if invite == nil {
		return Access{Type: None, Identity: identity, Email: user.Email}, nil
	}

	return Access{HasAccess: true, Type: Type(invite.Type), Identity: identity, Email: user.Email}, nil
}

func (r *Resolver) resolveInvite(board *model.Board, token string) (Access, error) {
	if token == "" {
		return Access{Type: None}, nil
	}

	invite, err := r.invites.FindByToken(board.ID, token)
	if err != nil {
		return Access{Type: None}, fmt.Errorf("resolving invite token for board %d: %w", board.ID, err)
	}
	if invite == nil {
		return Access{Type: None}, nil
	}

	return Access{HasAccess: true, Type: Type(invite.Type), Identity: invite.Email, Email: invite.Email}, nil
}

// Require resolves the caller and fails with errs.ErrUnauthorized if it has no access at all
func (r *Resolver) Require(board *model.Board, caller Caller) (Access, error) {
	access, err := r.Resolve(board, caller)
	if err != nil {
		return access, err
	}
	if !access.HasAccess {
		return access, errs.ErrUnauthorized
	}
	return access, nil
}
