package access

import (
	"time"

	"github.com/svera/corkboard/internal/errs"
	"github.com/svera/corkboard/internal/webserver/model"
)

// Gate runs the checks every write to a board passes before reaching storage
type Gate struct {
	resolver *Resolver
	locker   *Locker
	clock    Clock
}

func NewGate(resolver *Resolver, locker *Locker, clock Clock) *Gate {
	return &Gate{
		resolver: resolver,
		locker:   locker,
		clock:    clock,
	}
}

// Read checks that the caller can see the board. Expired boards are still readable.
func (g *Gate) Read(board *model.Board, caller Caller) (Access, error) {
	if board == nil {
		return Access{Type: None}, errs.ErrNotFound
	}
	return g.resolver.Require(board, caller)
}

// Authorize checks that the caller can write to the board. Chat writes only
// need some access; any other write needs edit access and the board lease,
// which is acquired, or renewed, as a side effect.
func (g *Gate) Authorize(board *model.Board, caller Caller, wantEdit bool) (Access, error) {
	if board == nil {
		return Access{Type: None}, errs.ErrNotFound
	}
	if board.Expired(g.clock.Now()) {
		return Access{Type: None}, errs.ErrExpired
	}

	access, err := g.resolver.Require(board, caller)
	if err != nil {
		return access, err
	}
	if !wantEdit {
		return access, nil
	}
	if !access.CanEdit() {
		return access, errs.ErrUnauthorized
	}

	granted, err := g.locker.TryAcquire(board, access.Identity)
	if err != nil {
		return access, err
	}
	if !granted {
		return access, errs.ErrLocked
	}
	return access, nil
}

// AuthorizeOwner checks that the caller owns the board. Unless allowExpired is
// set, expired boards are rejected, as only removals make sense on them.
func (g *Gate) AuthorizeOwner(board *model.Board, caller Caller, allowExpired bool) error {
	if board == nil {
		return errs.ErrNotFound
	}
	if !allowExpired && board.Expired(g.clock.Now()) {
		return errs.ErrExpired
	}
	if caller.Anonymous() || board.OwnerID != caller.UserID {
		return errs.ErrUnauthorized
	}
	return nil
}

// Locked reports whether the board lease is held by someone other than identity
func (g *Gate) Locked(board *model.Board, identity string) bool {
	return board.LockedFor(identity, g.clock.Now())
}

// Expired reports whether the board no longer accepts writes
func (g *Gate) Expired(board *model.Board) bool {
	return board.Expired(g.clock.Now())
}

// Now returns the instant the gate compares leases and expiries against
func (g *Gate) Now() time.Time {
	return g.clock.Now()
}
