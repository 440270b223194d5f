package access

import (
	"fmt"
	"time"

	"github.com/svera/corkboard/internal/webserver/model"
)

// DefaultLease approximates "this identity is actively typing"
const DefaultLease = 5 * time.Second

type boardLocker interface {
	AcquireLock(id, version uint, holder string, until time.Time) (bool, error)
}

// Locker hands out the edit lease of boards. There is no release: leases lapse.
type Locker struct {
	boards boardLocker
	clock  Clock
	lease  time.Duration
}

func NewLocker(boards boardLocker, clock Clock, lease time.Duration) *Locker {
	if lease <= 0 {
		lease = DefaultLease
	}
	return &Locker{
		boards: boards,
		clock:  clock,
		lease:  lease,
	}
}

// TryAcquire grants the lease of board to identity if it lapsed or identity
// already holds it. A lease held by someone else is reported as not granted
// with a nil error; storage failures are returned and never grant the lease.
// On success the board is updated in place with the new lease.
func (l *Locker) TryAcquire(board *model.Board, identity string) (bool, error) {
	now := l.clock.Now()
	if board.LockedFor(identity, now) {
		return false, nil
	}

	until := now.Add(l.lease)
	granted, err := l.boards.AcquireLock(board.ID, board.LockVersion, identity, until)
	if err != nil {
		return false, fmt.Errorf("acquiring lock of board %d: %w", board.ID, err)
	}
	if !granted {
		return false, nil
	}

	board.LockedUntil = until
	board.LockedBy = identity
	board.LockVersion++
	return true, nil
}

// Lease returns the duration of granted leases
func (l *Locker) Lease() time.Duration {
	return l.lease
}
