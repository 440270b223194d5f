package access

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/svera/corkboard/internal/errs"
	"github.com/svera/corkboard/internal/webserver/model"
)

type gateFixture struct {
	gate   *Gate
	boards *fakeBoards
	clock  *fakeClock
}

func newGateFixture() gateFixture {
	resolver, _, _, board := newResolverFixture()
	boards := newFakeBoards(board)
	clock := &fakeClock{now: t0}
	locker := NewLocker(boards, clock, DefaultLease)

	return gateFixture{
		gate:   NewGate(resolver, locker, clock),
		boards: boards,
		clock:  clock,
	}
}

func TestAuthorize_ContendedEdits(t *testing.T) {
	f := newGateFixture()
	editorA := Caller{InviteToken: "token-edit"}
	owner := Caller{UserID: 1}

	f.clock.now = t0.Add(time.Second)
	_, err := f.gate.Authorize(f.boards.load(10), editorA, true)
	require.NoError(t, err)

	f.clock.now = t0.Add(2 * time.Second)
	_, err = f.gate.Authorize(f.boards.load(10), owner, true)
	require.ErrorIs(t, err, errs.ErrLocked)

	f.clock.now = t0.Add(6*time.Second + time.Millisecond)
	access, err := f.gate.Authorize(f.boards.load(10), owner, true)
	require.NoError(t, err)
	require.Equal(t, "1", access.Identity)
	require.Equal(t, "1", f.boards.stored[10].LockedBy)
}

func TestAuthorize_ViewerNeverReachesLock(t *testing.T) {
	f := newGateFixture()

	_, err := f.gate.Authorize(f.boards.load(10), Caller{UserID: 3}, true)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	require.Zero(t, f.boards.calls)
}

func TestAuthorize_ChatSkipsLock(t *testing.T) {
	f := newGateFixture()
	f.clock.now = t0.Add(time.Second)

	_, err := f.gate.Authorize(f.boards.load(10), Caller{UserID: 2}, true)
	require.NoError(t, err)
	calls := f.boards.calls

	for _, caller := range []Caller{{UserID: 3}, {InviteToken: "token-view"}, {UserID: 1}} {
		_, err = f.gate.Authorize(f.boards.load(10), caller, false)
		require.NoError(t, err)
	}
	require.Equal(t, calls, f.boards.calls)
	require.Equal(t, "2", f.boards.stored[10].LockedBy)
}

func TestAuthorize_NoAccess(t *testing.T) {
	f := newGateFixture()

	_, err := f.gate.Authorize(f.boards.load(10), Caller{UserID: 4}, false)
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	_, err = f.gate.Authorize(f.boards.load(10), Caller{InviteToken: "token-other"}, true)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	require.Zero(t, f.boards.calls)
}

func TestAuthorize_ExpiredBoard(t *testing.T) {
	f := newGateFixture()
	f.clock.now = t0.Add(model.DefaultBoardLifetime)

	for _, caller := range []Caller{{UserID: 1}, {UserID: 2}, {UserID: 4}} {
		_, err := f.gate.Authorize(f.boards.load(10), caller, true)
		require.ErrorIs(t, err, errs.ErrExpired)

		_, err = f.gate.Authorize(f.boards.load(10), caller, false)
		require.ErrorIs(t, err, errs.ErrExpired)
	}
	require.Zero(t, f.boards.calls)

	_, err := f.gate.Read(f.boards.load(10), Caller{UserID: 3})
	require.NoError(t, err)
}

func TestAuthorize_MarkedDoneBoard(t *testing.T) {
	f := newGateFixture()
	f.boards.stored[10].ExpiresAt = t0.Add(time.Hour)

	f.clock.now = t0.Add(time.Hour + time.Second)
	_, err := f.gate.Authorize(f.boards.load(10), Caller{UserID: 1}, true)
	require.ErrorIs(t, err, errs.ErrExpired)
}

func TestAuthorize_MissingBoard(t *testing.T) {
	f := newGateFixture()

	_, err := f.gate.Authorize(nil, Caller{UserID: 1}, true)
	require.ErrorIs(t, err, errs.ErrNotFound)

	_, err = f.gate.Read(nil, Caller{UserID: 1})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestAuthorize_StorageErrorFailsClosed(t *testing.T) {
	f := newGateFixture()
	f.clock.now = t0.Add(time.Second)
	f.boards.err = errStorage

	_, err := f.gate.Authorize(f.boards.load(10), Caller{UserID: 2}, true)
	require.ErrorIs(t, err, errStorage)
	require.NotErrorIs(t, err, errs.ErrLocked)
}

func TestAuthorizeOwner(t *testing.T) {
	f := newGateFixture()

	require.NoError(t, f.gate.AuthorizeOwner(f.boards.load(10), Caller{UserID: 1}, false))
	require.ErrorIs(t, f.gate.AuthorizeOwner(f.boards.load(10), Caller{UserID: 2}, false), errs.ErrUnauthorized)
	require.ErrorIs(t, f.gate.AuthorizeOwner(f.boards.load(10), Caller{InviteToken: "token-edit"}, false), errs.ErrUnauthorized)
	require.ErrorIs(t, f.gate.AuthorizeOwner(nil, Caller{UserID: 1}, false), errs.ErrNotFound)

	f.clock.now = t0.Add(model.DefaultBoardLifetime)
	require.ErrorIs(t, f.gate.AuthorizeOwner(f.boards.load(10), Caller{UserID: 1}, false), errs.ErrExpired)
	require.NoError(t, f.gate.AuthorizeOwner(f.boards.load(10), Caller{UserID: 1}, true))
}

func TestLockedAndExpired(t *testing.T) {
	f := newGateFixture()
	f.clock.now = t0.Add(time.Second)

	_, err := f.gate.Authorize(f.boards.load(10), Caller{UserID: 2}, true)
	require.NoError(t, err)

	board := f.boards.load(10)
	require.True(t, f.gate.Locked(board, "1"))
	require.False(t, f.gate.Locked(board, "2"))
	require.False(t, f.gate.Expired(board))
}
