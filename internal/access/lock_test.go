package access

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/svera/corkboard/internal/webserver/model"
)

func newLockFixture() (*Locker, *fakeBoards, *fakeClock) {
	board := model.NewBoard("Retro", 1, t0, model.DefaultBoardLifetime)
	board.ID = 10
	boards := newFakeBoards(board)
	clock := &fakeClock{now: t0}
	return NewLocker(boards, clock, DefaultLease), boards, clock
}

func TestTryAcquire_LeaseIsExclusive(t *testing.T) {
	locker, boards, clock := newLockFixture()

	clock.Advance(time.Second)
	granted, err := locker.TryAcquire(boards.load(10), "alice@example.com")
	require.NoError(t, err)
	require.True(t, granted)
	require.Equal(t, t0.Add(6*time.Second), boards.stored[10].LockedUntil)
	require.Equal(t, "alice@example.com", boards.stored[10].LockedBy)

	clock.Advance(time.Second)
	granted, err = locker.TryAcquire(boards.load(10), "bob@example.com")
	require.NoError(t, err)
	require.False(t, granted)
	require.Equal(t, "alice@example.com", boards.stored[10].LockedBy)

	// The lease is still valid at its exact expiry instant
	clock.now = t0.Add(6 * time.Second)
	granted, err = locker.TryAcquire(boards.load(10), "bob@example.com")
	require.NoError(t, err)
	require.False(t, granted)

	clock.Advance(time.Nanosecond)
	granted, err = locker.TryAcquire(boards.load(10), "bob@example.com")
	require.NoError(t, err)
	require.True(t, granted)
	require.Equal(t, "bob@example.com", boards.stored[10].LockedBy)
}

func TestTryAcquire_HolderRenews(t *testing.T) {
	locker, boards, clock := newLockFixture()

	granted, err := locker.TryAcquire(boards.load(10), "2")
	require.NoError(t, err)
	require.True(t, granted)

	for i := 0; i < 3; i++ {
		clock.Advance(3 * time.Second)
		granted, err = locker.TryAcquire(boards.load(10), "2")
		require.NoError(t, err)
		require.True(t, granted)
		require.Equal(t, clock.now.Add(DefaultLease), boards.stored[10].LockedUntil)
	}
}

func TestTryAcquire_OwnerHoldsNewBoard(t *testing.T) {
	locker, boards, _ := newLockFixture()

	// New boards are attributed to the owner with a lapsing lease
	granted, err := locker.TryAcquire(boards.load(10), "1")
	require.NoError(t, err)
	require.True(t, granted)
}

func TestTryAcquire_LosesRaceOnStaleRead(t *testing.T) {
	locker, boards, clock := newLockFixture()
	clock.Advance(time.Second)

	aliceRead := boards.load(10)
	bobRead := boards.load(10)

	granted, err := locker.TryAcquire(aliceRead, "alice@example.com")
	require.NoError(t, err)
	require.True(t, granted)

	granted, err = locker.TryAcquire(bobRead, "bob@example.com")
	require.NoError(t, err)
	require.False(t, granted)
	require.Equal(t, "alice@example.com", boards.stored[10].LockedBy)
}

func TestTryAcquire_StorageErrorFailsClosed(t *testing.T) {
	locker, boards, clock := newLockFixture()
	clock.Advance(time.Second)
	boards.err = errStorage

	board := boards.load(10)
	granted, err := locker.TryAcquire(board, "alice@example.com")
	require.ErrorIs(t, err, errStorage)
	require.False(t, granted)
	require.Equal(t, "1", board.LockedBy)
}

func TestNewLocker_DefaultsLease(t *testing.T) {
	locker := NewLocker(newFakeBoards(), &fakeClock{}, 0)
	require.Equal(t, 5*time.Second, locker.Lease())
}
