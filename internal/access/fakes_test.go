package access

import (
	"errors"
	"strings"
	"time"

	"github.com/svera/corkboard/internal/webserver/model"
)

var errStorage = errors.New("storage unavailable")

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type fakeUsers struct {
	users map[uint]*model.User
	err   error
}

func (f *fakeUsers) FindByID(id uint) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[id], nil
}

type fakeInvites struct {
	invites []model.Invite
	err     error
}

func (f *fakeInvites) FindByBoardAndEmail(boardID uint, email string) (*model.Invite, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.invites {
		if f.invites[i].BoardID == boardID && strings.EqualFold(f.invites[i].Email, email) {
			return &f.invites[i], nil
		}
	}
	return nil, nil
}

func (f *fakeInvites) FindByToken(boardID uint, token string) (*model.Invite, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.invites {
		if f.invites[i].BoardID == boardID && f.invites[i].ID == token {
			return &f.invites[i], nil
		}
	}
	return nil, nil
}

// fakeBoards keeps the stored lease of every board, applying acquisitions as
// a compare-and-set over the lock version like the gorm repository does.
type fakeBoards struct {
	stored map[uint]*model.Board
	calls  int
	err    error
}

func newFakeBoards(boards ...*model.Board) *fakeBoards {
	f := &fakeBoards{stored: map[uint]*model.Board{}}
	for _, b := range boards {
		copied := *b
		f.stored[b.ID] = &copied
	}
	return f
}

func (f *fakeBoards) AcquireLock(id, version uint, holder string, until time.Time) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	b, ok := f.stored[id]
	if !ok || b.LockVersion != version {
		return false, nil
	}
	b.LockedUntil = until
	b.LockedBy = holder
	b.LockVersion++
	return true, nil
}

// load returns a fresh copy of the stored board, as a request would read it
func (f *fakeBoards) load(id uint) *model.Board {
	copied := *f.stored[id]
	return &copied
}
