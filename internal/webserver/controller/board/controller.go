package board

import (
	"time"

	"github.com/svera/corkboard/internal/access"
	"github.com/svera/corkboard/internal/result"
	"github.com/svera/corkboard/internal/webserver/model"
)

const searchResultsPerPage = 20

type boardsRepository interface {
	Create(board *model.Board) error
	Find(id uint) (*model.Board, error)
	UpdateTitle(id uint, title string) error
	Expire(id uint, at time.Time) error
	Delete(id uint) error
}

type invitesRepository interface {
	List(boardID uint) ([]model.Invite, error)
}

type contentRepository interface {
	Live(boardID uint) ([]model.Content, error)
	ByIDs(boardID uint, ids []uint) ([]model.Content, error)
}

type usersRepository interface {
	FindByID(id uint) (*model.User, error)
}

// IdxReaderWriter defines the operations over the content index boards need
type IdxReaderWriter interface {
	Search(boardID uint, keywords string, page, resultsPerPage int) (result.Paginated[[]uint], error)
	RemoveBoard(boardID uint) error
}

type Config struct {
	MaxLifetime time.Duration
	Lease       time.Duration
}

type Controller struct {
	boardsRepository  boardsRepository
	invitesRepository invitesRepository
	contentRepository contentRepository
	usersRepository   usersRepository
	idx               IdxReaderWriter
	gate              *access.Gate
	config            Config
}

func NewController(boards boardsRepository, invites invitesRepository, content contentRepository, users usersRepository, idx IdxReaderWriter, gate *access.Gate, cfg Config) *Controller {
	if cfg.MaxLifetime <= 0 {
		cfg.MaxLifetime = model.DefaultBoardLifetime
	}
	return &Controller{
		boardsRepository:  boards,
		invitesRepository: invites,
		contentRepository: content,
		usersRepository:   users,
		idx:               idx,
		gate:              gate,
		config:            cfg,
	}
}
