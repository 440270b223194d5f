package content

import (
	"github.com/svera/corkboard/internal/access"
	"github.com/svera/corkboard/internal/webserver/model"
)

type boardsRepository interface {
	Find(id uint) (*model.Board, error)
}

type contentRepository interface {
	Create(content *model.Content) error
	Find(boardID, id uint) (*model.Content, error)
	ModifiedSince(boardID uint, since int64) ([]model.Content, error)
	Update(content *model.Content) error
	SoftDelete(content *model.Content) error
}

type usersRepository interface {
	FindByID(id uint) (*model.User, error)
}

// IdxWriter defines the index operations needed to keep content searchable
type IdxWriter interface {
	AddContent(content model.Content) error
	RemoveContent(id uint) error
}

type Controller struct {
	boardsRepository  boardsRepository
	contentRepository contentRepository
	usersRepository   usersRepository
	idx               IdxWriter
	gate              *access.Gate
}

func NewController(boards boardsRepository, content contentRepository, users usersRepository, idx IdxWriter, gate *access.Gate) *Controller {
	return &Controller{
		boardsRepository:  boards,
		contentRepository: content,
		usersRepository:   users,
		idx:               idx,
		gate:              gate,
	}
}
