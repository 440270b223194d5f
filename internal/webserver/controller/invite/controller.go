package invite

import (
	"github.com/svera/corkboard/internal/access"
	"github.com/svera/corkboard/internal/i18n"
	"github.com/svera/corkboard/internal/webserver/model"
)

type Sender interface {
	Send(address, subject, body string) error
	From() string
}

type boardsRepository interface {
	Find(id uint) (*model.Board, error)
}

type invitesRepository interface {
	Create(invite *model.Invite) error
	List(boardID uint) ([]model.Invite, error)
	UpdateType(boardID uint, email, accessType string) (bool, error)
	Delete(boardID uint, email string) (bool, error)
}

type usersRepository interface {
	FindByID(id uint) (*model.User, error)
}

type Controller struct {
	boardsRepository  boardsRepository
	invitesRepository invitesRepository
	usersRepository   usersRepository
	sender            Sender
	translator        *i18n.Translator
	gate              *access.Gate
}

func NewController(boards boardsRepository, invites invitesRepository, users usersRepository, sender Sender, translator *i18n.Translator, gate *access.Gate) *Controller {
	return &Controller{
		boardsRepository:  boards,
		invitesRepository: invites,
		usersRepository:   users,
		sender:            sender,
		translator:        translator,
		gate:              gate,
	}
}
