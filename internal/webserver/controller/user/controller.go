package user

import (
	"time"

	"github.com/svera/corkboard/internal/result"
	"github.com/svera/corkboard/internal/webserver/model"
)

type usersRepository interface {
	FindByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Create(user *model.User) error
	Update(user *model.User) error
	UpdateProfile(user *model.User, previousEmail string) error
}

type boardsRepository interface {
	Owned(ownerID uint, page, resultsPerPage int) (result.Paginated[[]model.Board], error)
	Invited(email string) ([]model.Board, error)
}

type Config struct {
	MinPasswordLength int
	Secret            []byte
	SessionTimeout    time.Duration
}

type Controller struct {
	usersRepository  usersRepository
	boardsRepository boardsRepository
	config           Config
}

// NewController returns a new instance of the users controller
func NewController(usersRepository usersRepository, boardsRepository boardsRepository, usersCfg Config) *Controller {
	return &Controller{
		usersRepository:  usersRepository,
		boardsRepository: boardsRepository,
		config:           usersCfg,
	}
}
