package home

import (
	"github.com/svera/corkboard/internal/access"
	"github.com/svera/corkboard/internal/result"
	"github.com/svera/corkboard/internal/webserver/model"
)

type boardsRepository interface {
	Owned(ownerID uint, page, resultsPerPage int) (result.Paginated[[]model.Board], error)
	Invited(email string) ([]model.Board, error)
}

type Config struct {
	LatestBoardsLimit int
}

type Controller struct {
	boardsRepository boardsRepository
	clock            access.Clock
	config           Config
}

func NewController(boardsRepository boardsRepository, clock access.Clock, cfg Config) *Controller {
	return &Controller{
		boardsRepository: boardsRepository,
		clock:            clock,
		config:           cfg,
	}
}
