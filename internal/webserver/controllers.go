package webserver

import (
	"github.com/svera/corkboard/internal/access"
	"github.com/svera/corkboard/internal/i18n"
	"github.com/svera/corkboard/internal/index"
	"github.com/svera/corkboard/internal/webserver/controller/auth"
	"github.com/svera/corkboard/internal/webserver/controller/board"
	"github.com/svera/corkboard/internal/webserver/controller/content"
	"github.com/svera/corkboard/internal/webserver/controller/home"
	"github.com/svera/corkboard/internal/webserver/controller/invite"
	"github.com/svera/corkboard/internal/webserver/controller/user"
	"github.com/svera/corkboard/internal/webserver/model"
	"gorm.io/gorm"
)

const defaultLatestBoardsLimit = 6

type Controllers struct {
	Auth     *auth.Controller
	Users    *user.Controller
	Home     *home.Controller
	Boards   *board.Controller
	Invites  *invite.Controller
	Contents *content.Controller
}

func SetupControllers(cfg Config, db *gorm.DB, idx *index.BleveIndexer, sender Sender, translator *i18n.Translator, clock access.Clock) Controllers {
	usersRepository := &model.UserRepository{DB: db}
	boardsRepository := &model.BoardRepository{DB: db}
	invitesRepository := &model.InviteRepository{DB: db}
	contentRepository := &model.ContentRepository{DB: db}

	if clock == nil {
		clock = access.SystemClock{}
	}
	resolver := access.NewResolver(usersRepository, invitesRepository)
	locker := access.NewLocker(boardsRepository, clock, cfg.Lease)
	gate := access.NewGate(resolver, locker, clock)

	authCfg := auth.Config{
		Secret:         cfg.JwtSecret,
		SessionTimeout: cfg.SessionTimeout,
	}

	usersCfg := user.Config{
		MinPasswordLength: cfg.MinPasswordLength,
		Secret:            cfg.JwtSecret,
		SessionTimeout:    cfg.SessionTimeout,
	}

	boardsCfg := board.Config{
		MaxLifetime: cfg.BoardLifetime,
		Lease:       locker.Lease(),
	}

	homeCfg := home.Config{
		LatestBoardsLimit: cfg.LatestBoardsLimit,
	}
	if homeCfg.LatestBoardsLimit <= 0 {
		homeCfg.LatestBoardsLimit = defaultLatestBoardsLimit
	}

	return Controllers{
		Auth:     auth.NewController(usersRepository, authCfg),
		Users:    user.NewController(usersRepository, boardsRepository, usersCfg),
		Home:     home.NewController(boardsRepository, clock, homeCfg),
		Boards:   board.NewController(boardsRepository, invitesRepository, contentRepository, usersRepository, idx, gate, boardsCfg),
		Invites:  invite.NewController(boardsRepository, invitesRepository, usersRepository, sender, translator, gate),
		Contents: content.NewController(boardsRepository, contentRepository, usersRepository, idx, gate),
	}
}
