package auth

import (
	"time"

	"github.com/svera/corkboard/internal/webserver/model"
)

type authRepository interface {
	FindByEmail(email string) (*model.User, error)
}

type Controller struct {
	repository authRepository
	config     Config
}

type Config struct {
	Secret         []byte
	SessionTimeout time.Duration
}

func NewController(repository authRepository, cfg Config) *Controller {
	return &Controller{
		repository: repository,
		config:     cfg,
	}
}
