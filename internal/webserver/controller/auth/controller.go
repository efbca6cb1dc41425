package auth

import (
	"time"

	"github.com/svera/sitesearch/internal/cms"
)

type authRepository interface {
	FindByUsername(username string) (cms.User, error)
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
