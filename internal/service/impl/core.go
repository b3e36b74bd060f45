package core

import (
	"github.com/sidereusnuntius/jokedrop/internal/config"
	"github.com/sidereusnuntius/jokedrop/internal/db"
	"github.com/sidereusnuntius/jokedrop/internal/queue"
	"github.com/sidereusnuntius/jokedrop/internal/service"
	"github.com/sidereusnuntius/jokedrop/internal/state"
)

const BcryptCost = 10

type AppService struct {
	Config   config.Configuration
	DB       db.DB
	notifier queue.Notifier
}

func New(state *state.State, notifier queue.Notifier) service.Service {
	return &AppService{
		Config:   state.Config,
		DB:       state.DB,
		notifier: notifier,
	}
}
