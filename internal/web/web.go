package web

import (
	"github.com/alexedwards/scs"
	"github.com/sidereusnuntius/jokedrop/internal/config"
	"github.com/sidereusnuntius/jokedrop/internal/service"
)

const (
	LoginRoute    = "/login"
	RegisterRoute = "/register"
	ModerateRoute = "/moderate"
)

type Handler struct {
	Config         *config.Configuration
	service        service.Service
	SessionManager *scs.Manager
}

func New(config *config.Configuration, service service.Service, manager *scs.Manager) Handler {
	return Handler{
		Config:         config,
		service:        service,
		SessionManager: manager,
	}
}
