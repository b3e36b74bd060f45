package state

import (
	"github.com/sidereusnuntius/jokedrop/internal/config"
	"github.com/sidereusnuntius/jokedrop/internal/db"
)

type State struct {
	DB     db.DB
	Config config.Configuration
}
