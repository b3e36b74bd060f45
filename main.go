package main

import (
	"context"
	"encoding/gob"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	zero "github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/jokedrop/internal/config"
	db "github.com/sidereusnuntius/jokedrop/internal/db/impl"
	"github.com/sidereusnuntius/jokedrop/internal/initialization"
	"github.com/sidereusnuntius/jokedrop/internal/queue"
	service "github.com/sidereusnuntius/jokedrop/internal/service/impl"
	"github.com/sidereusnuntius/jokedrop/internal/state"
	"github.com/sidereusnuntius/jokedrop/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	zero.Logger = zero.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	config, err := config.ReadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if config.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	d, err := initialization.OpenDB(config.DbUrl)
	if err != nil {
		log.Fatal(err)
	}
	zero.Info().Msg("database connection established")

	if os.Getenv("SETUP") != "" {
		err = initialization.SetupDB(d, config.MigrationsFolder, config.DbUrl)
		if err != nil {
			log.Fatal(err)
		}
	}

	q, err := initialization.InitQueue(&config)
	if err != nil {
		zero.Fatal().Err(err).Msg("unable to connect with backlite database")
		os.Exit(1)
	}

	gob.Register(web.Session{})
	manager := scs.NewCookieManager(config.SessionKey)

	dd := db.New(config, d)
	notifier := queue.New(context.Background(), dd, q)

	state := state.State{
		DB:     dd,
		Config: config,
	}

	service := service.New(&state, notifier)

	handler := web.New(&config, service, manager)
	router := chi.NewRouter()
	handler.Mount(router)

	s := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Port),
		Handler: router,
	}

	zero.Info().Uint16("port", config.Port).Msg("started server")
	err = s.ListenAndServe()
	if err != nil {
		log.Fatal(err)
	}
}
