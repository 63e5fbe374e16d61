package main

import (
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fanfare-live/fanfare/internal/config"
	"github.com/fanfare-live/fanfare/internal/database"
	"github.com/fanfare-live/fanfare/internal/handler"
	"github.com/fanfare-live/fanfare/internal/repository"
	"github.com/fanfare-live/fanfare/internal/router"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	venueRepo := repository.NewVenueRepo(db)
	artistRepo := repository.NewArtistRepo(db)
	showRepo := repository.NewShowRepo(db)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Register(e,
		&handler.HomeHandler{Venues: venueRepo, Artists: artistRepo, Shows: showRepo},
		&handler.VenueHandler{Venues: venueRepo},
		&handler.ArtistHandler{Artists: artistRepo},
		&handler.ShowHandler{Shows: showRepo},
	)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
