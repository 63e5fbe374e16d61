package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/fanfare-live/fanfare/internal/repository"
)

// HomeHandler serves the landing payload.
type HomeHandler struct {
	Venues  *repository.VenueRepo
	Artists *repository.ArtistRepo
	Shows   *repository.ShowRepo
}

// Index returns the directory's entity counts for the landing page.
func (h *HomeHandler) Index(c echo.Context) error {
	ctx := c.Request().Context()
	venues, err := h.Venues.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("counting venues failed")
		return echo.ErrInternalServerError
	}
	artists, err := h.Artists.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("counting artists failed")
		return echo.ErrInternalServerError
	}
	shows, err := h.Shows.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("counting shows failed")
		return echo.ErrInternalServerError
	}
	return c.JSON(http.StatusOK, echo.Map{
		"app":     "fanfare",
		"venues":  venues,
		"artists": artists,
		"shows":   shows,
	})
}
