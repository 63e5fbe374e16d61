package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/fanfare-live/fanfare/internal/repository"
)

// ShowHandler serves the show listing and creation.
type ShowHandler struct {
	Shows *repository.ShowRepo
}

// ShowListItem is one row of the flat show listing, denormalized with the
// venue and artist names.
type ShowListItem struct {
	VenueID         uint64    `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        uint64    `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// List returns every show with its venue and artist names resolved,
// ordered by start time.
func (h *ShowHandler) List(c echo.Context) error {
	shows, err := h.Shows.ListAll(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("listing shows failed")
		return echo.ErrInternalServerError
	}
	out := make([]ShowListItem, 0, len(shows))
	for _, s := range shows {
		item := ShowListItem{
			VenueID:   s.VenueID,
			ArtistID:  s.ArtistID,
			StartTime: s.StartTime,
		}
		if s.Venue != nil {
			item.VenueName = s.Venue.Name
		}
		if s.Artist != nil {
			item.ArtistName = s.Artist.Name
			item.ArtistImageLink = s.Artist.ImageLink
		}
		out = append(out, item)
	}
	return c.JSON(http.StatusOK, echo.Map{"shows": out})
}

// CreateForm returns the defaults an empty show form is built from.
func (h *ShowHandler) CreateForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"default_start_time": time.Now().UTC().Format(startTimeLayouts[0]),
	})
}

// Create persists a new show. Both the venue and the artist reference must
// resolve to existing rows; otherwise nothing is written.
func (h *ShowHandler) Create(c echo.Context) error {
	var form ShowForm
	if err := c.Bind(&form); err != nil {
		return failed(c, http.StatusBadRequest, "Show", "listed")
	}
	show, err := form.toModel()
	if err != nil {
		log.Debug().Err(err).Msg("show form rejected")
		return failed(c, http.StatusBadRequest, "Show", "listed")
	}
	if err := h.Shows.Create(c.Request().Context(), &show); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) || errors.Is(err, repository.ErrArtistNotFound) {
			log.Debug().Err(err).
				Uint64("venue_id", show.VenueID).
				Uint64("artist_id", show.ArtistID).
				Msg("show references unknown row")
			return failed(c, http.StatusBadRequest, "Show", "listed")
		}
		log.Error().Err(err).Msg("creating show failed")
		return failed(c, http.StatusInternalServerError, "Show", "listed")
	}
	return succeeded(c, "Show", "listed")
}
