package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/fanfare-live/fanfare/internal/model"
	"github.com/fanfare-live/fanfare/internal/repository"
)

// ArtistHandler serves the artist pages: flat listing, search, detail,
// create and edit.
type ArtistHandler struct {
	Artists *repository.ArtistRepo
}

// ArtistListItem is one row of the flat artist listing.
type ArtistListItem struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// ArtistSummary is one artist row in search results.
type ArtistSummary struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// ArtistSearchResponse is the body of POST /artists/search.
type ArtistSearchResponse struct {
	Count      int             `json:"count"`
	Data       []ArtistSummary `json:"data"`
	SearchTerm string          `json:"search_term"`
}

// ArtistProfile is the artist's own field set as shown on detail and edit
// pages.
type ArtistProfile struct {
	ID                 uint64          `json:"id"`
	Name               string          `json:"name"`
	Genres             model.GenreList `json:"genres"`
	City               string          `json:"city"`
	State              string          `json:"state"`
	Phone              string          `json:"phone"`
	Website            string          `json:"website"`
	FacebookLink       string          `json:"facebook_link"`
	SeekingVenue       bool            `json:"seeking_venue"`
	SeekingDescription string          `json:"seeking_description"`
	ImageLink          string          `json:"image_link"`
}

// ArtistShowInfo describes one show on an artist page, resolved to its
// venue.
type ArtistShowInfo struct {
	VenueID        uint64    `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

// ArtistDetail is the full artist page payload including the read-time
// past/upcoming partition of its shows.
type ArtistDetail struct {
	ArtistProfile
	PastShows          []ArtistShowInfo `json:"past_shows"`
	PastShowsCount     int              `json:"past_shows_count"`
	UpcomingShows      []ArtistShowInfo `json:"upcoming_shows"`
	UpcomingShowsCount int              `json:"upcoming_shows_count"`
}

func artistProfile(a *model.Artist) ArtistProfile {
	return ArtistProfile{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             a.Genres,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Website:            a.Website,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
	}
}

// newArtistDetail assembles the detail view model, partitioning the
// artist's shows at the supplied read time.
func newArtistDetail(a *model.Artist, now time.Time) ArtistDetail {
	past, upcoming := model.PartitionShows(a.Shows, now)
	return ArtistDetail{
		ArtistProfile:      artistProfile(a),
		PastShows:          artistShowInfos(past),
		PastShowsCount:     len(past),
		UpcomingShows:      artistShowInfos(upcoming),
		UpcomingShowsCount: len(upcoming),
	}
}

func artistShowInfos(shows []model.Show) []ArtistShowInfo {
	out := make([]ArtistShowInfo, 0, len(shows))
	for _, s := range shows {
		info := ArtistShowInfo{VenueID: s.VenueID, StartTime: s.StartTime}
		if s.Venue != nil {
			info.VenueName = s.Venue.Name
			info.VenueImageLink = s.Venue.ImageLink
		}
		out = append(out, info)
	}
	return out
}

// List returns the flat artist listing ordered by id.
func (h *ArtistHandler) List(c echo.Context) error {
	artists, err := h.Artists.ListAll(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("listing artists failed")
		return echo.ErrInternalServerError
	}
	out := make([]ArtistListItem, 0, len(artists))
	for _, a := range artists {
		out = append(out, ArtistListItem{ID: a.ID, Name: a.Name})
	}
	return c.JSON(http.StatusOK, echo.Map{"artists": out})
}

// Search matches artists by case-insensitive name substring. An empty
// search_term matches every artist.
func (h *ArtistHandler) Search(c echo.Context) error {
	term := c.FormValue("search_term")
	artists, err := h.Artists.SearchByName(c.Request().Context(), term)
	if err != nil {
		log.Error().Err(err).Str("term", term).Msg("artist search failed")
		return echo.ErrInternalServerError
	}
	now := time.Now().UTC()
	data := make([]ArtistSummary, 0, len(artists))
	for _, a := range artists {
		data = append(data, ArtistSummary{
			ID:               a.ID,
			Name:             a.Name,
			NumUpcomingShows: model.CountUpcoming(a.Shows, now),
		})
	}
	return c.JSON(http.StatusOK, ArtistSearchResponse{
		Count:      len(data),
		Data:       data,
		SearchTerm: term,
	})
}

// Get returns the artist detail view. Lookup misses, including non-numeric
// ids, surface as 404.
func (h *ArtistHandler) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.ErrNotFound
	}
	a, err := h.Artists.GetWithShows(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return echo.ErrNotFound
		}
		log.Error().Err(err).Uint64("artist_id", id).Msg("fetching artist failed")
		return echo.ErrInternalServerError
	}
	return c.JSON(http.StatusOK, newArtistDetail(a, time.Now().UTC()))
}

// CreateForm returns the choice sets an empty artist form is built from.
func (h *ArtistHandler) CreateForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"genres": model.AllGenres,
		"states": model.StateCodes,
	})
}

// Create persists a new artist from the submitted field set.
func (h *ArtistHandler) Create(c echo.Context) error {
	var form ArtistForm
	if err := c.Bind(&form); err != nil {
		return failed(c, http.StatusBadRequest, "Artist "+form.Name, "listed")
	}
	artist, err := form.toModel()
	if err != nil {
		log.Debug().Err(err).Msg("artist form rejected")
		return failed(c, http.StatusBadRequest, "Artist "+form.Name, "listed")
	}
	if err := h.Artists.Create(c.Request().Context(), &artist); err != nil {
		log.Error().Err(err).Str("name", artist.Name).Msg("creating artist failed")
		return failed(c, http.StatusInternalServerError, "Artist "+form.Name, "listed")
	}
	return succeeded(c, "Artist "+artist.Name, "listed")
}

// EditForm returns the artist's current field set plus the form choice
// sets, ready to pre-fill an edit form.
func (h *ArtistHandler) EditForm(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.ErrNotFound
	}
	a, err := h.Artists.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return echo.ErrNotFound
		}
		log.Error().Err(err).Uint64("artist_id", id).Msg("fetching artist failed")
		return echo.ErrInternalServerError
	}
	return c.JSON(http.StatusOK, echo.Map{
		"artist": artistProfile(a),
		"genres": model.AllGenres,
		"states": model.StateCodes,
	})
}

// Edit overwrites every mutable field of the artist with the submitted
// field set and redirects to the updated detail view.
func (h *ArtistHandler) Edit(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.ErrNotFound
	}
	var form ArtistForm
	if err := c.Bind(&form); err != nil {
		return failed(c, http.StatusBadRequest, "Artist "+form.Name, "updated")
	}
	artist, err := form.toModel()
	if err != nil {
		log.Debug().Err(err).Uint64("artist_id", id).Msg("artist form rejected")
		return failed(c, http.StatusBadRequest, "Artist "+form.Name, "updated")
	}
	artist.ID = id
	if err := h.Artists.Update(c.Request().Context(), &artist); err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return echo.ErrNotFound
		}
		log.Error().Err(err).Uint64("artist_id", id).Msg("updating artist failed")
		return failed(c, http.StatusInternalServerError, "Artist "+form.Name, "updated")
	}
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/artists/%d", id))
}
