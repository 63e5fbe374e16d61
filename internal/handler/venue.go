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

// VenueHandler serves the venue pages: grouped listing, search, detail,
// create, edit and delete.
type VenueHandler struct {
	Venues *repository.VenueRepo
}

// VenueSummary is one venue row in listings and search results.
type VenueSummary struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// CityGroup collects the venues of one (city, state) pair.
type CityGroup struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// VenueSearchResponse is the body of POST /venues/search.
type VenueSearchResponse struct {
	Count      int            `json:"count"`
	Data       []VenueSummary `json:"data"`
	SearchTerm string         `json:"search_term"`
}

// VenueProfile is the venue's own field set as shown on detail and edit
// pages. The website link is exposed as "website" there.
type VenueProfile struct {
	ID                 uint64          `json:"id"`
	Name               string          `json:"name"`
	Genres             model.GenreList `json:"genres"`
	Address            string          `json:"address"`
	City               string          `json:"city"`
	State              string          `json:"state"`
	Phone              string          `json:"phone"`
	Website            string          `json:"website"`
	FacebookLink       string          `json:"facebook_link"`
	SeekingTalent      bool            `json:"seeking_talent"`
	SeekingDescription string          `json:"seeking_description"`
	ImageLink          string          `json:"image_link"`
}

// VenueShowInfo describes one show on a venue page, resolved to its artist.
type VenueShowInfo struct {
	ArtistID        uint64    `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// VenueDetail is the full venue page payload including the read-time
// past/upcoming partition of its shows.
type VenueDetail struct {
	VenueProfile
	PastShows          []VenueShowInfo `json:"past_shows"`
	PastShowsCount     int             `json:"past_shows_count"`
	UpcomingShows      []VenueShowInfo `json:"upcoming_shows"`
	UpcomingShowsCount int             `json:"upcoming_shows_count"`
}

// venueSummaries maps venues (with shows loaded) to listing rows.
func venueSummaries(venues []model.Venue, now time.Time) []VenueSummary {
	out := make([]VenueSummary, 0, len(venues))
	for _, v := range venues {
		out = append(out, VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: model.CountUpcoming(v.Shows, now),
		})
	}
	return out
}

// groupVenuesByCity folds a (city, state, name)-ordered venue slice into
// city groups. Every venue lands in exactly one group; a group is only
// emitted when it has at least one venue.
func groupVenuesByCity(venues []model.Venue, now time.Time) []CityGroup {
	groups := make([]CityGroup, 0)
	for _, v := range venues {
		summary := VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: model.CountUpcoming(v.Shows, now),
		}
		n := len(groups)
		if n > 0 && groups[n-1].City == v.City && groups[n-1].State == v.State {
			groups[n-1].Venues = append(groups[n-1].Venues, summary)
			continue
		}
		groups = append(groups, CityGroup{
			City:   v.City,
			State:  v.State,
			Venues: []VenueSummary{summary},
		})
	}
	return groups
}

func venueProfile(v *model.Venue) VenueProfile {
	return VenueProfile{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             v.Genres,
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		Website:            v.WebsiteLink,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
	}
}

// newVenueDetail assembles the detail view model, partitioning the venue's
// shows at the supplied read time.
func newVenueDetail(v *model.Venue, now time.Time) VenueDetail {
	past, upcoming := model.PartitionShows(v.Shows, now)
	return VenueDetail{
		VenueProfile:       venueProfile(v),
		PastShows:          venueShowInfos(past),
		PastShowsCount:     len(past),
		UpcomingShows:      venueShowInfos(upcoming),
		UpcomingShowsCount: len(upcoming),
	}
}

func venueShowInfos(shows []model.Show) []VenueShowInfo {
	out := make([]VenueShowInfo, 0, len(shows))
	for _, s := range shows {
		info := VenueShowInfo{ArtistID: s.ArtistID, StartTime: s.StartTime}
		if s.Artist != nil {
			info.ArtistName = s.Artist.Name
			info.ArtistImageLink = s.Artist.ImageLink
		}
		out = append(out, info)
	}
	return out
}

// List returns all venues grouped by (city, state), ordered by city then
// state, venues within a group ordered by name.
func (h *VenueHandler) List(c echo.Context) error {
	venues, err := h.Venues.ListAll(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("listing venues failed")
		return echo.ErrInternalServerError
	}
	return c.JSON(http.StatusOK, echo.Map{
		"areas": groupVenuesByCity(venues, time.Now().UTC()),
	})
}

// Search matches venues by case-insensitive name substring. An empty
// search_term matches every venue.
func (h *VenueHandler) Search(c echo.Context) error {
	term := c.FormValue("search_term")
	venues, err := h.Venues.SearchByName(c.Request().Context(), term)
	if err != nil {
		log.Error().Err(err).Str("term", term).Msg("venue search failed")
		return echo.ErrInternalServerError
	}
	data := venueSummaries(venues, time.Now().UTC())
	return c.JSON(http.StatusOK, VenueSearchResponse{
		Count:      len(data),
		Data:       data,
		SearchTerm: term,
	})
}

// Get returns the venue detail view. Non-numeric and unknown ids both
// surface as 404.
func (h *VenueHandler) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.ErrNotFound
	}
	v, err := h.Venues.GetWithShows(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return echo.ErrNotFound
		}
		log.Error().Err(err).Uint64("venue_id", id).Msg("fetching venue failed")
		return echo.ErrInternalServerError
	}
	return c.JSON(http.StatusOK, newVenueDetail(v, time.Now().UTC()))
}

// CreateForm returns the choice sets an empty venue form is built from.
func (h *VenueHandler) CreateForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"genres": model.AllGenres,
		"states": model.StateCodes,
	})
}

// Create persists a new venue from the submitted field set.
func (h *VenueHandler) Create(c echo.Context) error {
	var form VenueForm
	if err := c.Bind(&form); err != nil {
		return failed(c, http.StatusBadRequest, "Venue "+form.Name, "listed")
	}
	venue, err := form.toModel()
	if err != nil {
		log.Debug().Err(err).Msg("venue form rejected")
		return failed(c, http.StatusBadRequest, "Venue "+form.Name, "listed")
	}
	if err := h.Venues.Create(c.Request().Context(), &venue); err != nil {
		log.Error().Err(err).Str("name", venue.Name).Msg("creating venue failed")
		return failed(c, http.StatusInternalServerError, "Venue "+form.Name, "listed")
	}
	return succeeded(c, "Venue "+venue.Name, "listed")
}

// EditForm returns the venue's current field set plus the form choice sets,
// ready to pre-fill an edit form.
func (h *VenueHandler) EditForm(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.ErrNotFound
	}
	v, err := h.Venues.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return echo.ErrNotFound
		}
		log.Error().Err(err).Uint64("venue_id", id).Msg("fetching venue failed")
		return echo.ErrInternalServerError
	}
	return c.JSON(http.StatusOK, echo.Map{
		"venue":  venueProfile(v),
		"genres": model.AllGenres,
		"states": model.StateCodes,
	})
}

// Edit overwrites every mutable field of the venue with the submitted field
// set and redirects to the updated detail view. Fields absent from the form
// are cleared, not preserved.
func (h *VenueHandler) Edit(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.ErrNotFound
	}
	var form VenueForm
	if err := c.Bind(&form); err != nil {
		return failed(c, http.StatusBadRequest, "Venue "+form.Name, "updated")
	}
	venue, err := form.toModel()
	if err != nil {
		log.Debug().Err(err).Uint64("venue_id", id).Msg("venue form rejected")
		return failed(c, http.StatusBadRequest, "Venue "+form.Name, "updated")
	}
	venue.ID = id
	if err := h.Venues.Update(c.Request().Context(), &venue); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return echo.ErrNotFound
		}
		log.Error().Err(err).Uint64("venue_id", id).Msg("updating venue failed")
		return failed(c, http.StatusInternalServerError, "Venue "+form.Name, "updated")
	}
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/venues/%d", id))
}

// Delete removes the venue and its dependent shows. The response reports
// success even when the id resolved to nothing: deletion is treated as
// idempotent, and the miss is only logged.
func (h *VenueHandler) Delete(c echo.Context) error {
	if id, err := parseID(c.Param("id")); err == nil {
		deleted, derr := h.Venues.Delete(c.Request().Context(), id)
		if derr != nil {
			log.Error().Err(derr).Uint64("venue_id", id).Msg("deleting venue failed")
		} else if !deleted {
			log.Debug().Uint64("venue_id", id).Msg("delete of unknown venue")
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
