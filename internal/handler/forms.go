package handler

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/fanfare-live/fanfare/internal/model"
)

// The forms in this file mirror the field sets submitted by the venue,
// artist and show pages. They bind from both urlencoded form bodies
// (checkboxes arrive as "y", genres as repeated keys) and JSON.

// startTimeLayouts are accepted encodings for a show's start time, tried in
// order.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// VenueForm carries the full submitted field set for venue create and edit.
type VenueForm struct {
	Name               string   `form:"name" json:"name"`
	City               string   `form:"city" json:"city"`
	State              string   `form:"state" json:"state"`
	Address            string   `form:"address" json:"address"`
	Phone              string   `form:"phone" json:"phone"`
	ImageLink          string   `form:"image_link" json:"image_link"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link"`
	WebsiteLink        string   `form:"website_link" json:"website_link"`
	SeekingTalent      string   `form:"seeking_talent" json:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
	Genres             []string `form:"genres" json:"genres"`
}

// toModel validates the form and builds the venue row it describes. Edits
// are full-field overwrites, so fields absent from the form come back empty.
func (f VenueForm) toModel() (model.Venue, error) {
	if strings.TrimSpace(f.Name) == "" {
		return model.Venue{}, errors.New("name is required")
	}
	if f.State != "" && !model.ValidState(f.State) {
		return model.Venue{}, fmt.Errorf("unknown state %q", f.State)
	}
	genres, err := model.ParseGenres(f.Genres)
	if err != nil {
		return model.Venue{}, err
	}
	if err := validLinks(f.ImageLink, f.FacebookLink, f.WebsiteLink); err != nil {
		return model.Venue{}, err
	}
	return model.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingTalent:      truthy(f.SeekingTalent),
		SeekingDescription: f.SeekingDescription,
		Genres:             genres,
	}, nil
}

// ArtistForm carries the full submitted field set for artist create and
// edit. The form key for the artist's website is website_link, matching the
// venue form.
type ArtistForm struct {
	Name               string   `form:"name" json:"name"`
	City               string   `form:"city" json:"city"`
	State              string   `form:"state" json:"state"`
	Phone              string   `form:"phone" json:"phone"`
	ImageLink          string   `form:"image_link" json:"image_link"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link"`
	WebsiteLink        string   `form:"website_link" json:"website_link"`
	SeekingVenue       string   `form:"seeking_venue" json:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
	Genres             []string `form:"genres" json:"genres"`
}

func (f ArtistForm) toModel() (model.Artist, error) {
	if strings.TrimSpace(f.Name) == "" {
		return model.Artist{}, errors.New("name is required")
	}
	if f.State != "" && !model.ValidState(f.State) {
		return model.Artist{}, fmt.Errorf("unknown state %q", f.State)
	}
	genres, err := model.ParseGenres(f.Genres)
	if err != nil {
		return model.Artist{}, err
	}
	if err := validLinks(f.ImageLink, f.FacebookLink, f.WebsiteLink); err != nil {
		return model.Artist{}, err
	}
	return model.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.WebsiteLink,
		SeekingVenue:       truthy(f.SeekingVenue),
		SeekingDescription: f.SeekingDescription,
		Genres:             genres,
	}, nil
}

// ShowForm carries the submitted field set for show creation.
type ShowForm struct {
	ArtistID  string `form:"artist_id" json:"artist_id"`
	VenueID   string `form:"venue_id" json:"venue_id"`
	StartTime string `form:"start_time" json:"start_time"`
}

func (f ShowForm) toModel() (model.Show, error) {
	venueID, err := parseID(f.VenueID)
	if err != nil {
		return model.Show{}, fmt.Errorf("invalid venue_id %q", f.VenueID)
	}
	artistID, err := parseID(f.ArtistID)
	if err != nil {
		return model.Show{}, fmt.Errorf("invalid artist_id %q", f.ArtistID)
	}
	start, err := parseStartTime(f.StartTime)
	if err != nil {
		return model.Show{}, err
	}
	return model.Show{
		VenueID:   venueID,
		ArtistID:  artistID,
		StartTime: start,
	}, nil
}

// parseStartTime accepts the form's "2006-01-02 15:04:05" layout or
// RFC 3339. The result is normalized to UTC so the past/upcoming comparison
// works on one clock.
func parseStartTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("start_time is required")
	}
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid start_time %q", raw)
}

// validLinks rejects any non-empty link that is not an absolute URL.
func validLinks(links ...string) error {
	for _, raw := range links {
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("malformed link %q", raw)
		}
	}
	return nil
}

// truthy interprets checkbox-style form values; the forms submit "y" for a
// checked box, JSON clients may send "true".
func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "y", "yes", "true", "1", "on":
		return true
	}
	return false
}
