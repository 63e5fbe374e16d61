package handler_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fanfare-live/fanfare/internal/handler"
)

func fillmoreForm() url.Values {
	return url.Values{
		"name":           {"The Fillmore"},
		"city":           {"San Francisco"},
		"state":          {"CA"},
		"address":        {"1805 Geary"},
		"seeking_talent": {"y"},
	}
}

func TestCreateVenueAppearsInCityListing(t *testing.T) {
	e, _ := newTestServer(t)

	rec := postForm(e, "/venues/create", fillmoreForm())
	require.Equal(t, http.StatusOK, rec.Code)

	var n struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decode(t, rec, &n)
	assert.True(t, n.Success)
	assert.Equal(t, "Venue The Fillmore was successfully listed!", n.Message)

	rec = get(e, "/venues")
	require.Equal(t, http.StatusOK, rec.Code)

	var listing struct {
		Areas []handler.CityGroup `json:"areas"`
	}
	decode(t, rec, &listing)
	require.Len(t, listing.Areas, 1)
	group := listing.Areas[0]
	assert.Equal(t, "San Francisco", group.City)
	assert.Equal(t, "CA", group.State)
	require.Len(t, group.Venues, 1)
	assert.Equal(t, "The Fillmore", group.Venues[0].Name)
	assert.Equal(t, 0, group.Venues[0].NumUpcomingShows)
}

func TestCityListingOneGroupPerCityStatePair(t *testing.T) {
	e, _ := newTestServer(t)

	for _, name := range []string{"Alpha Hall", "Beta Bar"} {
		form := url.Values{"name": {name}, "city": {"Austin"}, "state": {"TX"}}
		require.Equal(t, http.StatusOK, postForm(e, "/venues/create", form).Code)
	}
	form := url.Values{"name": {"Harbor Stage"}, "city": {"Boston"}, "state": {"MA"}}
	require.Equal(t, http.StatusOK, postForm(e, "/venues/create", form).Code)

	var listing struct {
		Areas []handler.CityGroup `json:"areas"`
	}
	decode(t, get(e, "/venues"), &listing)

	require.Len(t, listing.Areas, 2)
	assert.Equal(t, "Austin", listing.Areas[0].City)
	assert.Len(t, listing.Areas[0].Venues, 2)
	assert.Equal(t, "Boston", listing.Areas[1].City)
	assert.Len(t, listing.Areas[1].Venues, 1)
}

func TestCreateVenueRejectsMissingName(t *testing.T) {
	e, _ := newTestServer(t)

	rec := postForm(e, "/venues/create", url.Values{"city": {"Austin"}, "state": {"TX"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var n struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decode(t, rec, &n)
	assert.False(t, n.Success)
	assert.Contains(t, n.Message, "could not be listed")
}

func TestVenueSearchCaseInsensitiveSubstring(t *testing.T) {
	e, _ := newTestServer(t)

	form := url.Values{"name": {"Jazz Club"}, "city": {"New York"}, "state": {"NY"}}
	require.Equal(t, http.StatusOK, postForm(e, "/venues/create", form).Code)
	form = url.Values{"name": {"Punk Basement"}, "city": {"New York"}, "state": {"NY"}}
	require.Equal(t, http.StatusOK, postForm(e, "/venues/create", form).Code)

	rec := postForm(e, "/venues/search", url.Values{"search_term": {"JAZZ"}})
	require.Equal(t, http.StatusOK, rec.Code)

	var res handler.VenueSearchResponse
	decode(t, rec, &res)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, "Jazz Club", res.Data[0].Name)

	// empty term matches everything
	rec = postForm(e, "/venues/search", url.Values{"search_term": {""}})
	decode(t, rec, &res)
	assert.Equal(t, 2, res.Count)
}

func TestVenueDetailNotFound(t *testing.T) {
	e, _ := newTestServer(t)

	assert.Equal(t, http.StatusNotFound, get(e, "/venues/999").Code)
	assert.Equal(t, http.StatusNotFound, get(e, "/venues/abc").Code)
}

func TestEditVenueInvalidFacebookLinkLeavesRowUnmodified(t *testing.T) {
	e, _ := newTestServer(t)

	require.Equal(t, http.StatusOK, postForm(e, "/venues/create", fillmoreForm()).Code)

	edit := fillmoreForm()
	edit.Set("name", "Renamed Hall")
	edit.Set("facebook_link", "not a url")
	rec := postForm(e, "/venues/1/edit", edit)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var detail handler.VenueDetail
	decode(t, get(e, "/venues/1"), &detail)
	assert.Equal(t, "The Fillmore", detail.Name)
	assert.Empty(t, detail.FacebookLink)
}

func TestEditVenueRedirectsToDetailView(t *testing.T) {
	e, _ := newTestServer(t)

	require.Equal(t, http.StatusOK, postForm(e, "/venues/create", fillmoreForm()).Code)

	edit := fillmoreForm()
	edit.Set("name", "The Fillmore West")
	rec := postForm(e, "/venues/1/edit", edit)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/venues/1", rec.Header().Get("Location"))

	var detail handler.VenueDetail
	decode(t, get(e, "/venues/1"), &detail)
	assert.Equal(t, "The Fillmore West", detail.Name)
}

func TestEditVenueNotFound(t *testing.T) {
	e, _ := newTestServer(t)

	rec := postForm(e, "/venues/77/edit", fillmoreForm())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteVenueAlwaysReportsSuccess(t *testing.T) {
	e, _ := newTestServer(t)

	rec := del(e, "/venues/404404")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
	}
	decode(t, rec, &body)
	assert.True(t, body.Success)
}

func TestDeleteVenueRemovesItsShows(t *testing.T) {
	e, _ := newTestServer(t)

	require.Equal(t, http.StatusOK, postForm(e, "/venues/create", fillmoreForm()).Code)
	artist := url.Values{"name": {"Guns N Petals"}, "city": {"San Francisco"}, "state": {"CA"}}
	require.Equal(t, http.StatusOK, postForm(e, "/artists/create", artist).Code)
	show := url.Values{
		"venue_id":   {"1"},
		"artist_id":  {"1"},
		"start_time": {"2027-05-21 21:30:00"},
	}
	require.Equal(t, http.StatusOK, postForm(e, "/shows/create", show).Code)

	require.Equal(t, http.StatusOK, del(e, "/venues/1").Code)

	var listing struct {
		Shows []handler.ShowListItem `json:"shows"`
	}
	decode(t, get(e, "/shows"), &listing)
	assert.Empty(t, listing.Shows)
}

func TestVenueCreateFormReturnsChoiceSets(t *testing.T) {
	e, _ := newTestServer(t)

	rec := get(e, "/venues/create")
	require.Equal(t, http.StatusOK, rec.Code)

	var form struct {
		Genres []string `json:"genres"`
		States []string `json:"states"`
	}
	decode(t, rec, &form)
	assert.Len(t, form.Genres, 19)
	assert.Len(t, form.States, 51)
	assert.Contains(t, form.Genres, "Musical Theatre")
}
