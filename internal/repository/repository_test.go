package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/fanfare-live/fanfare/internal/database"
	"github.com/fanfare-live/fanfare/internal/model"
	"github.com/fanfare-live/fanfare/internal/repository"
)

// newTestDB opens a fresh in-memory database with the schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedVenue(t *testing.T, repo *repository.VenueRepo, name, city, state string) *model.Venue {
	t.Helper()
	v := &model.Venue{Name: name, City: city, State: state}
	require.NoError(t, repo.Create(context.Background(), v))
	require.NotZero(t, v.ID)
	return v
}

func seedArtist(t *testing.T, repo *repository.ArtistRepo, name string) *model.Artist {
	t.Helper()
	a := &model.Artist{Name: name}
	require.NoError(t, repo.Create(context.Background(), a))
	require.NotZero(t, a.ID)
	return a
}

func seedShow(t *testing.T, repo *repository.ShowRepo, venueID, artistID uint64, start time.Time) *model.Show {
	t.Helper()
	s := &model.Show{VenueID: venueID, ArtistID: artistID, StartTime: start}
	require.NoError(t, repo.Create(context.Background(), s))
	require.NotZero(t, s.ID)
	return s
}
