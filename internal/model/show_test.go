package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShowUpcomingBoundary(t *testing.T) {
	now := time.Date(2026, 8, 31, 20, 0, 0, 0, time.UTC)

	// A show starting exactly at the read time is past, not upcoming.
	tie := Show{StartTime: now}
	assert.False(t, tie.Upcoming(now))

	assert.True(t, Show{StartTime: now.Add(time.Second)}.Upcoming(now))
	assert.False(t, Show{StartTime: now.Add(-time.Second)}.Upcoming(now))
}

func TestPartitionShows(t *testing.T) {
	now := time.Date(2026, 8, 31, 20, 0, 0, 0, time.UTC)
	shows := []Show{
		{ID: 1, StartTime: now.Add(-48 * time.Hour)},
		{ID: 2, StartTime: now}, // exact tie classifies as past
		{ID: 3, StartTime: now.Add(time.Hour)},
		{ID: 4, StartTime: now.Add(24 * time.Hour)},
	}

	past, upcoming := PartitionShows(shows, now)

	assert.Len(t, past, 2)
	assert.Len(t, upcoming, 2)
	assert.Equal(t, uint64(1), past[0].ID)
	assert.Equal(t, uint64(2), past[1].ID)
	assert.Equal(t, uint64(3), upcoming[0].ID)
	assert.Equal(t, uint64(4), upcoming[1].ID)
}

func TestPartitionShowsEmpty(t *testing.T) {
	past, upcoming := PartitionShows(nil, time.Now())
	assert.Empty(t, past)
	assert.Empty(t, upcoming)
}

func TestCountUpcoming(t *testing.T) {
	now := time.Date(2026, 8, 31, 20, 0, 0, 0, time.UTC)
	shows := []Show{
		{StartTime: now.Add(-time.Hour)},
		{StartTime: now},
		{StartTime: now.Add(time.Minute)},
	}
	assert.Equal(t, 1, CountUpcoming(shows, now))
	assert.Equal(t, 0, CountUpcoming(nil, now))
}
