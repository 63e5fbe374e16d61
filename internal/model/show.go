package model

import "time"

// Show is a scheduled event linking exactly one Venue and one Artist at a
// start time. Both references are required and immutable after creation.
//
// Whether a show is "upcoming" or "past" is never stored; it is computed
// from StartTime at read time, so the classification can change between
// reads without any write.
type Show struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	VenueID   uint64    `gorm:"not null;index" json:"venue_id"`
	ArtistID  uint64    `gorm:"not null;index" json:"artist_id"`
	StartTime time.Time `gorm:"not null" json:"start_time"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Venue  *Venue  `gorm:"foreignKey:VenueID" json:"-"`
	Artist *Artist `gorm:"foreignKey:ArtistID" json:"-"`
}

// Upcoming reports whether the show starts strictly after now. A show
// starting exactly at now is already past.
func (s Show) Upcoming(now time.Time) bool {
	return s.StartTime.After(now)
}

// PartitionShows splits shows into past and upcoming relative to now,
// preserving their input order within each list.
func PartitionShows(shows []Show, now time.Time) (past, upcoming []Show) {
	for _, s := range shows {
		if s.Upcoming(now) {
			upcoming = append(upcoming, s)
		} else {
			past = append(past, s)
		}
	}
	return past, upcoming
}

// CountUpcoming returns how many of the given shows start strictly after now.
func CountUpcoming(shows []Show, now time.Time) int {
	n := 0
	for _, s := range shows {
		if s.Upcoming(now) {
			n++
		}
	}
	return n
}
