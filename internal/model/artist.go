package model

import "time"

// Artist is a performer who plays shows. It corresponds to a row in the
// `artists` table.
type Artist struct {
	ID                 uint64    `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"not null" json:"name"`
	City               string    `json:"city"`
	State              string    `gorm:"size:2" json:"state"`
	Phone              string    `json:"phone"`
	ImageLink          string    `json:"image_link"`
	FacebookLink       string    `json:"facebook_link"`
	Website            string    `json:"website"`
	SeekingVenue       bool      `json:"seeking_venue"`
	SeekingDescription string    `json:"seeking_description"`
	Genres             GenreList `gorm:"type:text" json:"genres"`
	CreatedAt          time.Time `json:"-"`
	UpdatedAt          time.Time `json:"-"`

	// Shows this artist is booked for. Deleting the artist deletes them.
	Shows []Show `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE" json:"-"`
}
