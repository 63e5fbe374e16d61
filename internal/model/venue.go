package model

import "time"

// Venue is a place that hosts shows. It corresponds to a row in the
// `venues` table. Genres are stored denormalized as one comma-joined text
// column (see GenreList).
type Venue struct {
	ID                 uint64    `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"not null" json:"name"`
	City               string    `json:"city"`
	State              string    `gorm:"size:2" json:"state"`
	Address            string    `json:"address"`
	Phone              string    `json:"phone"`
	ImageLink          string    `json:"image_link"`
	FacebookLink       string    `json:"facebook_link"`
	WebsiteLink        string    `json:"website_link"`
	SeekingTalent      bool      `json:"seeking_talent"`
	SeekingDescription string    `json:"seeking_description"`
	Genres             GenreList `gorm:"type:text" json:"genres"`
	CreatedAt          time.Time `json:"-"`
	UpdatedAt          time.Time `json:"-"`

	// Shows hosted at this venue. Deleting the venue deletes them too.
	Shows []Show `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE" json:"-"`
}
