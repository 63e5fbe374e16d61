package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fanfare-live/fanfare/internal/model"
)

// ShowRepo encapsulates all database queries related to shows.
type ShowRepo struct {
	db *gorm.DB
}

// NewShowRepo constructs a ShowRepo with the provided DB handle.
func NewShowRepo(db *gorm.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create persists a show after resolving its venue and artist references
// inside the same transaction. If either reference does not resolve, the
// transaction is rolled back and no show row is written.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var venue model.Venue
		if err := tx.First(&venue, s.VenueID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVenueNotFound
			}
			return err
		}
		var artist model.Artist
		if err := tx.First(&artist, s.ArtistID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArtistNotFound
			}
			return err
		}
		return tx.Omit(clause.Associations).Create(s).Error
	})
}

// GetByID fetches a show with its venue and artist resolved. It returns
// ErrShowNotFound when no row matches.
func (r *ShowRepo) GetByID(ctx context.Context, id uint64) (*model.Show, error) {
	var s model.Show
	err := r.db.WithContext(ctx).
		Preload("Venue").
		Preload("Artist").
		First(&s, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShowNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ListAll returns every show with its venue and artist resolved, ordered by
// start time.
func (r *ShowRepo) ListAll(ctx context.Context) ([]model.Show, error) {
	var out []model.Show
	err := r.db.WithContext(ctx).
		Preload("Venue").
		Preload("Artist").
		Order("start_time").
		Find(&out).Error
	return out, err
}

// Count returns the number of show rows.
func (r *ShowRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Show{}).Count(&n).Error
	return n, err
}
