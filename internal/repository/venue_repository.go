package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fanfare-live/fanfare/internal/model"
)

// VenueRepo encapsulates all database queries related to venues. It depends
// on a gorm.DB handle which is injected at startup and in tests.
type VenueRepo struct {
	db *gorm.DB
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle.
func NewVenueRepo(db *gorm.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// Create inserts a new venue in its own transaction. On success the venue's
// ID field is populated with the auto-generated value; on any failure the
// transaction is rolled back and no row remains.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(v).Error
	})
}

// GetByID fetches a venue without its shows. It returns ErrVenueNotFound
// when no row matches.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	var v model.Venue
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &v, nil
}

// GetWithShows fetches a venue together with its shows and each show's
// artist, as needed by the detail view.
func (r *VenueRepo) GetWithShows(ctx context.Context, id uint64) (*model.Venue, error) {
	var v model.Venue
	err := r.db.WithContext(ctx).
		Preload("Shows").
		Preload("Shows.Artist").
		First(&v, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &v, nil
}

// ListAll returns every venue with its shows, ordered by city, state and
// name. The ordering makes the grouped city listing deterministic.
func (r *VenueRepo) ListAll(ctx context.Context) ([]model.Venue, error) {
	var out []model.Venue
	err := r.db.WithContext(ctx).
		Preload("Shows").
		Order("city, state, name").
		Find(&out).Error
	return out, err
}

// SearchByName returns venues whose name contains term as a
// case-insensitive substring, ordered by name. An empty term matches every
// venue.
func (r *VenueRepo) SearchByName(ctx context.Context, term string) ([]model.Venue, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var out []model.Venue
	err := r.db.WithContext(ctx).
		Preload("Shows").
		Where("LOWER(name) LIKE ?", pattern).
		Order("name").
		Find(&out).Error
	return out, err
}

// Update overwrites every mutable field of the venue in one transaction.
// It returns ErrVenueNotFound when the id does not resolve; on any other
// failure the transaction is rolled back and the original row is untouched.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Venue
		if err := tx.First(&existing, v.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVenueNotFound
			}
			return err
		}
		v.CreatedAt = existing.CreatedAt
		return tx.Omit(clause.Associations).Save(v).Error
	})
}

// Delete removes the venue and its dependent shows in one transaction, so
// no orphaned show can ever be observed. It reports whether a venue row was
// actually deleted.
func (r *VenueRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("venue_id = ?", id).Delete(&model.Show{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Venue{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

// Count returns the number of venue rows.
func (r *VenueRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Venue{}).Count(&n).Error
	return n, err
}
