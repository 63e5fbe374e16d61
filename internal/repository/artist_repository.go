package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fanfare-live/fanfare/internal/model"
)

// ArtistRepo encapsulates all database queries related to artists.
type ArtistRepo struct {
	db *gorm.DB
}

// NewArtistRepo constructs an ArtistRepo with the provided DB handle.
func NewArtistRepo(db *gorm.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

// Create inserts a new artist in its own transaction. On success the
// artist's ID field is populated with the auto-generated value.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(a).Error
	})
}

// GetByID fetches an artist without its shows. It returns ErrArtistNotFound
// when no row matches.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	var a model.Artist
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return &a, nil
}

// GetWithShows fetches an artist together with its shows and each show's
// venue, as needed by the detail view.
func (r *ArtistRepo) GetWithShows(ctx context.Context, id uint64) (*model.Artist, error) {
	var a model.Artist
	err := r.db.WithContext(ctx).
		Preload("Shows").
		Preload("Shows.Venue").
		First(&a, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListAll returns every artist ordered by id. The flat artist listing only
// needs identity fields, so shows are not loaded here.
func (r *ArtistRepo) ListAll(ctx context.Context) ([]model.Artist, error) {
	var out []model.Artist
	err := r.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

// SearchByName returns artists whose name contains term as a
// case-insensitive substring, ordered by name. An empty term matches every
// artist.
func (r *ArtistRepo) SearchByName(ctx context.Context, term string) ([]model.Artist, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var out []model.Artist
	err := r.db.WithContext(ctx).
		Preload("Shows").
		Where("LOWER(name) LIKE ?", pattern).
		Order("name").
		Find(&out).Error
	return out, err
}

// Update overwrites every mutable field of the artist in one transaction.
// It returns ErrArtistNotFound when the id does not resolve.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Artist
		if err := tx.First(&existing, a.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArtistNotFound
			}
			return err
		}
		a.CreatedAt = existing.CreatedAt
		return tx.Omit(clause.Associations).Save(a).Error
	})
}

// Count returns the number of artist rows.
func (r *ArtistRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Artist{}).Count(&n).Error
	return n, err
}
