package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-lightbnb/internal/domain/entity"
	"github.com/oksasatya/go-lightbnb/internal/domain/repository"
)

const insertProperty = `INSERT INTO properties (owner_id, title, description, thumbnail_photo_url, cover_photo_url, cost_per_night, street, city, province, post_code, country, parking_spaces, number_of_bathrooms, number_of_bedrooms) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING *`

type PropertyRepository struct {
	db     Querier
	logger logrus.FieldLogger
}

// NewPropertyRepository builds the catalog repository. logger may be nil.
func NewPropertyRepository(db Querier, logger logrus.FieldLogger) *PropertyRepository {
	return &PropertyRepository{db: db, logger: logger}
}

// Search returns at most limit properties matching opts, cheapest first, each
// with its average review rating.
func (r *PropertyRepository) Search(ctx context.Context, opts entity.PropertySearch, limit int) ([]entity.Property, error) {
	sql, args := BuildPropertySearch(opts, limit)
	if r.logger != nil {
		r.logger.WithFields(logrus.Fields{"sql": sql, "args": args}).Debug("property search")
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, translate("search properties", err)
	}
	props, err := pgx.CollectRows(rows, rowToProperty)
	if err != nil {
		return nil, translate("search properties", err)
	}
	return props, nil
}

// Create inserts p. The owner and the three counts are bound as integers.
func (r *PropertyRepository) Create(ctx context.Context, p entity.NewProperty) (*entity.Property, error) {
	rows, err := r.db.Query(ctx, insertProperty,
		p.OwnerID.Int64(),
		p.Title,
		p.Description,
		p.ThumbnailPhotoURL,
		p.CoverPhotoURL,
		p.CostPerNight.Int64(),
		p.Street,
		p.City,
		p.Province,
		p.PostCode,
		p.Country,
		p.ParkingSpaces.Int64(),
		p.NumberOfBathrooms.Int64(),
		p.NumberOfBedrooms.Int64(),
	)
	if err != nil {
		return nil, translate("create property", err)
	}
	created, err := pgx.CollectExactlyOneRow(rows, rowToProperty)
	if err != nil {
		return nil, translate("create property", err)
	}
	return &created, nil
}

var _ repository.PropertyRepository = (*PropertyRepository)(nil)
