package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/go-lightbnb/internal/domain/entity"
	"github.com/oksasatya/go-lightbnb/internal/domain/repository"
)

// Grouping by both ids keeps one row per reservation even though the review
// join fans out.
const selectPastReservations = `SELECT reservations.*, properties.*, avg(property_reviews.rating) as average_rating
FROM reservations
JOIN properties ON reservations.property_id = properties.id
JOIN property_reviews ON property_reviews.property_id = properties.id
WHERE reservations.guest_id = $1
AND reservations.end_date < now()::DATE
GROUP BY properties.id, reservations.id
ORDER BY reservations.start_date
LIMIT $2`

type ReservationRepository struct {
	db Querier
}

func NewReservationRepository(db Querier) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// ListPastForGuest returns the guest's reservations that ended before today,
// earliest start first.
func (r *ReservationRepository) ListPastForGuest(ctx context.Context, guestID int64, limit int) ([]entity.Reservation, error) {
	if limit <= 0 {
		limit = repository.DefaultLimit
	}
	rows, err := r.db.Query(ctx, selectPastReservations, guestID, limit)
	if err != nil {
		return nil, translate("list reservations", err)
	}
	res, err := pgx.CollectRows(rows, rowToReservation)
	if err != nil {
		return nil, translate("list reservations", err)
	}
	return res, nil
}

var _ repository.ReservationRepository = (*ReservationRepository)(nil)
