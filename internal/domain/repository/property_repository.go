package repository

import (
	"context"

	"github.com/oksasatya/go-lightbnb/internal/domain/entity"
)

// PropertyRepository reads and writes the property catalog.
type PropertyRepository interface {
	Search(ctx context.Context, opts entity.PropertySearch, limit int) ([]entity.Property, error)
	Create(ctx context.Context, p entity.NewProperty) (*entity.Property, error)
}

// ReservationRepository reads reservations.
type ReservationRepository interface {
	ListPastForGuest(ctx context.Context, guestID int64, limit int) ([]entity.Reservation, error)
}
