package application

import (
	"context"

	"github.com/oksasatya/go-lightbnb/internal/domain/entity"
	repo "github.com/oksasatya/go-lightbnb/internal/domain/repository"
)

// Catalog serves listings and reservations with errors intact.
type Catalog struct {
	Properties   repo.PropertyRepository
	Reservations repo.ReservationRepository
}

func NewCatalog(props repo.PropertyRepository, res repo.ReservationRepository) *Catalog {
	return &Catalog{Properties: props, Reservations: res}
}

func (c *Catalog) SearchProperties(ctx context.Context, opts entity.PropertySearch, limit int) ([]entity.Property, error) {
	props, err := c.Properties.Search(ctx, opts, limit)
	if err != nil {
		return nil, err
	}
	if props == nil {
		props = []entity.Property{}
	}
	return props, nil
}

// AddProperty lists p under ownerID, whatever owner the payload named.
func (c *Catalog) AddProperty(ctx context.Context, ownerID int64, p entity.NewProperty) (*entity.Property, error) {
	p.OwnerID = entity.FlexInt(ownerID)
	return c.Properties.Create(ctx, p)
}

func (c *Catalog) PastReservations(ctx context.Context, guestID int64, limit int) ([]entity.Reservation, error) {
	res, err := c.Reservations.ListPastForGuest(ctx, guestID, limit)
	if err != nil {
		return nil, err
	}
	if res == nil {
		res = []entity.Reservation{}
	}
	return res, nil
}
