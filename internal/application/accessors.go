package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-lightbnb/internal/domain/entity"
	repo "github.com/oksasatya/go-lightbnb/internal/domain/repository"
)

// Accessors keeps the legacy calling convention of the LightBnB data layer:
// every store failure is logged and the caller gets nil, exactly as if nothing
// matched. Callers that need to tell the two apart should use the
// repositories, Accounts or Catalog instead.
type Accessors struct {
	Users        repo.UserRepository
	Properties   repo.PropertyRepository
	Reservations repo.ReservationRepository
	Logger       logrus.FieldLogger
}

func NewAccessors(users repo.UserRepository, props repo.PropertyRepository, res repo.ReservationRepository, logger logrus.FieldLogger) *Accessors {
	return &Accessors{Users: users, Properties: props, Reservations: res, Logger: logger}
}

func (a *Accessors) logFailure(op string, err error) {
	if a.Logger == nil || errors.Is(err, repo.ErrNotFound) {
		return
	}
	a.Logger.WithError(err).WithField("op", op).Error("store call failed")
}

// GetUserWithEmail returns the user with email, or nil.
func (a *Accessors) GetUserWithEmail(ctx context.Context, email string) *entity.User {
	u, err := a.Users.GetByEmail(ctx, email)
	if err != nil {
		a.logFailure("getUserWithEmail", err)
		return nil
	}
	return u
}

// GetUserWithID returns the user with id, or nil.
func (a *Accessors) GetUserWithID(ctx context.Context, id int64) *entity.User {
	u, err := a.Users.GetByID(ctx, id)
	if err != nil {
		a.logFailure("getUserWithId", err)
		return nil
	}
	return u
}

// AddUser stores u as given and returns the inserted row, or nil.
func (a *Accessors) AddUser(ctx context.Context, u *entity.User) *entity.User {
	created, err := a.Users.Create(ctx, u)
	if err != nil {
		a.logFailure("addUser", err)
		return nil
	}
	return created
}

// GetAllReservations returns up to limit past reservations of the guest
// (10 when limit is not positive), or nil.
func (a *Accessors) GetAllReservations(ctx context.Context, guestID int64, limit int) []entity.Reservation {
	res, err := a.Reservations.ListPastForGuest(ctx, guestID, limit)
	if err != nil {
		a.logFailure("getAllReservations", err)
		return nil
	}
	return res
}

// GetAllProperties returns up to limit properties matching opts, or nil.
func (a *Accessors) GetAllProperties(ctx context.Context, opts entity.PropertySearch, limit int) []entity.Property {
	props, err := a.Properties.Search(ctx, opts, limit)
	if err != nil {
		a.logFailure("getAllProperties", err)
		return nil
	}
	return props
}

// AddProperty inserts p and returns the stored row, or nil.
func (a *Accessors) AddProperty(ctx context.Context, p entity.NewProperty) *entity.Property {
	created, err := a.Properties.Create(ctx, p)
	if err != nil {
		a.logFailure("addProperty", err)
		return nil
	}
	return created
}
