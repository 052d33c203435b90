package application

import (
	"context"
	"fmt"

	"github.com/oksasatya/go-lightbnb/internal/domain/entity"
	repo "github.com/oksasatya/go-lightbnb/internal/domain/repository"
)

type fakeUsers struct {
	byEmail map[string]*entity.User
	err     error
}

func newFakeUsers() *fakeUsers { return &fakeUsers{byEmail: map[string]*entity.User{}} }

func (f *fakeUsers) Create(_ context.Context, u *entity.User) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, fmt.Errorf("create user: %w", repo.ErrDuplicateEmail)
	}
	c := *u
	c.ID = int64(len(f.byEmail) + 1)
	f.byEmail[c.Email] = &c
	return &c, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("get user by id: %w", repo.ErrNotFound)
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("get user by email: %w", repo.ErrNotFound)
}

type fakeProperties struct {
	rows    []entity.Property
	created entity.NewProperty
	err     error
}

func (f *fakeProperties) Search(_ context.Context, _ entity.PropertySearch, limit int) ([]entity.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > 0 && len(f.rows) > limit {
		return f.rows[:limit], nil
	}
	return f.rows, nil
}

func (f *fakeProperties) Create(_ context.Context, p entity.NewProperty) (*entity.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = p
	return &entity.Property{ID: 1, OwnerID: p.OwnerID.Int64(), Title: p.Title}, nil
}

type fakeReservations struct {
	rows []entity.Reservation
	err  error
}

func (f *fakeReservations) ListPastForGuest(_ context.Context, _ int64, _ int) ([]entity.Reservation, error) {
	return f.rows, f.err
}
