package postgres

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-lightbnb/internal/domain/entity"
	"github.com/oksasatya/go-lightbnb/internal/domain/repository"
)

// The fixture lives in temporary tables inside a transaction that is rolled
// back, so the target database is left untouched.
const fixtureSQL = `
CREATE TEMP TABLE users (
  id SERIAL PRIMARY KEY,
  name VARCHAR(255) NOT NULL,
  email VARCHAR(255) NOT NULL UNIQUE,
  password VARCHAR(255) NOT NULL
) ON COMMIT DROP;
CREATE TEMP TABLE properties (
  id SERIAL PRIMARY KEY,
  owner_id INTEGER NOT NULL REFERENCES users(id),
  title VARCHAR(255) NOT NULL,
  description TEXT,
  thumbnail_photo_url VARCHAR(255) NOT NULL,
  cover_photo_url VARCHAR(255) NOT NULL,
  cost_per_night INTEGER NOT NULL DEFAULT 0,
  parking_spaces INTEGER NOT NULL DEFAULT 0,
  number_of_bathrooms INTEGER NOT NULL DEFAULT 0,
  number_of_bedrooms INTEGER NOT NULL DEFAULT 0,
  country VARCHAR(255) NOT NULL,
  street VARCHAR(255) NOT NULL,
  city VARCHAR(255) NOT NULL,
  province VARCHAR(255) NOT NULL,
  post_code VARCHAR(255) NOT NULL,
  active BOOLEAN NOT NULL DEFAULT TRUE
) ON COMMIT DROP;
CREATE TEMP TABLE reservations (
  id SERIAL PRIMARY KEY,
  start_date DATE NOT NULL,
  end_date DATE NOT NULL,
  property_id INTEGER NOT NULL REFERENCES properties(id),
  guest_id INTEGER NOT NULL REFERENCES users(id)
) ON COMMIT DROP;
CREATE TEMP TABLE property_reviews (
  id SERIAL PRIMARY KEY,
  guest_id INTEGER NOT NULL REFERENCES users(id),
  property_id INTEGER NOT NULL REFERENCES properties(id),
  reservation_id INTEGER NOT NULL REFERENCES reservations(id),
  rating SMALLINT NOT NULL DEFAULT 0,
  message TEXT
) ON COMMIT DROP;

INSERT INTO users (name, email, password) VALUES
  ('Owner One', 'owner@example.com', 'pw'),
  ('Guest Two', 'guest@example.com', 'pw');

INSERT INTO properties (owner_id, title, description, thumbnail_photo_url, cover_photo_url, cost_per_night, country, street, city, province, post_code) VALUES
  (1, 'Bay loft', NULL, 't', 'c', 10000, 'USA', '1 Main', 'San Francisco', 'CA', '94103'),
  (1, 'Mile high', 'cozy', 't', 'c', 4900, 'USA', '2 Main', 'Denver', 'CO', '80202');

INSERT INTO reservations (start_date, end_date, property_id, guest_id) VALUES
  ('2019-01-10', '2019-01-15', 1, 2),
  ('2018-05-01', '2018-05-03', 2, 2),
  ('2999-01-01', '2999-01-05', 1, 2),
  (CURRENT_DATE - 2, CURRENT_DATE, 2, 2);

INSERT INTO property_reviews (guest_id, property_id, reservation_id, rating) VALUES
  (2, 1, 1, 4), (2, 1, 1, 4), (2, 1, 1, 5), (2, 1, 1, 4), (2, 1, 1, 4),
  (2, 2, 2, 3), (2, 2, 2, 4);
`

func fixtureTx(t *testing.T) pgx.Tx {
	t.Helper()
	dsn := os.Getenv("LIGHTBNB_TEST_DSN")
	if dsn == "" {
		t.Skip("LIGHTBNB_TEST_DSN not set")
	}
	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dsn)
	require.NoError(t, err)
	tx, err := conn.Begin(ctx)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = tx.Rollback(ctx)
		_ = conn.Close(ctx)
	})
	_, err = tx.Exec(ctx, fixtureSQL)
	require.NoError(t, err)
	return tx
}

func cities(props []entity.Property) []string {
	out := make([]string, 0, len(props))
	for _, p := range props {
		out = append(out, p.City)
	}
	return out
}

func TestIntegrationUsers(t *testing.T) {
	tx := fixtureTx(t)
	ctx := context.Background()
	users := NewUserRepository(tx)

	_, err := users.GetByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	u, err := users.GetByEmail(ctx, "guest@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(2), u.ID)

	created, err := users.Create(ctx, &entity.User{Name: "New", Email: "new@example.com", Password: "pw"})
	require.NoError(t, err)
	got, err := users.GetByEmail(ctx, "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "New", got.Name)
}

func TestIntegrationPastReservations(t *testing.T) {
	tx := fixtureTx(t)
	ctx := context.Background()
	repo := NewReservationRepository(tx)

	res, err := repo.ListPastForGuest(ctx, 2, 10)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "Denver", res[0].Property.City)
	assert.Equal(t, "San Francisco", res[1].Property.City)
	assert.True(t, res[0].StartDate.Before(res[1].StartDate))
	assert.InDelta(t, 4.2, res[1].Property.AverageRating, 0.001)

	res, err = repo.ListPastForGuest(ctx, 2, 1)
	require.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestIntegrationPropertySearch(t *testing.T) {
	tx := fixtureTx(t)
	ctx := context.Background()
	repo := NewPropertyRepository(tx, nil)

	tests := []struct {
		name string
		opts entity.PropertySearch
		want []string
	}{
		{"no filters orders by price", entity.PropertySearch{}, []string{"Denver", "San Francisco"}},
		{"city substring", entity.PropertySearch{City: "san"}, []string{"San Francisco"}},
		{"minimum rating", entity.PropertySearch{MinimumRating: 4}, []string{"San Francisco"}},
		{"price window", entity.PropertySearch{MinimumPricePerNight: 50, MaximumPricePerNight: 150}, []string{"San Francisco"}},
		{"owner without city", entity.PropertySearch{OwnerID: 1}, []string{"Denver", "San Francisco"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			props, err := repo.Search(ctx, tc.opts, 10)
			require.NoError(t, err)
			assert.Equal(t, tc.want, cities(props))
		})
	}

	props, err := repo.Search(ctx, entity.PropertySearch{}, 1)
	require.NoError(t, err)
	assert.Len(t, props, 1)
}

func TestIntegrationCreateProperty(t *testing.T) {
	tx := fixtureTx(t)
	var in entity.NewProperty
	require.NoError(t, json.Unmarshal([]byte(`{
		"owner_id": "1", "title": "Cabin", "description": "quiet",
		"thumbnail_photo_url": "t", "cover_photo_url": "c", "cost_per_night": "7500",
		"street": "3 Pine", "city": "Whistler", "province": "BC", "post_code": "V0N", "country": "Canada",
		"parking_spaces": "2", "number_of_bathrooms": "1", "number_of_bedrooms": "2"
	}`), &in))

	p, err := NewPropertyRepository(tx, nil).Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.OwnerID)
	assert.Equal(t, int64(2), p.ParkingSpaces)
	assert.Equal(t, int64(1), p.NumberOfBathrooms)
	assert.Equal(t, int64(2), p.NumberOfBedrooms)
	assert.True(t, p.Active)
}
