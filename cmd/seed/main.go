package main

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-lightbnb/config"
	"github.com/oksasatya/go-lightbnb/internal/application"
	"github.com/oksasatya/go-lightbnb/internal/domain/entity"
	pginfra "github.com/oksasatya/go-lightbnb/internal/infrastructure/postgres"
	"github.com/oksasatya/go-lightbnb/pkg/helpers"
)

const demoPassword = "password"

var demoUsers = []entity.User{
	{Name: "Eva Stanley", Email: "sebastianguerra@ymail.com"},
	{Name: "Louisa Meyer", Email: "jacksonrose@hotmail.com"},
	{Name: "Dominic Parks", Email: "victoriablackwell@outlook.com"},
}

var demoProperties = []entity.NewProperty{
	{
		Title: "Speed lamp", Description: "description",
		ThumbnailPhotoURL: "https://images.pexels.com/photos/2086676/pexels-photo-2086676.jpeg?auto=compress&cs=tinysrgb&h=350",
		CoverPhotoURL:     "https://images.pexels.com/photos/2086676/pexels-photo-2086676.jpeg",
		CostPerNight:      93061, ParkingSpaces: 6, NumberOfBathrooms: 4, NumberOfBedrooms: 8,
		Country: "Canada", Street: "536 Namsub Highway", City: "Sotboske", Province: "Quebec", PostCode: "28142",
	},
	{
		Title: "Blank corner", Description: "description",
		ThumbnailPhotoURL: "https://images.pexels.com/photos/2121121/pexels-photo-2121121.jpeg?auto=compress&cs=tinysrgb&h=350",
		CoverPhotoURL:     "https://images.pexels.com/photos/2121121/pexels-photo-2121121.jpeg",
		CostPerNight:      85234, ParkingSpaces: 6, NumberOfBathrooms: 6, NumberOfBedrooms: 7,
		Country: "Canada", Street: "651 Nami Road", City: "Bohbatev", Province: "Alberta", PostCode: "83680",
	},
	{
		Title: "Habit mix", Description: "description",
		ThumbnailPhotoURL: "https://images.pexels.com/photos/2080018/pexels-photo-2080018.jpeg?auto=compress&cs=tinysrgb&h=350",
		CoverPhotoURL:     "https://images.pexels.com/photos/2080018/pexels-photo-2080018.jpeg",
		CostPerNight:      46058, ParkingSpaces: 0, NumberOfBathrooms: 5, NumberOfBedrooms: 6,
		Country: "Canada", Street: "1650 Hejto Center", City: "Genwezuj", Province: "Newfoundland And Labrador", PostCode: "44583",
	},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env, cfg.LogLevel)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife, nil)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	store := application.NewAccessors(
		pginfra.NewUserRepository(pool),
		pginfra.NewPropertyRepository(pool, logger),
		pginfra.NewReservationRepository(pool),
		logger,
	)

	hash, err := helpers.HashPassword(demoPassword)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var guests []*entity.User
	for _, u := range demoUsers {
		u.Password = hash
		// AddUser hides the unique violation; a nil result means the user is
		// already there.
		created := store.AddUser(ctx, &u)
		if created == nil {
			created = store.GetUserWithEmail(ctx, u.Email)
		}
		if created == nil {
			log.Fatalf("failed to seed user %s", u.Email)
		}
		guests = append(guests, created)
		logger.WithFields(logrus.Fields{"id": created.ID, "email": created.Email}).Info("seeded user")
	}

	owner := guests[0]
	if existing := store.GetAllProperties(ctx, entity.PropertySearch{OwnerID: owner.ID}, 1); len(existing) > 0 {
		logger.Info("demo properties already present, skipping listings")
		return
	}

	for i, p := range demoProperties {
		p.OwnerID = entity.FlexInt(owner.ID)
		prop := store.AddProperty(ctx, p)
		if prop == nil {
			log.Fatalf("failed to seed property %q", p.Title)
		}
		guest := guests[1+i%(len(guests)-1)]
		if err := seedStay(ctx, pool, prop.ID, guest.ID, 3+i); err != nil {
			log.Fatalf("failed to seed stay for %q: %v", p.Title, err)
		}
		logger.WithFields(logrus.Fields{"id": prop.ID, "title": prop.Title}).Info("seeded property")
	}

	for _, g := range guests[1:] {
		past := store.GetAllReservations(ctx, g.ID, 0)
		logger.WithFields(logrus.Fields{"guest": g.Email, "past_reservations": len(past)}).Info("seed check")
	}
}

// seedStay books a finished week for the guest and reviews it.
func seedStay(ctx context.Context, pool *pgxpool.Pool, propertyID, guestID int64, rating int) error {
	var reservationID int64
	err := pool.QueryRow(ctx, `
		INSERT INTO reservations (start_date, end_date, property_id, guest_id)
		VALUES (now()::DATE - 30, now()::DATE - 23, $1, $2)
		RETURNING id
	`, propertyID, guestID).Scan(&reservationID)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO property_reviews (guest_id, property_id, reservation_id, rating, message)
		VALUES ($1, $2, $3, $4, 'messages')
	`, guestID, propertyID, reservationID, rating)
	return err
}
