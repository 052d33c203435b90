package router

import (
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-lightbnb/config"
	"github.com/oksasatya/go-lightbnb/internal/application"
	pginfra "github.com/oksasatya/go-lightbnb/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-lightbnb/internal/interface/http"
	"github.com/oksasatya/go-lightbnb/internal/router/modules"
	"github.com/oksasatya/go-lightbnb/pkg/helpers"
)

// Deps are the shared components modules are built from. They are passed in
// explicitly so tests can swap the store.
type Deps struct {
	Config *config.Config
	Logger *logrus.Logger
	DB     pginfra.Querier
	JWT    *helpers.JWTManager
}

// InitModules builds every feature module and adds it to the registry.
// Call once during startup, before RegisterAll.
func InitModules(r *Registry, d Deps) {
	users := pginfra.NewUserRepository(d.DB)
	props := pginfra.NewPropertyRepository(d.DB, d.Logger)
	reservations := pginfra.NewReservationRepository(d.DB)

	accounts := application.NewAccounts(users, d.Logger)
	catalog := application.NewCatalog(props, reservations)

	userHandler := handlers.NewUserHandler(accounts, d.JWT, d.Logger, d.Config.CookieDomain, d.Config.CookieSecure)
	propertyHandler := handlers.NewPropertyHandler(catalog, d.Logger, d.Config.PropertyPageSize)

	r.Add(modules.NewUserModule(userHandler, d.JWT))
	r.Add(modules.NewPropertyModule(propertyHandler, d.JWT))
	if d.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
