package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-lightbnb/internal/interface/http"
	"github.com/oksasatya/go-lightbnb/internal/interface/middleware"
	"github.com/oksasatya/go-lightbnb/pkg/helpers"
)

// PropertyModule wires the listing API.
// Public: GET /api/properties
// Protected: GET /api/reservations, POST /api/properties
type PropertyModule struct {
	Handler *handlers.PropertyHandler
	JWT     *helpers.JWTManager
}

func NewPropertyModule(h *handlers.PropertyHandler, jwt *helpers.JWTManager) *PropertyModule {
	return &PropertyModule{Handler: h, JWT: jwt}
}

func (m *PropertyModule) Register(rg *gin.RouterGroup) {
	api := rg.Group("/api")
	api.GET("/properties", m.Handler.List)

	auth := api.Group("/", middleware.JWTAuth(m.JWT))
	{
		auth.GET("/reservations", m.Handler.Reservations)
		auth.POST("/properties", m.Handler.Create)
	}
}
