package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-lightbnb/internal/interface/http"
	"github.com/oksasatya/go-lightbnb/internal/interface/middleware"
	"github.com/oksasatya/go-lightbnb/pkg/helpers"
)

// UserModule wires account routes.
// Public: POST /users, POST /users/login, POST /users/logout
// Protected: GET /users/me
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.POST("", m.Handler.Register)
	users.POST("/login", m.Handler.Login)
	users.POST("/logout", m.Handler.Logout)
	users.GET("/me", middleware.JWTAuth(m.JWT), m.Handler.Me)
}
