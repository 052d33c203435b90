package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-lightbnb/internal/application"
	"github.com/oksasatya/go-lightbnb/internal/domain/entity"
	"github.com/oksasatya/go-lightbnb/internal/interface/middleware"
	"github.com/oksasatya/go-lightbnb/pkg/helpers"
	"github.com/oksasatya/go-lightbnb/pkg/response"
	"github.com/oksasatya/go-lightbnb/pkg/validation"
)

type UserHandler struct {
	Svc     *application.Accounts
	JWT     *helpers.JWTManager
	Logger  logrus.FieldLogger
	Cookies *helpers.Sessions
}

func NewUserHandler(svc *application.Accounts, jwt *helpers.JWTManager, logger logrus.FieldLogger, cookieDomain string, cookieSecure bool) *UserHandler {
	return &UserHandler{Svc: svc, JWT: jwt, Logger: logger, Cookies: helpers.NewSessions(cookieDomain, cookieSecure)}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if errors.Is(err, application.ErrEmailTaken) {
		response.Error[any](c, http.StatusConflict, "email already registered", nil)
		return
	}
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "could not create user", nil)
		return
	}
	if !h.startSession(c, u) {
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"user": u}, "user created", nil)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}
	if !h.startSession(c, u) {
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u}, "login successful", nil)
}

func (h *UserHandler) Logout(c *gin.Context) {
	h.Cookies.End(c)
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out", nil)
}

func (h *UserHandler) Me(c *gin.Context) {
	u, err := h.Svc.Profile(c.Request.Context(), c.GetInt64(middleware.CtxUserIDKey))
	if errors.Is(err, application.ErrUserNotFound) {
		h.Cookies.End(c)
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("load profile failed")
		response.Error[any](c, http.StatusInternalServerError, "could not load user", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u}, "profile", nil)
}

func (h *UserHandler) startSession(c *gin.Context, u *entity.User) bool {
	token, exp, err := h.JWT.Generate(u.ID)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", u.ID).Error("generate session token failed")
		response.Error[any](c, http.StatusInternalServerError, "could not start session", nil)
		return false
	}
	h.Cookies.Start(c, token, exp)
	return true
}
