package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-lightbnb/internal/application"
	"github.com/oksasatya/go-lightbnb/internal/domain/entity"
	"github.com/oksasatya/go-lightbnb/internal/domain/repository"
	"github.com/oksasatya/go-lightbnb/internal/interface/middleware"
	"github.com/oksasatya/go-lightbnb/pkg/response"
	"github.com/oksasatya/go-lightbnb/pkg/validation"
)

type PropertyHandler struct {
	Svc         *application.Catalog
	Logger      logrus.FieldLogger
	DefaultSize int
}

func NewPropertyHandler(svc *application.Catalog, logger logrus.FieldLogger, defaultSize int) *PropertyHandler {
	return &PropertyHandler{Svc: svc, Logger: logger, DefaultSize: defaultSize}
}

type searchQuery struct {
	entity.PropertySearch
	Limit int `form:"limit" binding:"gte=0,lte=100"`
}

// List serves GET /api/properties.
func (h *PropertyHandler) List(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid query", validation.ToDetails(err))
		return
	}
	limit := q.Limit
	if limit == 0 {
		limit = h.DefaultSize
	}
	props, err := h.Svc.SearchProperties(c.Request.Context(), q.PropertySearch, limit)
	if err != nil {
		h.Logger.WithError(err).Error("search properties failed")
		response.Error[any](c, http.StatusInternalServerError, "could not load properties", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"properties": props}, "properties", response.ListMeta{Count: len(props), Limit: limit})
}

// Create serves POST /api/properties for the signed-in owner.
func (h *PropertyHandler) Create(c *gin.Context) {
	var req entity.NewProperty
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.AddProperty(c.Request.Context(), c.GetInt64(middleware.CtxUserIDKey), req)
	if errors.Is(err, repository.ErrUnknownOwner) {
		response.Error[any](c, http.StatusBadRequest, "owner does not exist", nil)
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("create property failed")
		response.Error[any](c, http.StatusInternalServerError, "could not create property", nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"property": p}, "property created", nil)
}

// Reservations serves GET /api/reservations for the signed-in guest.
func (h *PropertyHandler) Reservations(c *gin.Context) {
	limit := repository.DefaultLimit
	res, err := h.Svc.PastReservations(c.Request.Context(), c.GetInt64(middleware.CtxUserIDKey), limit)
	if err != nil {
		h.Logger.WithError(err).Error("list reservations failed")
		response.Error[any](c, http.StatusInternalServerError, "could not load reservations", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservations": res}, "reservations", response.ListMeta{Count: len(res), Limit: limit})
}
