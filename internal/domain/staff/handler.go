package staff

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/staff/share", h.Share)
}

func (h *Handler) Share(c echo.Context) error {
	limit := 0
	if l := pagination.OptionalLimit(c); l != nil {
		limit = *l
	}
	shares, err := h.svc.Share(c.Request().Context(), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, shares)
}
