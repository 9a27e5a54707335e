package dashboard

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/domain/inventory"
	"github.com/hms/hms/internal/domain/staff"
	"github.com/hms/hms/pkg/pagination"
)

// Handler serves /api/dashboard/*. Stock and staff charts come from the
// inventory and staff services.
type Handler struct {
	svc               *Service
	inventory         *inventory.Service
	staff             *staff.Service
	upcomingFromToday bool
}

func NewHandler(svc *Service, inv *inventory.Service, st *staff.Service, upcomingFromToday bool) *Handler {
	return &Handler{svc: svc, inventory: inv, staff: st, upcomingFromToday: upcomingFromToday}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/dashboard")
	g.GET("/stats", h.Stats)
	g.GET("/recent-patients", h.RecentPatients)
	g.GET("/upcoming-appointments", h.UpcomingAppointments)
	g.GET("/critical-stock", h.CriticalStock)
	g.GET("/gender-distribution", h.GenderDistribution)
	g.GET("/staff-distribution", h.StaffDistribution)
	g.GET("/stock-status", h.StockStatus)
	g.GET("/appointments-trend", h.AppointmentsTrend)
}

func internalError(err error) error {
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (h *Handler) Stats(c echo.Context) error {
	st, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, st)
}

func (h *Handler) RecentPatients(c echo.Context) error {
	out, err := h.svc.RecentPatients(c.Request().Context(), pagination.Limit(c, DefaultRecentLimit))
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, out)
}

// UpcomingAppointments accepts from=YYYY-MM-DD, from=today or from=all.
// Without from the server default applies.
func (h *Handler) UpcomingAppointments(c echo.Context) error {
	var from *time.Time
	switch raw := c.QueryParam("from"); raw {
	case "":
		if h.upcomingFromToday {
			today := h.svc.Today()
			from = &today
		}
	case "all":
	case "today":
		today := h.svc.Today()
		from = &today
	default:
		d, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "from must be YYYY-MM-DD, today or all")
		}
		from = &d
	}

	out, err := h.svc.UpcomingAppointments(c.Request().Context(), from, pagination.Limit(c, DefaultUpcomingLimit))
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) CriticalStock(c echo.Context) error {
	out, err := h.inventory.CriticalStock(c.Request().Context(), pagination.Limit(c, inventory.DefaultCriticalLimit))
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, out)
}

type genderChart struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
	Male   int      `json:"male"`
	Female int      `json:"female"`
}

func genderLabel(sex string) string {
	switch sex {
	case "M":
		return "Male"
	case "F":
		return "Female"
	}
	return sex
}

func (h *Handler) GenderDistribution(c echo.Context) error {
	rows, err := h.svc.GenderDistribution(c.Request().Context())
	if err != nil {
		return internalError(err)
	}
	chart := genderChart{Labels: []string{}, Counts: []int{}}
	for _, r := range rows {
		chart.Labels = append(chart.Labels, genderLabel(r.Sex))
		chart.Counts = append(chart.Counts, r.Count)
		switch r.Sex {
		case "M":
			chart.Male = r.Count
		case "F":
			chart.Female = r.Count
		}
	}
	return c.JSON(http.StatusOK, chart)
}

func (h *Handler) StaffDistribution(c echo.Context) error {
	rows, err := h.staff.Distribution(c.Request().Context())
	if err != nil {
		return internalError(err)
	}
	departments := make([]string, 0, len(rows))
	counts := make([]int, 0, len(rows))
	for _, r := range rows {
		departments = append(departments, r.Department)
		counts = append(counts, r.Count)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"departments": departments,
		"counts":      counts,
	})
}

func (h *Handler) StockStatus(c echo.Context) error {
	st, err := h.inventory.StockStatus(c.Request().Context())
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"labels": inventory.StatusLabels,
		"levels": st.Levels(),
	})
}

func (h *Handler) AppointmentsTrend(c echo.Context) error {
	rows, err := h.svc.AppointmentsByMonth(c.Request().Context(), pagination.Months(c, DefaultTrendMonths))
	if err != nil {
		return internalError(err)
	}
	months := make([]string, 0, len(rows))
	counts := make([]int, 0, len(rows))
	for _, r := range rows {
		months = append(months, r.Month)
		counts = append(counts, r.Count)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"months": months,
		"counts": counts,
	})
}
