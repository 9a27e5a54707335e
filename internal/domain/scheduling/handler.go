package scheduling

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/platform/db"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/appointments/schedule", h.ScheduleAppointment)
}

// ScheduleRequest is the JSON body of POST /api/appointments/schedule.
type ScheduleRequest struct {
	CAID    int64  `json:"caid" validate:"required,gt=0"`
	IID     int64  `json:"iid" validate:"required,gt=0"`
	StaffID int64  `json:"staff_id" validate:"required,gt=0"`
	DepID   int64  `json:"dep_id" validate:"required,gt=0"`
	DateStr string `json:"date_str" validate:"required,datetime=2006-01-02"`
	TimeStr string `json:"time_str" validate:"required,clock"`
	Reason  string `json:"reason" validate:"required,min=10"`
}

type writeResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, writeResult{Success: false, Error: msg})
}

func (h *Handler) ScheduleAppointment(c echo.Context) error {
	var req ScheduleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}
	date, err := time.Parse(time.DateOnly, req.DateStr)
	if err != nil {
		return badRequest(c, "date_str must be a date in YYYY-MM-DD format")
	}

	a := &Appointment{
		CAID:    req.CAID,
		IID:     req.IID,
		StaffID: req.StaffID,
		DepID:   req.DepID,
		Date:    date,
		Time:    req.TimeStr,
		Reason:  req.Reason,
	}
	if err := h.svc.Schedule(c.Request().Context(), a); err != nil {
		return badRequest(c, scheduleErrorMessage(a, err))
	}
	return c.JSON(http.StatusCreated, writeResult{
		Success: true,
		Message: fmt.Sprintf("appointment %d scheduled", a.CAID),
	})
}

func scheduleErrorMessage(a *Appointment, err error) string {
	switch {
	case db.IsUniqueViolation(err):
		return fmt.Sprintf("an appointment with CAID %d already exists", a.CAID)
	case db.IsForeignKeyViolation(err):
		switch db.ConstraintName(err) {
		case "clinical_activity_iid_fkey":
			return fmt.Sprintf("patient %d does not exist", a.IID)
		case "clinical_activity_staff_id_fkey":
			return fmt.Sprintf("staff member %d does not exist", a.StaffID)
		case "clinical_activity_dep_id_fkey":
			return fmt.Sprintf("department %d does not exist", a.DepID)
		}
		return "referenced patient, staff member or department does not exist"
	}
	return err.Error()
}
