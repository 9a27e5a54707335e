package patient

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/platform/db"
	"github.com/hms/hms/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/patients", h.ListPatients)
	api.POST("/patients/add", h.AddPatient)
}

// AddPatientRequest is the JSON body of POST /api/patients/add.
type AddPatientRequest struct {
	IID      int64  `json:"iid" validate:"required,gt=0"`
	CIN      string `json:"cin" validate:"required,max=20"`
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
	Birth    string `json:"birth" validate:"required,datetime=2006-01-02"`
	Sex      string `json:"sex" validate:"required,oneof=M F"`
	Blood    string `json:"blood" validate:"omitempty,max=3"`
	Phone    string `json:"phone" validate:"required,max=20"`
}

func (r AddPatientRequest) toPatient() (*Patient, error) {
	birth, err := time.Parse(time.DateOnly, r.Birth)
	if err != nil {
		return nil, err
	}
	p := &Patient{
		IID:      r.IID,
		CIN:      r.CIN,
		FullName: r.FullName,
		Birth:    birth,
		Sex:      r.Sex,
		Phone:    r.Phone,
	}
	if r.Blood != "" {
		blood := r.Blood
		p.BloodGroup = &blood
	}
	return p, nil
}

type writeResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, writeResult{Success: false, Error: msg})
}

func (h *Handler) ListPatients(c echo.Context) error {
	limit := pagination.Limit(c, DefaultListLimit)
	items, err := h.svc.ListByLastName(c.Request().Context(), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) AddPatient(c echo.Context) error {
	var req AddPatientRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}
	p, err := req.toPatient()
	if err != nil {
		return badRequest(c, "birth must be a date in YYYY-MM-DD format")
	}

	if err := h.svc.Add(c.Request().Context(), p); err != nil {
		return badRequest(c, insertErrorMessage(p.IID, err))
	}
	return c.JSON(http.StatusCreated, writeResult{
		Success: true,
		Message: fmt.Sprintf("patient %d added", p.IID),
	})
}

func insertErrorMessage(iid int64, err error) string {
	if db.IsUniqueViolation(err) {
		return fmt.Sprintf("a patient with IID %d already exists", iid)
	}
	return err.Error()
}
