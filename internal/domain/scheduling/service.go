package scheduling

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Schedule books an appointment with status Scheduled. The reason length
// policy belongs to the caller.
func (s *Service) Schedule(ctx context.Context, a *Appointment) error {
	if a.CAID <= 0 {
		return fmt.Errorf("caid must be positive")
	}
	if a.IID <= 0 || a.StaffID <= 0 || a.DepID <= 0 {
		return fmt.Errorf("iid, staff_id and dep_id must be positive")
	}
	if a.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if strings.TrimSpace(a.Reason) == "" {
		return fmt.Errorf("reason is required")
	}
	a.Status = StatusScheduled
	return s.repo.Schedule(ctx, a)
}
