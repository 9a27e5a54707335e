package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hms/hms/internal/domain/patient"
)

const (
	DefaultRecentLimit   = 5
	DefaultUpcomingLimit = 5
	DefaultTrendMonths   = 6
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Stats runs the four counts concurrently. The first failure cancels the
// others and no partial Stats is returned.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	var st Stats
	counters := []struct {
		dst *int
		fn  func(context.Context) (int, error)
	}{
		{&st.TotalPatients, s.repo.CountPatients},
		{&st.TotalStaff, s.repo.CountStaff},
		{&st.TotalAppointments, s.repo.CountAppointments},
		{&st.LowStockCount, s.repo.CountLowStock},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, c := range counters {
		c := c
		g.Go(func() error {
			n, err := c.fn(gctx)
			if err != nil {
				return err
			}
			*c.dst = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *Service) RecentPatients(ctx context.Context, limit int) ([]patient.Summary, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	out, err := s.repo.RecentPatients(ctx, limit)
	if out == nil && err == nil {
		out = []patient.Summary{}
	}
	return out, err
}

// Today returns the current date at midnight UTC.
func (s *Service) Today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *Service) UpcomingAppointments(ctx context.Context, from *time.Time, limit int) ([]Upcoming, error) {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}
	out, err := s.repo.UpcomingAppointments(ctx, from, limit)
	if out == nil && err == nil {
		out = []Upcoming{}
	}
	return out, err
}

func (s *Service) GenderDistribution(ctx context.Context) ([]GenderCount, error) {
	return s.repo.GenderDistribution(ctx)
}

func (s *Service) AppointmentsByMonth(ctx context.Context, months int) ([]MonthCount, error) {
	if months <= 0 {
		months = DefaultTrendMonths
	}
	return s.repo.AppointmentsByMonth(ctx, months)
}
