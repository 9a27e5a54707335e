package dashboard

import (
	"context"
	"time"

	"github.com/hms/hms/internal/domain/patient"
)

type Repository interface {
	CountPatients(ctx context.Context) (int, error)
	CountStaff(ctx context.Context) (int, error)
	CountAppointments(ctx context.Context) (int, error)
	// CountLowStock counts stock rows with qty < reorder_level. Rows without
	// a reorder level are not counted.
	CountLowStock(ctx context.Context) (int, error)

	// RecentPatients returns patients by descending IID.
	RecentPatients(ctx context.Context, limit int) ([]patient.Summary, error)
	// UpcomingAppointments orders by date then time. A nil from returns
	// appointments of any date.
	UpcomingAppointments(ctx context.Context, from *time.Time, limit int) ([]Upcoming, error)
	GenderDistribution(ctx context.Context) ([]GenderCount, error)
	// AppointmentsByMonth returns one entry per month for the trailing months
	// including the current one, oldest first, zero-filled.
	AppointmentsByMonth(ctx context.Context, months int) ([]MonthCount, error)
}
