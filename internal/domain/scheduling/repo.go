package scheduling

import "context"

type Repository interface {
	// Schedule inserts the clinical activity and its appointment atomically.
	// Failures are db.KindOperationFailed and neither row persists.
	Schedule(ctx context.Context, a *Appointment) error
}
