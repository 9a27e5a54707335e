package patient

import "context"

type Repository interface {
	// ListOrderedByLastName returns at most limit patients ordered by the
	// last space-separated token of FullName, then by FullName.
	ListOrderedByLastName(ctx context.Context, limit int) ([]Summary, error)
	// Insert adds one patient. Failures are db.KindInsertionFailed and leave
	// no partial effects.
	Insert(ctx context.Context, p *Patient) error
}
