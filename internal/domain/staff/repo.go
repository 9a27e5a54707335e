package staff

import "context"

type Repository interface {
	// Share computes per (staff, hospital) appointment counts and their
	// percentage of the hospital total, rounded to 2 decimals, highest
	// share first. A nil limit returns every row.
	Share(ctx context.Context, limit *int) ([]Share, error)
	Distribution(ctx context.Context) ([]DepartmentCount, error)
}
