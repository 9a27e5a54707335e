package inventory

import "context"

type Repository interface {
	// LowStock returns stock positions whose quantity (0 when missing) is
	// below the reorder level (DefaultReorderLevel when missing), ordered by
	// hospital then medication name.
	LowStock(ctx context.Context) ([]StockItem, error)
	// CriticalStock returns existing stock rows with qty < reorder_level,
	// largest shortfall first.
	CriticalStock(ctx context.Context, limit int) ([]StockItem, error)
	StockStatus(ctx context.Context) (StockStatus, error)
}
