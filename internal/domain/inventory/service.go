package inventory

import "context"

const DefaultCriticalLimit = 5

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) LowStock(ctx context.Context) ([]StockItem, error) {
	items, err := s.repo.LowStock(ctx)
	if items == nil && err == nil {
		items = []StockItem{}
	}
	return items, err
}

func (s *Service) CriticalStock(ctx context.Context, limit int) ([]StockItem, error) {
	if limit <= 0 {
		limit = DefaultCriticalLimit
	}
	items, err := s.repo.CriticalStock(ctx, limit)
	if items == nil && err == nil {
		items = []StockItem{}
	}
	return items, err
}

func (s *Service) StockStatus(ctx context.Context) (StockStatus, error) {
	return s.repo.StockStatus(ctx)
}
