package staff

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Share returns staff shares; limit <= 0 means all rows.
func (s *Service) Share(ctx context.Context, limit int) ([]Share, error) {
	var lim *int
	if limit > 0 {
		lim = &limit
	}
	shares, err := s.repo.Share(ctx, lim)
	if shares == nil && err == nil {
		shares = []Share{}
	}
	return shares, err
}

func (s *Service) Distribution(ctx context.Context) ([]DepartmentCount, error) {
	return s.repo.Distribution(ctx)
}
