package patient

import (
	"context"
	"fmt"
	"strings"
)

const DefaultListLimit = 20

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByLastName(ctx context.Context, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.repo.ListOrderedByLastName(ctx, limit)
}

func (s *Service) Add(ctx context.Context, p *Patient) error {
	if p.IID <= 0 {
		return fmt.Errorf("iid must be positive")
	}
	p.FullName = strings.TrimSpace(p.FullName)
	if p.FullName == "" {
		return fmt.Errorf("full_name is required")
	}
	if p.Birth.IsZero() {
		return fmt.Errorf("birth is required")
	}
	if p.BloodGroup != nil && strings.TrimSpace(*p.BloodGroup) == "" {
		p.BloodGroup = nil
	}
	return s.repo.Insert(ctx, p)
}
