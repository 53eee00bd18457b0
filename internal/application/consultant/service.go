package consultant

import (
	"context"

	"github.com/agence/backend/internal/domain/consultant"
	"github.com/agence/backend/internal/domain/shared"
)

// Service provides application-level consultant operations
type Service struct {
	repo consultant.Repository
}

// NewService creates a new consultant Service
func NewService(repo consultant.Repository) *Service {
	return &Service{repo: repo}
}

// List returns one page of eligible consultants.
func (s *Service) List(ctx context.Context, params shared.PageParams) (shared.Page[consultant.Consultant], error) {
	return s.repo.List(ctx, params)
}
