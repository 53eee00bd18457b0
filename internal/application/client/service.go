package client

import (
	"context"

	"github.com/agence/backend/internal/domain/client"
	"github.com/agence/backend/internal/domain/shared"
)

// Service provides application-level client operations
type Service struct {
	repo client.Repository
}

// NewService creates a new client Service
func NewService(repo client.Repository) *Service {
	return &Service{repo: repo}
}

// List returns one page of active clients, optionally restricted to an id
// allow-list.
func (s *Service) List(ctx context.Context, filter client.Filter, params shared.PageParams) (shared.Page[client.Client], error) {
	return s.repo.List(ctx, filter, params)
}
