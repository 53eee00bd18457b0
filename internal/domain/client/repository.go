package client

import (
	"context"

	"github.com/agence/backend/internal/domain/shared"
)

// Repository lists active clients, ordered by id descending.
type Repository interface {
	List(ctx context.Context, filter Filter, params shared.PageParams) (shared.Page[Client], error)
}
