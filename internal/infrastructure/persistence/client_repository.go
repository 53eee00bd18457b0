package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/agence/backend/internal/domain/client"
	"github.com/agence/backend/internal/domain/shared"
	"github.com/agence/backend/internal/infrastructure/persistence/models"
)

// GormClientRepository implements client.Repository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// List returns one page of active clients ordered by co_cliente descending.
func (r *GormClientRepository) List(ctx context.Context, filter client.Filter, params shared.PageParams) (shared.Page[client.Client], error) {
	params = params.Normalize()

	var total int64
	if err := r.scopedQuery(ctx, filter).Count(&total).Error; err != nil {
		return shared.Page[client.Client]{}, err
	}

	var clientModels []models.ClientModel
	if err := r.scopedQuery(ctx, filter).
		Order("co_cliente DESC").
		Limit(params.Limit).
		Offset(params.Offset).
		Find(&clientModels).Error; err != nil {
		return shared.Page[client.Client]{}, err
	}

	clients := make([]client.Client, len(clientModels))
	for i, model := range clientModels {
		clients[i] = model.ToDomain()
	}
	return shared.NewPage(clients, total, params), nil
}

// scopedQuery restricts cao_cliente to active clients plus the optional
// id allow-list.
func (r *GormClientRepository) scopedQuery(ctx context.Context, filter client.Filter) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&models.ClientModel{}).
		Where("tp_cliente = ?", client.ActiveType)
	if len(filter.ClientIDs) > 0 {
		query = query.Where("co_cliente IN ?", filter.ClientIDs)
	}
	return query
}

// Ensure GormClientRepository implements client.Repository
var _ client.Repository = (*GormClientRepository)(nil)
