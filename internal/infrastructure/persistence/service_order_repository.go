package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/agence/backend/internal/domain/billing"
	"github.com/agence/backend/internal/domain/shared"
	"github.com/agence/backend/internal/infrastructure/persistence/models"
)

// GormServiceOrderRepository implements billing.ServiceOrderRepository using GORM
type GormServiceOrderRepository struct {
	db *gorm.DB
}

// NewGormServiceOrderRepository creates a new GormServiceOrderRepository
func NewGormServiceOrderRepository(db *gorm.DB) *GormServiceOrderRepository {
	return &GormServiceOrderRepository{db: db}
}

// List returns one page of service orders, newest request date first,
// falling back to co_os descending within the same day.
func (r *GormServiceOrderRepository) List(ctx context.Context, filter billing.ServiceOrderFilter, params shared.PageParams) (shared.Page[billing.ServiceOrder], error) {
	params = params.Normalize()

	var total int64
	if err := r.scopedQuery(ctx, filter).Count(&total).Error; err != nil {
		return shared.Page[billing.ServiceOrder]{}, err
	}

	var orderModels []models.ServiceOrderModel
	if err := r.scopedQuery(ctx, filter).
		Order("dt_sol DESC, co_os DESC").
		Limit(params.Limit).
		Offset(params.Offset).
		Find(&orderModels).Error; err != nil {
		return shared.Page[billing.ServiceOrder]{}, err
	}

	orders := make([]billing.ServiceOrder, len(orderModels))
	for i, model := range orderModels {
		orders[i] = model.ToDomain()
	}
	return shared.NewPage(orders, total, params), nil
}

func (r *GormServiceOrderRepository) scopedQuery(ctx context.Context, filter billing.ServiceOrderFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.ServiceOrderModel{})
	if len(filter.ConsultantIDs) > 0 {
		query = query.Where("co_usuario IN ?", filter.ConsultantIDs)
	}
	if filter.StartRequestDate != "" {
		query = query.Where("dt_sol >= ?", filter.StartRequestDate)
	}
	if filter.EndRequestDate != "" {
		query = query.Where("dt_sol <= ?", filter.EndRequestDate)
	}
	return query
}

// Ensure GormServiceOrderRepository implements billing.ServiceOrderRepository
var _ billing.ServiceOrderRepository = (*GormServiceOrderRepository)(nil)
