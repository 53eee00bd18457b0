package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/agence/backend/internal/domain/billing"
	"github.com/agence/backend/internal/domain/shared"
	"github.com/agence/backend/internal/infrastructure/persistence/models"
)

// GormInvoiceRepository implements billing.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// List returns one page of invoices, newest issue date first, falling back
// to co_fatura descending for invoices issued on the same day.
func (r *GormInvoiceRepository) List(ctx context.Context, filter billing.InvoiceFilter, params shared.PageParams) (shared.Page[billing.Invoice], error) {
	params = params.Normalize()

	var total int64
	if err := r.scopedQuery(ctx, filter).Count(&total).Error; err != nil {
		return shared.Page[billing.Invoice]{}, err
	}

	var invoiceModels []models.InvoiceModel
	if err := r.scopedQuery(ctx, filter).
		Order("data_emissao DESC, co_fatura DESC").
		Limit(params.Limit).
		Offset(params.Offset).
		Find(&invoiceModels).Error; err != nil {
		return shared.Page[billing.Invoice]{}, err
	}

	invoices := make([]billing.Invoice, len(invoiceModels))
	for i, model := range invoiceModels {
		invoices[i] = model.ToDomain()
	}
	return shared.NewPage(invoices, total, params), nil
}

func (r *GormInvoiceRepository) scopedQuery(ctx context.Context, filter billing.InvoiceFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.InvoiceModel{})
	if filter.StartIssueDate != "" {
		query = query.Where("data_emissao >= ?", filter.StartIssueDate)
	}
	if filter.EndIssueDate != "" {
		query = query.Where("data_emissao <= ?", filter.EndIssueDate)
	}
	if len(filter.ServiceOrderIDs) > 0 {
		query = query.Where("co_os IN ?", filter.ServiceOrderIDs)
	}
	return query
}

// Ensure GormInvoiceRepository implements billing.InvoiceRepository
var _ billing.InvoiceRepository = (*GormInvoiceRepository)(nil)
