package billing

import (
	"context"

	"github.com/agence/backend/internal/domain/billing"
	"github.com/agence/backend/internal/domain/shared"
)

// Service provides application-level invoice and service-order operations
type Service struct {
	invoiceRepo billing.InvoiceRepository
	orderRepo   billing.ServiceOrderRepository
}

// NewService creates a new billing Service
func NewService(invoiceRepo billing.InvoiceRepository, orderRepo billing.ServiceOrderRepository) *Service {
	return &Service{invoiceRepo: invoiceRepo, orderRepo: orderRepo}
}

// ListInvoices returns one page of invoices, newest first.
func (s *Service) ListInvoices(ctx context.Context, filter billing.InvoiceFilter, params shared.PageParams) (shared.Page[billing.Invoice], error) {
	return s.invoiceRepo.List(ctx, filter, params)
}

// ListServiceOrders returns one page of service orders, newest first.
func (s *Service) ListServiceOrders(ctx context.Context, filter billing.ServiceOrderFilter, params shared.PageParams) (shared.Page[billing.ServiceOrder], error) {
	return s.orderRepo.List(ctx, filter, params)
}
