package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	billingapp "github.com/agence/backend/internal/application/billing"
	"github.com/agence/backend/internal/domain/billing"
	"github.com/agence/backend/internal/infrastructure/logger"
)

// InvoiceHandler serves the invoice listing.
type InvoiceHandler struct {
	BaseHandler
	service *billingapp.Service
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(service *billingapp.Service) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// RegisterRoutes registers invoice routes
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/invoices", h.List)
}

// List returns one page of invoices, newest issue date first. The issue
// date bounds are inclusive ISO dates; serviceOrderId may repeat and
// non-numeric entries are dropped.
// GET /api/v1/invoices?startIssueDate=2007-01-01&endIssueDate=2007-06-30
func (h *InvoiceHandler) List(c *gin.Context) {
	params := parsePageParams(c)

	startIssueDate, err := parseISODate(c, "startIssueDate")
	if err != nil {
		h.HandleError(c, err)
		return
	}
	endIssueDate, err := parseISODate(c, "endIssueDate")
	if err != nil {
		h.HandleError(c, err)
		return
	}

	filter := billing.InvoiceFilter{
		StartIssueDate:  startIssueDate,
		EndIssueDate:    endIssueDate,
		ServiceOrderIDs: queryInt64List(c, "serviceOrderId"),
	}

	page, err := h.service.ListInvoices(c.Request.Context(), filter, params)
	if err != nil {
		logger.FromGin(c).Error("invoice listing failed", zap.Error(err))
		h.HandleError(c, err)
		return
	}
	h.OK(c, page)
}
