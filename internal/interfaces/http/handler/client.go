package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	clientapp "github.com/agence/backend/internal/application/client"
	reportapp "github.com/agence/backend/internal/application/report"
	"github.com/agence/backend/internal/domain/client"
	"github.com/agence/backend/internal/domain/report"
	"github.com/agence/backend/internal/infrastructure/logger"
)

// ClientHandler serves the client listing and the client revenue report.
type ClientHandler struct {
	BaseHandler
	service *clientapp.Service
	reports *reportapp.Service
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(service *clientapp.Service, reports *reportapp.Service) *ClientHandler {
	return &ClientHandler{service: service, reports: reports}
}

// RegisterRoutes registers client routes
func (h *ClientHandler) RegisterRoutes(rg *gin.RouterGroup) {
	clients := rg.Group("/clients")
	{
		clients.GET("", h.List)
		clients.GET("/monthly-totals", h.MonthlyTotals)
	}
}

// List returns one page of active clients. clientId may repeat to restrict
// the listing; entries that are not numeric are dropped.
// GET /api/v1/clients?limit=10&offset=0&clientId=1&clientId=2
func (h *ClientHandler) List(c *gin.Context) {
	params := parsePageParams(c)
	filter := client.Filter{ClientIDs: queryInt64List(c, "clientId")}

	page, err := h.service.List(c.Request.Context(), filter, params)
	if err != nil {
		logger.FromGin(c).Error("client listing failed", zap.Error(err))
		h.HandleError(c, err)
		return
	}
	h.OK(c, page)
}

// MonthlyTotals returns one page of per-client monthly aggregates for an
// inclusive YYYY-MM range.
// GET /api/v1/clients/monthly-totals?start=2007-01&end=2007-12&clientId=4
func (h *ClientHandler) MonthlyTotals(c *gin.Context) {
	params := parsePageParams(c)

	monthRange, err := report.NewMonthRange(c.Query("start"), c.Query("end"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	filter := report.ClientFilter{
		Range:     monthRange,
		ClientIDs: queryInt64List(c, "clientId"),
	}

	page, err := h.reports.ClientMonthlyTotals(c.Request.Context(), filter, params)
	if err != nil {
		logger.FromGin(c).Error("client report failed", zap.Error(err))
		h.HandleError(c, err)
		return
	}
	h.OK(c, page)
}
