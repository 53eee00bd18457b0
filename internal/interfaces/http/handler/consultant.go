package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	consultantapp "github.com/agence/backend/internal/application/consultant"
	reportapp "github.com/agence/backend/internal/application/report"
	"github.com/agence/backend/internal/domain/report"
	"github.com/agence/backend/internal/infrastructure/logger"
)

// ConsultantHandler serves the consultant listing and the consultant
// performance report.
type ConsultantHandler struct {
	BaseHandler
	service *consultantapp.Service
	reports *reportapp.Service
}

// NewConsultantHandler creates a new ConsultantHandler
func NewConsultantHandler(service *consultantapp.Service, reports *reportapp.Service) *ConsultantHandler {
	return &ConsultantHandler{service: service, reports: reports}
}

// RegisterRoutes registers consultant routes
func (h *ConsultantHandler) RegisterRoutes(rg *gin.RouterGroup) {
	consultants := rg.Group("/consultants")
	{
		consultants.GET("", h.List)
		consultants.GET("/monthly-totals", h.MonthlyTotals)
	}
}

// List returns one page of eligible consultants.
// GET /api/v1/consultants?limit=10&offset=0
func (h *ConsultantHandler) List(c *gin.Context) {
	params := parsePageParams(c)

	page, err := h.service.List(c.Request.Context(), params)
	if err != nil {
		logger.FromGin(c).Error("consultant listing failed", zap.Error(err))
		h.HandleError(c, err)
		return
	}
	h.OK(c, page)
}

// MonthlyTotals returns one page of per-consultant monthly aggregates for
// an inclusive YYYY-MM range.
// GET /api/v1/consultants/monthly-totals?start=2007-01&end=2007-12&userId=a&userId=b
func (h *ConsultantHandler) MonthlyTotals(c *gin.Context) {
	params := parsePageParams(c)

	monthRange, err := report.NewMonthRange(c.Query("start"), c.Query("end"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	filter := report.ConsultantFilter{
		Range:   monthRange,
		UserIDs: queryList(c, "userId"),
	}

	page, err := h.reports.ConsultantMonthlyTotals(c.Request.Context(), filter, params)
	if err != nil {
		logger.FromGin(c).Error("consultant report failed", zap.Error(err))
		h.HandleError(c, err)
		return
	}
	h.OK(c, page)
}
