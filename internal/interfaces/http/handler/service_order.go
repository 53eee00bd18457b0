package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	billingapp "github.com/agence/backend/internal/application/billing"
	"github.com/agence/backend/internal/domain/billing"
	"github.com/agence/backend/internal/infrastructure/logger"
)

// ServiceOrderHandler serves the service-order listing.
type ServiceOrderHandler struct {
	BaseHandler
	service *billingapp.Service
}

// NewServiceOrderHandler creates a new ServiceOrderHandler
func NewServiceOrderHandler(service *billingapp.Service) *ServiceOrderHandler {
	return &ServiceOrderHandler{service: service}
}

// RegisterRoutes registers service-order routes
func (h *ServiceOrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/service-orders", h.List)
}

// List returns one page of service orders, newest request date first. The
// request date bounds are inclusive ISO dates; userId may repeat.
// GET /api/v1/service-orders?userId=anapal&startRequestDate=2007-01-01
func (h *ServiceOrderHandler) List(c *gin.Context) {
	params := parsePageParams(c)

	startRequestDate, err := parseISODate(c, "startRequestDate")
	if err != nil {
		h.HandleError(c, err)
		return
	}
	endRequestDate, err := parseISODate(c, "endRequestDate")
	if err != nil {
		h.HandleError(c, err)
		return
	}

	filter := billing.ServiceOrderFilter{
		ConsultantIDs:    queryList(c, "userId"),
		StartRequestDate: startRequestDate,
		EndRequestDate:   endRequestDate,
	}

	page, err := h.service.ListServiceOrders(c.Request.Context(), filter, params)
	if err != nil {
		logger.FromGin(c).Error("service order listing failed", zap.Error(err))
		h.HandleError(c, err)
		return
	}
	h.OK(c, page)
}
