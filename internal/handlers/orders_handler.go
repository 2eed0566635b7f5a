package handlers

import (
	"net/http"

	"jobdeck_gateway/internal/middleware"
	"jobdeck_gateway/internal/models"
	"jobdeck_gateway/internal/services"
	"jobdeck_gateway/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type OrdersHandler struct {
	*BaseHandler
	orderService services.OrderService
}

func NewOrdersHandler(base *BaseHandler, orderService services.OrderService) *OrdersHandler {
	return &OrdersHandler{
		BaseHandler:  base,
		orderService: orderService,
	}
}

func (h *OrdersHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/orders", h.Orders)
	rg.PUT("/orders/:id/status", h.SetStatus)
}

func (h *OrdersHandler) Orders(c *gin.Context) {
	sess := middleware.GetSession(c)

	orders, err := h.orderService.Orders(c.Request.Context(), sess.Token())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"orders":  orders,
	})
}

func (h *OrdersHandler) SetStatus(c *gin.Context) {
	id, err := ParseParamInt64(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.OrderStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	sess := middleware.GetSession(c)
	if err := h.orderService.SetStatus(c.Request.Context(), sess.Token(), id, models.OrderStatus(req.Status)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
