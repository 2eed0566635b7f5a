package handlers

import (
	"net/http"

	"jobdeck_gateway/internal/middleware"
	"jobdeck_gateway/internal/services"
	"jobdeck_gateway/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	*BaseHandler
	checkoutService services.CheckoutService
}

func NewCheckoutHandler(base *BaseHandler, checkoutService services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		BaseHandler:     base,
		checkoutService: checkoutService,
	}
}

func (h *CheckoutHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/checkout", h.Checkout)
}

func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	sess := middleware.GetSession(c)
	crt := middleware.GetCart(c)

	receipt, err := h.checkoutService.Pay(c.Request.Context(), sess, crt, req.PaymentMethodID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"receipt": receipt,
	})
}
