package handlers

import (
	"net/http"

	"jobdeck_gateway/internal/middleware"
	"jobdeck_gateway/internal/models"
	"jobdeck_gateway/internal/services"
	"jobdeck_gateway/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	*BaseHandler
	catalogService services.CatalogService
}

func NewCartHandler(base *BaseHandler, catalogService services.CatalogService) *CartHandler {
	return &CartHandler{
		BaseHandler:    base,
		catalogService: catalogService,
	}
}

func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs/:id/apply", h.Apply)
	rg.GET("/cart", h.Cart)
	rg.DELETE("/cart/:jobID", h.Remove)
	rg.DELETE("/cart", h.Clear)
}

// Apply adds a job to the cart with the chosen tier. The job document
// is fetched fresh so the cart snapshot carries current posting data.
func (h *CartHandler) Apply(c *gin.Context) {
	id, err := ParseParamInt64(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.catalogService.Job(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	crt := middleware.GetCart(c)
	crt.AddItem(job, models.ApplyTier(req.Tier))

	c.JSON(http.StatusOK, h.snapshot(c))
}

func (h *CartHandler) Cart(c *gin.Context) {
	c.JSON(http.StatusOK, h.snapshot(c))
}

func (h *CartHandler) Remove(c *gin.Context) {
	jobID, err := ParseParamInt64(c, "jobID")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	crt := middleware.GetCart(c)
	crt.RemoveItem(jobID)

	c.JSON(http.StatusOK, h.snapshot(c))
}

func (h *CartHandler) Clear(c *gin.Context) {
	crt := middleware.GetCart(c)
	crt.Clear()

	c.JSON(http.StatusOK, h.snapshot(c))
}

func (h *CartHandler) snapshot(c *gin.Context) gin.H {
	crt := middleware.GetCart(c)
	items := crt.Items()
	return gin.H{
		"items": items,
		"count": len(items),
		"total": crt.Total(),
	}
}
