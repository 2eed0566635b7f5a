package handlers

import (
	"net/http"

	"jobdeck_gateway/internal/middleware"
	"jobdeck_gateway/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/users", h.Users)
	rg.GET("/admin/dashboard", h.Dashboard)
}

func (h *AdminHandler) Users(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	sess := middleware.GetSession(c)
	users, err := h.adminService.Users(c.Request.Context(), sess.Token(), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"users":     users.Users,
		"total":     users.Total,
		"page":      users.Page,
		"page_size": users.PageSize,
	})
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	sess := middleware.GetSession(c)

	dash, err := h.adminService.Dashboard(c.Request.Context(), sess.Token())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dash,
	})
}
