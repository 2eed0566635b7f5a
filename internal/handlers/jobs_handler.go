package handlers

import (
	"net/http"

	"jobdeck_gateway/internal/middleware"
	"jobdeck_gateway/internal/services"

	"github.com/gin-gonic/gin"
)

type JobsHandler struct {
	*BaseHandler
	catalogService services.CatalogService
}

func NewJobsHandler(base *BaseHandler, catalogService services.CatalogService) *JobsHandler {
	return &JobsHandler{
		BaseHandler:    base,
		catalogService: catalogService,
	}
}

// RegisterPublic exposes the browsable catalogue.
func (h *JobsHandler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.Jobs)
	rg.GET("/jobs/:id", h.Job)
}

// RegisterUser exposes the signed-in job history screens.
func (h *JobsHandler) RegisterUser(rg *gin.RouterGroup) {
	rg.GET("/history", h.History)
}

func (h *JobsHandler) Jobs(c *gin.Context) {
	jobs, err := h.catalogService.Jobs(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobsHandler) Job(c *gin.Context) {
	id, err := ParseParamInt64(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	job, err := h.catalogService.Job(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobsHandler) History(c *gin.Context) {
	sess := middleware.GetSession(c)

	jobs, err := h.catalogService.MyJobs(c.Request.Context(), sess.Token())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"jobs":    jobs,
	})
}
