package handlers

import (
	"context"
	"io"
	"net/http"

	"jobdeck_gateway/internal/middleware"
	"jobdeck_gateway/internal/models"
	"jobdeck_gateway/internal/services"
	"jobdeck_gateway/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

// RegisterUser exposes the signed-in user's own profile screen.
func (h *ProfileHandler) RegisterUser(rg *gin.RouterGroup) {
	rg.GET("/profile", h.Profile)
	rg.PUT("/profile", h.Update)
	rg.POST("/users/:id/profile-image", h.UploadImage)
	rg.POST("/users/:id/cv", h.UploadCV)
}

// RegisterAdmin exposes profile editing for other accounts.
func (h *ProfileHandler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("/profile/:id", h.ProfileByID)
	rg.POST("/profile/:id", h.SaveFor)
}

func (h *ProfileHandler) Profile(c *gin.Context) {
	sess := middleware.GetSession(c)

	p, err := h.profileService.Profile(c.Request.Context(), sess.Token())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) ProfileByID(c *gin.Context) {
	id, err := ParseParamInt64(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	sess := middleware.GetSession(c)
	p, err := h.profileService.ProfileByID(c.Request.Context(), sess.Token(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Update replaces the whole profile document, then returns the stored
// copy so the caller renders what the platform actually kept.
func (h *ProfileHandler) Update(c *gin.Context) {
	var p models.Profile
	if !h.BindAndValidateJSON(c, &p) {
		return
	}

	sess := middleware.GetSession(c)
	ctx := c.Request.Context()

	if err := h.profileService.Update(ctx, sess.Token(), p); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	stored, err := h.profileService.Profile(ctx, sess.Token())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stored)
}

func (h *ProfileHandler) SaveFor(c *gin.Context) {
	id, err := ParseParamInt64(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var p models.Profile
	if !h.BindAndValidateJSON(c, &p) {
		return
	}

	sess := middleware.GetSession(c)
	if err := h.profileService.SaveFor(c.Request.Context(), sess.Token(), id, p); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ProfileHandler) UploadImage(c *gin.Context) {
	h.uploadFile(c, "image", h.profileService.UploadImage)
}

func (h *ProfileHandler) UploadCV(c *gin.Context) {
	h.uploadFile(c, "cv", h.profileService.UploadCV)
}

func (h *ProfileHandler) uploadFile(c *gin.Context, field string, upload func(ctx context.Context, token string, userID int64, filename string, r io.Reader) (string, error)) {
	id, err := ParseParamInt64(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	fileHeader, err := c.FormFile(field)
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("missing file field: "+field))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	sess := middleware.GetSession(c)
	url, err := upload(c.Request.Context(), sess.Token(), id, fileHeader.Filename, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"url":     url,
	})
}
