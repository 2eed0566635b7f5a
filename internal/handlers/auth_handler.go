package handlers

import (
	"net/http"

	"jobdeck_gateway/internal/middleware"
	"jobdeck_gateway/internal/services"
	"jobdeck_gateway/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes registers the public auth surface. Everything here is
// reachable without a session; the guard never wraps these routes.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sign-up", h.SignUp)
	rg.POST("/sign-in", h.SignIn)
	rg.POST("/sign-out", h.SignOut)
	rg.POST("/forgot-password", h.ForgotPassword)
	rg.POST("/verify-otp", h.VerifyOTP)
	rg.POST("/reset-password", h.ResetPassword)
	rg.GET("/session", h.Session)
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.SignUp(c.Request.Context(), req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful. You can sign in now.",
	})
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	sess := middleware.GetSession(c)
	crt := middleware.GetCart(c)

	user, err := h.authService.SignIn(c.Request.Context(), sess, crt, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	sess := middleware.GetSession(c)
	crt := middleware.GetCart(c)

	h.authService.Logout(c.Request.Context(), sess, crt)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Session reports what the persisted profile state holds so a fresh
// page load can restore its signed-in view without re-authenticating.
func (h *AuthHandler) Session(c *gin.Context) {
	sess := middleware.GetSession(c)
	sess.Hydrate()

	user := sess.User()
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user":          user,
	})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	msg, err := h.authService.ForgotPassword(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resetToken, msg, err := h.authService.VerifyOTP(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reset_token": resetToken,
		"message":     msg,
	})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	msg, err := h.authService.ResetPassword(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msg})
}
