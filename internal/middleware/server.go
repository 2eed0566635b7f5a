package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jobdeck_gateway/internal/cart"
	"jobdeck_gateway/internal/logger"
	"jobdeck_gateway/internal/session"
	"jobdeck_gateway/pkg/contextkeys"
)

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		log := logger.FromContext(c.Request.Context())
		fields := []any{
			slog.String("client_ip", c.ClientIP()),
			slog.Int("status", c.Writer.Status()),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Duration("duration", duration),
			slog.Int("size_bytes", c.Writer.Size()),
		}
		if c.Writer.Status() >= 500 {
			log.Error("HTTP Server Error", fields...)
		} else if c.Writer.Status() >= 400 {
			log.Warn("HTTP Client Error", fields...)
		} else {
			log.Info("HTTP Request", fields...)
		}
	}
}

// SessionMiddleware resolves the browser profile from the cookie (minting a
// fresh profile id on first sight) and binds the profile's auth and cart
// containers into the request.
func SessionMiddleware(sessions *session.Manager, carts *cart.Manager, cookieName string, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID, err := c.Cookie(cookieName)
		if err != nil || profileID == "" {
			profileID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, profileID, int((365 * 24 * time.Hour).Seconds()), "/", "", secure, true)
		}

		ctx := logger.WithProfileID(c.Request.Context(), profileID)
		c.Request = c.Request.WithContext(ctx)

		c.Set(string(contextkeys.SessionContextKey), sessions.Get(profileID))
		c.Set(string(contextkeys.CartContextKey), carts.Get(profileID))
		c.Next()
	}
}

// GetSession extracts the browser profile's auth container. Panics when
// SessionMiddleware is not installed; that is a wiring bug, not a runtime
// condition.
func GetSession(c *gin.Context) *session.Session {
	val, ok := c.Get(string(contextkeys.SessionContextKey))
	if !ok {
		panic("session middleware not installed")
	}
	return val.(*session.Session)
}

// GetCart extracts the browser profile's cart container.
func GetCart(c *gin.Context) *cart.Cart {
	val, ok := c.Get(string(contextkeys.CartContextKey))
	if !ok {
		panic("session middleware not installed")
	}
	return val.(*cart.Cart)
}
