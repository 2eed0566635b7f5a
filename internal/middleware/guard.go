package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"jobdeck_gateway/internal/auth"
	"jobdeck_gateway/internal/backend"
	"jobdeck_gateway/internal/logger"
	"jobdeck_gateway/internal/models"
)

// Navigation targets of the guard.
const (
	SignInRoute  = "/sign-in"
	DefaultRoute = "/"
)

// Guard gates a route group by authentication and role. An empty allow-list
// means any authenticated role passes.
//
// Order of checks: hydrate the auth container from the persisted store if it
// is still empty, fail fast on a locally-expired token, then confirm the
// token with the backend. No token, no user or failed verification redirects
// to sign-in after clearing auth state; a valid session with a role outside
// the allow-list redirects to the default route instead.
func Guard(client *backend.Client, allowed ...models.UserRole) gin.HandlerFunc {
	allowedSet := make(map[models.UserRole]bool, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = true
	}

	return func(c *gin.Context) {
		sess := GetSession(c)
		sess.Hydrate()

		user := sess.User()
		token := sess.Token()
		if user == nil || token == "" {
			c.Redirect(http.StatusFound, SignInRoute)
			c.Abort()
			return
		}

		valid := !auth.Expired(token, time.Now())
		if valid {
			err := client.Verify(c.Request.Context(), token)
			if errors.Is(err, context.Canceled) {
				// Caller went away mid-verification; drop the result
				// without touching state.
				c.Abort()
				return
			}
			valid = err == nil
		}

		if !valid {
			logger.CtxInfo(c.Request.Context(), "token verification failed, clearing session")
			sess.Logout()
			GetCart(c).SetActiveUser(0)
			c.Redirect(http.StatusFound, SignInRoute)
			c.Abort()
			return
		}

		if len(allowedSet) > 0 && !allowedSet[user.Role] {
			c.Redirect(http.StatusFound, DefaultRoute)
			c.Abort()
			return
		}

		// Keep the cart partition in step with the verified identity.
		crt := GetCart(c)
		if crt.ActiveUser() != user.ID {
			crt.SetActiveUser(user.ID)
		}

		ctx := logger.WithUserID(c.Request.Context(), strconv.FormatInt(user.ID, 10))
		c.Request = c.Request.WithContext(ctx)
		c.Set("userID", user.ID)
		c.Set("role", user.Role)
		c.Next()
	}
}
