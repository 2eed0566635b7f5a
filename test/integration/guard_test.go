package integration_test

import (
	"net/http"
	"testing"

	"jobdeck_gateway/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_UnauthenticatedIsSentToSignIn(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	browser := ts.NewBrowser(t)

	res, _ := browser.Send(t, http.MethodGet, "/history", nil)

	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/sign-in", res.Header.Get("Location"))
}

func TestGuard_WrongRoleIsSentHomeNotToSignIn(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	user, password, _ := newUser(t, ts, models.RoleUser)

	browser := ts.NewBrowser(t)
	browser.SignIn(t, user.Email, password)

	res, _ := browser.Send(t, http.MethodGet, "/admin/dashboard", nil)

	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/", res.Header.Get("Location"))
}

func TestGuard_MatchingRoleSeesContent(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	admin, password, _ := newUser(t, ts, models.RoleAdmin)

	browser := ts.NewBrowser(t)
	browser.SignIn(t, admin.Email, password)

	res, body := browser.Send(t, http.MethodGet, "/admin/dashboard", nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "totalJobs")
}

func TestGuard_RevokedTokenClearsSessionAndRedirects(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	user, password, token := newUser(t, ts, models.RoleUser)

	browser := ts.NewBrowser(t)
	browser.SignIn(t, user.Email, password)

	res, _ := browser.Send(t, http.MethodGet, "/history", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	ts.Backend.RevokeToken(token)

	res, _ = browser.Send(t, http.MethodGet, "/history", nil)
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/sign-in", res.Header.Get("Location"))

	// The clear is durable: the session stays signed out afterwards.
	res, body := browser.Send(t, http.MethodGet, "/session", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"authenticated":false`)
}

func TestGuard_PublicCatalogueNeedsNoSession(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	browser := ts.NewBrowser(t)

	res, body := browser.Send(t, http.MethodGet, "/jobs", nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Backend Engineer")
}
