package integration_test

import (
	"net/http"
	"testing"

	"jobdeck_gateway/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUpThenSignIn(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	browser := ts.NewBrowser(t)

	res, body := browser.Send(t, http.MethodPost, "/sign-up", map[string]string{
		"name":     "New User",
		"email":    "newuser@test.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, body, "Registration successful")

	res, body = browser.Send(t, http.MethodPost, "/sign-in", map[string]string{
		"email":    "newuser@test.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"success":true`)
	assert.Contains(t, body, "newuser@test.com")
}

func TestSignIn_BadCredentials(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	user, _, _ := newUser(t, ts, models.RoleUser)

	browser := ts.NewBrowser(t)
	res, body := browser.Send(t, http.MethodPost, "/sign-in", map[string]string{
		"email":    user.Email,
		"password": "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "invalid credentials")
}

func TestSignIn_RejectsMalformedBody(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	browser := ts.NewBrowser(t)

	res, _ := browser.Send(t, http.MethodPost, "/sign-in", map[string]string{
		"email": "not-an-email",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestSessionSurvivesNewRequest(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	user, password, _ := newUser(t, ts, models.RoleUser)

	browser := ts.NewBrowser(t)
	browser.SignIn(t, user.Email, password)

	res, body := browser.Send(t, http.MethodGet, "/session", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"authenticated":true`)
	assert.Contains(t, body, user.Email)
}

func TestSignOut_ClearsTheSession(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	user, password, _ := newUser(t, ts, models.RoleUser)

	browser := ts.NewBrowser(t)
	browser.SignIn(t, user.Email, password)

	res, _ := browser.Send(t, http.MethodPost, "/sign-out", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body := browser.Send(t, http.MethodGet, "/session", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"authenticated":false`)

	res, _ = browser.Send(t, http.MethodGet, "/history", nil)
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/sign-in", res.Header.Get("Location"))
}

func TestPasswordRecoveryFlow(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	user, _, _ := newUser(t, ts, models.RoleUser)

	browser := ts.NewBrowser(t)

	res, body := browser.Send(t, http.MethodPost, "/forgot-password", map[string]string{
		"email": user.Email,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "OTP sent")

	res, body = browser.Send(t, http.MethodPost, "/verify-otp", map[string]string{
		"email": user.Email,
		"otp":   "123456",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "reset-token-1")

	res, body = browser.Send(t, http.MethodPost, "/reset-password", map[string]string{
		"reset_token":  "reset-token-1",
		"new_password": "fresh-password1",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Password updated")
}
