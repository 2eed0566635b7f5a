package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"jobdeck_gateway/internal/models"
	"jobdeck_gateway/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartView struct {
	Items []models.CartItem `json:"items"`
	Count int               `json:"count"`
	Total int               `json:"total"`
}

func getCart(t *testing.T, browser *helpers.Browser) cartView {
	t.Helper()
	res, body := browser.Send(t, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var view cartView
	require.NoError(t, json.Unmarshal([]byte(body), &view))
	return view
}

func TestCart_AddRemoveAndTotal(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	user, password, _ := newUser(t, ts, models.RoleUser)

	browser := ts.NewBrowser(t)
	browser.SignIn(t, user.Email, password)

	res, _ := browser.Send(t, http.MethodPost, "/jobs/1/apply", map[string]string{"applyType": "quick"})
	require.Equal(t, http.StatusOK, res.StatusCode)
	res, _ = browser.Send(t, http.MethodPost, "/jobs/2/apply", map[string]string{"applyType": "smart"})
	require.Equal(t, http.StatusOK, res.StatusCode)
	res, _ = browser.Send(t, http.MethodPost, "/jobs/3/apply", map[string]string{"applyType": "manual"})
	require.Equal(t, http.StatusOK, res.StatusCode)

	view := getCart(t, browser)
	assert.Equal(t, 3, view.Count)
	assert.Equal(t, 30, view.Total)

	// Re-applying to a job in the cart changes nothing.
	browser.Send(t, http.MethodPost, "/jobs/1/apply", map[string]string{"applyType": "manual"})
	view = getCart(t, browser)
	assert.Equal(t, 3, view.Count)
	assert.Equal(t, 30, view.Total)

	res, _ = browser.Send(t, http.MethodDelete, "/cart/2", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	view = getCart(t, browser)
	assert.Equal(t, 2, view.Count)
	assert.Equal(t, 20, view.Total)
}

func TestCart_InvalidTierIsRejected(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	user, password, _ := newUser(t, ts, models.RoleUser)

	browser := ts.NewBrowser(t)
	browser.SignIn(t, user.Email, password)

	res, _ := browser.Send(t, http.MethodPost, "/jobs/1/apply", map[string]string{"applyType": "premium"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestCheckout_ChargesTotalAndClearsCart(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	user, password, _ := newUser(t, ts, models.RoleUser)

	browser := ts.NewBrowser(t)
	browser.SignIn(t, user.Email, password)

	browser.Send(t, http.MethodPost, "/jobs/1/apply", map[string]string{"applyType": "quick"})
	browser.Send(t, http.MethodPost, "/jobs/2/apply", map[string]string{"applyType": "manual"})

	res, body := browser.Send(t, http.MethodPost, "/checkout", map[string]string{
		"payment_method_id": "pm_ok",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"success":true`)
	assert.Contains(t, body, `"amount":20`)

	view := getCart(t, browser)
	assert.Zero(t, view.Count)
	assert.Zero(t, view.Total)

	// The charge the backend saw carries the wire tier labels.
	var charge bool
	for _, p := range ts.Backend.Payments() {
		if p.UserID != user.ID {
			continue
		}
		charge = true
		assert.Equal(t, 20, p.Amount)
		assert.Equal(t, "usd", p.Currency)
		require.Len(t, p.Cart, 2)
		assert.Equal(t, "AI", p.Cart[0].ApplyType)
		assert.Equal(t, "Manual", p.Cart[1].ApplyType)
	}
	assert.True(t, charge, "backend never saw the charge")
}

func TestCheckout_DeclinedCardKeepsCart(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	user, password, _ := newUser(t, ts, models.RoleUser)

	browser := ts.NewBrowser(t)
	browser.SignIn(t, user.Email, password)

	browser.Send(t, http.MethodPost, "/jobs/1/apply", map[string]string{"applyType": "smart"})

	res, body := browser.Send(t, http.MethodPost, "/checkout", map[string]string{
		"payment_method_id": "pm_card_declined",
	})
	assert.Equal(t, http.StatusPaymentRequired, res.StatusCode)
	assert.Contains(t, body, "card declined")

	view := getCart(t, browser)
	assert.Equal(t, 1, view.Count)
	assert.Equal(t, 10, view.Total)
}

func TestCheckout_EmptyCartIsRejected(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	user, password, _ := newUser(t, ts, models.RoleUser)

	browser := ts.NewBrowser(t)
	browser.SignIn(t, user.Email, password)

	res, body := browser.Send(t, http.MethodPost, "/checkout", map[string]string{
		"payment_method_id": "pm_ok",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "cart is empty")
}

func TestCart_PartitionFollowsSignedInUser(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	first, firstPassword, _ := newUser(t, ts, models.RoleUser)
	second, secondPassword, _ := newUser(t, ts, models.RoleUser)

	// Same browser profile, two accounts in turn.
	browser := ts.NewBrowser(t)
	browser.SignIn(t, first.Email, firstPassword)
	browser.Send(t, http.MethodPost, "/jobs/1/apply", map[string]string{"applyType": "quick"})
	browser.Send(t, http.MethodPost, "/jobs/2/apply", map[string]string{"applyType": "smart"})

	browser.SignIn(t, second.Email, secondPassword)
	view := getCart(t, browser)
	assert.Zero(t, view.Count)

	browser.Send(t, http.MethodPost, "/jobs/3/apply", map[string]string{"applyType": "manual"})
	view = getCart(t, browser)
	assert.Equal(t, 1, view.Count)

	// Switching back restores the first account's entries untouched.
	browser.SignIn(t, first.Email, firstPassword)
	view = getCart(t, browser)
	assert.Equal(t, 2, view.Count)
	assert.Equal(t, 15, view.Total)
}
