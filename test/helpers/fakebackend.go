package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"jobdeck_gateway/internal/backend"
	"jobdeck_gateway/internal/models"
)

// DecliningPaymentMethod is a payment method id the fake backend always
// declines, mirroring processor test cards.
const DecliningPaymentMethod = "pm_card_declined"

// FakeBackend is an in-memory stand-in for the marketplace backend. It
// implements the endpoints the gateway calls, with fixed credentials
// and a switch to decline payments.
type FakeBackend struct {
	Server *httptest.Server

	mu       sync.Mutex
	users    map[string]*fakeAccount // by email
	tokens   map[string]*fakeAccount // by bearer token
	jobs     []models.Job
	orders   map[int64]*models.Order
	profiles map[int64]*models.Profile
	payments []backend.PaymentRequest

	// DeclinePayments makes POST /payments/stripe report a failed charge.
	DeclinePayments bool
}

type fakeAccount struct {
	User     models.User
	Password string
	Token    string
}

func NewFakeBackend() *FakeBackend {
	fb := &FakeBackend{
		users:    make(map[string]*fakeAccount),
		tokens:   make(map[string]*fakeAccount),
		orders:   make(map[int64]*models.Order),
		profiles: make(map[int64]*models.Profile),
	}
	fb.Server = httptest.NewServer(http.HandlerFunc(fb.handle))
	return fb
}

func (fb *FakeBackend) Close() {
	fb.Server.Close()
}

func (fb *FakeBackend) URL() string {
	return fb.Server.URL
}

// AddUser registers a canned account with a fixed bearer token.
func (fb *FakeBackend) AddUser(user models.User, password, token string) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	acc := &fakeAccount{User: user, Password: password, Token: token}
	fb.users[user.Email] = acc
	fb.tokens[token] = acc
}

// RevokeToken makes a previously issued token fail verification.
func (fb *FakeBackend) RevokeToken(token string) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	delete(fb.tokens, token)
}

func (fb *FakeBackend) SetJobs(jobs []models.Job) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.jobs = jobs
}

func (fb *FakeBackend) AddOrder(o models.Order) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.orders[o.OrderID] = &o
}

func (fb *FakeBackend) Order(id int64) (models.Order, bool) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	o, ok := fb.orders[id]
	if !ok {
		return models.Order{}, false
	}
	return *o, true
}

func (fb *FakeBackend) SetProfile(userID int64, p models.Profile) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.profiles[userID] = &p
}

// Payments returns the charges the backend accepted, in order.
func (fb *FakeBackend) Payments() []backend.PaymentRequest {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	out := make([]backend.PaymentRequest, len(fb.payments))
	copy(out, fb.payments)
	return out
}

func (fb *FakeBackend) handle(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	path := r.URL.Path
	switch {
	case r.Method == http.MethodPost && path == "/signup":
		fb.handleSignUp(w, r)
	case r.Method == http.MethodPost && path == "/sign-in":
		fb.handleSignIn(w, r)
	case r.Method == http.MethodGet && path == "/auth/verify":
		fb.handleVerify(w, r)
	case r.Method == http.MethodPost && path == "/forgot-password":
		writeJSON(w, http.StatusOK, map[string]string{"message": "OTP sent to your email"})
	case r.Method == http.MethodPost && path == "/verify-otp":
		writeJSON(w, http.StatusOK, map[string]string{"reset_token": "reset-token-1", "message": "OTP verified"})
	case r.Method == http.MethodPost && path == "/reset-password":
		writeJSON(w, http.StatusOK, map[string]string{"message": "Password updated"})
	case r.Method == http.MethodGet && path == "/jobs/all":
		writeJSON(w, http.StatusOK, fb.jobs)
	case r.Method == http.MethodGet && strings.HasPrefix(path, "/jobs/"):
		fb.handleJob(w, r)
	case r.Method == http.MethodPost && path == "/jobs/my-jobs":
		fb.handleMyJobs(w, r)
	case r.Method == http.MethodGet && path == "/orders":
		fb.handleOrders(w, r)
	case r.Method == http.MethodPut && strings.HasSuffix(path, "/status") && strings.HasPrefix(path, "/orders/"):
		fb.handleOrderStatus(w, r)
	case r.Method == http.MethodPost && path == "/payments/stripe":
		fb.handlePayment(w, r)
	case r.Method == http.MethodGet && path == "/profile":
		fb.handleOwnProfile(w, r)
	case r.Method == http.MethodPut && path == "/profile":
		fb.handleUpdateOwnProfile(w, r)
	case strings.HasPrefix(path, "/profile/"):
		fb.handleProfileByID(w, r)
	case r.Method == http.MethodGet && path == "/users":
		fb.handleUsers(w, r)
	case r.Method == http.MethodGet && path == "/admin/dashboard":
		fb.handleDashboard(w, r)
	case r.Method == http.MethodPost && strings.HasPrefix(path, "/users/"):
		fb.handleUpload(w, r)
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found: " + path})
	}
}

func (fb *FakeBackend) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var body map[string]string
	json.NewDecoder(r.Body).Decode(&body)
	email := body["email"]
	if _, exists := fb.users[email]; exists {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "email already registered"})
		return
	}
	id := int64(len(fb.users) + 100)
	acc := &fakeAccount{
		User:     models.User{ID: id, Name: body["name"], Email: email, Role: models.RoleUser},
		Password: body["password"],
		Token:    fmt.Sprintf("token-%d", id),
	}
	fb.users[email] = acc
	fb.tokens[acc.Token] = acc
	writeJSON(w, http.StatusCreated, map[string]string{"message": "registered"})
}

func (fb *FakeBackend) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var body map[string]string
	json.NewDecoder(r.Body).Decode(&body)
	acc, ok := fb.users[body["email"]]
	if !ok || acc.Password != body["password"] {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": false,
			"message": "invalid credentials",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    acc.User,
		"token":   acc.Token,
	})
}

func (fb *FakeBackend) bearer(r *http.Request) (*fakeAccount, bool) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	acc, ok := fb.tokens[token]
	return acc, ok && token != ""
}

func (fb *FakeBackend) handleVerify(w http.ResponseWriter, r *http.Request) {
	if _, ok := fb.bearer(r); !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid token"})
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (fb *FakeBackend) handleJob(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/jobs/"), 10, 64)
	for _, j := range fb.jobs {
		if j.ID == id {
			writeJSON(w, http.StatusOK, j)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"message": "job not found"})
}

func (fb *FakeBackend) handleMyJobs(w http.ResponseWriter, r *http.Request) {
	acc, ok := fb.bearer(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid token"})
		return
	}
	var purchased []models.PurchasedJob
	for _, p := range fb.payments {
		if p.UserID != acc.User.ID {
			continue
		}
		for _, entry := range p.Cart {
			purchased = append(purchased, models.PurchasedJob{
				UserID: acc.User.ID,
				JobID:  entry.JobID,
				Status: "pending",
			})
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"jobs":    purchased,
	})
}

func (fb *FakeBackend) handleOrders(w http.ResponseWriter, r *http.Request) {
	if _, ok := fb.bearer(r); !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid token"})
		return
	}
	orders := make([]models.Order, 0, len(fb.orders))
	for _, o := range fb.orders {
		orders = append(orders, *o)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"orders":  orders,
	})
}

func (fb *FakeBackend) handleOrderStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := fb.bearer(r); !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid token"})
		return
	}
	idStr := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/orders/"), "/status")
	id, _ := strconv.ParseInt(idStr, 10, 64)
	o, ok := fb.orders[id]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "order not found"})
		return
	}
	var body struct {
		Status models.OrderStatus `json:"status"`
	}
	json.NewDecoder(r.Body).Decode(&body)
	o.Status = body.Status
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (fb *FakeBackend) handlePayment(w http.ResponseWriter, r *http.Request) {
	var req backend.PaymentRequest
	json.NewDecoder(r.Body).Decode(&req)
	if fb.DeclinePayments || req.PaymentMethodID == DecliningPaymentMethod {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": false,
			"error":   "card declined",
		})
		return
	}
	fb.payments = append(fb.payments, req)
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (fb *FakeBackend) handleOwnProfile(w http.ResponseWriter, r *http.Request) {
	acc, ok := fb.bearer(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid token"})
		return
	}
	p := fb.profiles[acc.User.ID]
	if p == nil {
		p = &models.Profile{}
	}
	writeJSON(w, http.StatusOK, p)
}

func (fb *FakeBackend) handleUpdateOwnProfile(w http.ResponseWriter, r *http.Request) {
	acc, ok := fb.bearer(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid token"})
		return
	}
	var p models.Profile
	json.NewDecoder(r.Body).Decode(&p)
	fb.profiles[acc.User.ID] = &p
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (fb *FakeBackend) handleProfileByID(w http.ResponseWriter, r *http.Request) {
	if _, ok := fb.bearer(r); !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid token"})
		return
	}
	id, _ := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/profile/"), 10, 64)
	switch r.Method {
	case http.MethodGet:
		p := fb.profiles[id]
		if p == nil {
			p = &models.Profile{}
		}
		writeJSON(w, http.StatusOK, p)
	case http.MethodPost:
		var p models.Profile
		json.NewDecoder(r.Body).Decode(&p)
		fb.profiles[id] = &p
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"message": "method not allowed"})
	}
}

func (fb *FakeBackend) handleUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := fb.bearer(r); !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid token"})
		return
	}
	users := make([]models.User, 0, len(fb.users))
	for _, acc := range fb.users {
		users = append(users, acc.User)
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"users":     users,
		"total":     len(users),
		"page":      page,
		"page_size": pageSize,
	})
}

func (fb *FakeBackend) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if _, ok := fb.bearer(r); !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid token"})
		return
	}
	pending, applied := 0, 0
	for _, o := range fb.orders {
		if o.Status == models.OrderStatusApplied {
			applied++
		} else {
			pending++
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data": backend.Dashboard{
			Stats: models.DashboardStats{
				TotalJobs:     len(fb.jobs),
				PendingCount:  pending,
				AppliedCount:  applied,
				TotalSpending: "0",
			},
		},
	})
}

func (fb *FakeBackend) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad multipart body"})
		return
	}
	field := "image"
	if strings.HasSuffix(r.URL.Path, "/cv") {
		field = "cv"
	}
	file, header, err := r.FormFile(field)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "missing file field: " + field})
		return
	}
	file.Close()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"url":     "https://cdn.test/" + header.Filename,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
