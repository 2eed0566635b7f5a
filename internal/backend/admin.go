package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"jobdeck_gateway/internal/models"
)

// UsersPage is one page of the admin user listing.
type UsersPage struct {
	Users    []models.User `json:"users"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

type usersResponse struct {
	Success bool `json:"success"`
	UsersPage
	Err string `json:"error"`
}

// Dashboard is the aggregate payload of GET /admin/dashboard.
type Dashboard struct {
	Stats    models.DashboardStats `json:"stats"`
	Jobs     []models.PurchasedJob `json:"jobs"`
	Payments []models.Payment      `json:"payments"`
}

type dashboardResponse struct {
	Success bool      `json:"success"`
	Data    Dashboard `json:"data"`
	Err     string    `json:"error"`
}

// Users fetches one page of the user listing.
func (c *Client) Users(ctx context.Context, token string, page, pageSize int) (UsersPage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("page_size", strconv.Itoa(pageSize))

	var resp usersResponse
	if err := c.doJSON(ctx, http.MethodGet, "/users?"+params.Encode(), token, nil, &resp); err != nil {
		return UsersPage{}, err
	}
	if !resp.Success {
		return UsersPage{}, &APIError{Status: http.StatusBadGateway, Message: resp.Err}
	}
	return resp.UsersPage, nil
}

// AdminDashboard fetches the stats block plus recent jobs and payments.
func (c *Client) AdminDashboard(ctx context.Context, token string) (Dashboard, error) {
	var resp dashboardResponse
	if err := c.doJSON(ctx, http.MethodGet, "/admin/dashboard", token, nil, &resp); err != nil {
		return Dashboard{}, err
	}
	if !resp.Success {
		return Dashboard{}, &APIError{Status: http.StatusBadGateway, Message: resp.Err}
	}
	return resp.Data, nil
}
