package backend

import (
	"context"
	"fmt"
	"net/http"

	"jobdeck_gateway/internal/models"
)

type ordersResponse struct {
	Success bool           `json:"success"`
	Orders  []models.Order `json:"orders"`
	Err     string         `json:"error"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Err     string `json:"error"`
}

// Orders lists purchase orders visible to the bearer.
func (c *Client) Orders(ctx context.Context, token string) ([]models.Order, error) {
	var resp ordersResponse
	if err := c.doJSON(ctx, http.MethodGet, "/orders", token, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &APIError{Status: http.StatusBadGateway, Message: resp.Err}
	}
	return resp.Orders, nil
}

// SetOrderStatus transitions one order, e.g. pending -> applied.
func (c *Client) SetOrderStatus(ctx context.Context, token string, orderID int64, status models.OrderStatus) error {
	body := map[string]string{"status": string(status)}
	var resp statusResponse
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/orders/%d/status", orderID), token, body, &resp)
	if err != nil {
		return err
	}
	if !resp.Success {
		return &APIError{Status: http.StatusBadGateway, Message: resp.Err}
	}
	return nil
}
