package services

import (
	"context"

	"jobdeck_gateway/internal/backend"
	"jobdeck_gateway/internal/models"
)

// OrderService exposes the application-order board used by admins to
// track and flip submission statuses.
type OrderService interface {
	Orders(ctx context.Context, token string) ([]models.Order, error)
	SetStatus(ctx context.Context, token string, orderID int64, status models.OrderStatus) error
}

type OrderServiceImpl struct {
	client *backend.Client
}

func NewOrderService(client *backend.Client) OrderService {
	return &OrderServiceImpl{client: client}
}

func (s *OrderServiceImpl) Orders(ctx context.Context, token string) ([]models.Order, error) {
	orders, err := s.client.Orders(ctx, token)
	if err != nil {
		return nil, mapUpstream(err, "orders")
	}
	return orders, nil
}

func (s *OrderServiceImpl) SetStatus(ctx context.Context, token string, orderID int64, status models.OrderStatus) error {
	if err := s.client.SetOrderStatus(ctx, token, orderID, status); err != nil {
		return mapUpstream(err, "orders")
	}
	return nil
}
