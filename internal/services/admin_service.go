package services

import (
	"context"

	"jobdeck_gateway/internal/backend"
)

// AdminService backs the admin console screens.
type AdminService interface {
	Users(ctx context.Context, token string, page, pageSize int) (backend.UsersPage, error)
	Dashboard(ctx context.Context, token string) (backend.Dashboard, error)
}

type AdminServiceImpl struct {
	client *backend.Client
}

func NewAdminService(client *backend.Client) AdminService {
	return &AdminServiceImpl{client: client}
}

func (s *AdminServiceImpl) Users(ctx context.Context, token string, page, pageSize int) (backend.UsersPage, error) {
	users, err := s.client.Users(ctx, token, page, pageSize)
	if err != nil {
		return backend.UsersPage{}, mapUpstream(err, "admin")
	}
	return users, nil
}

func (s *AdminServiceImpl) Dashboard(ctx context.Context, token string) (backend.Dashboard, error) {
	dash, err := s.client.AdminDashboard(ctx, token)
	if err != nil {
		return backend.Dashboard{}, mapUpstream(err, "admin")
	}
	return dash, nil
}
