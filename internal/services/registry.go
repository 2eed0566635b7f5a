package services

import (
	"jobdeck_gateway/internal/backend"
	"jobdeck_gateway/internal/cache"
)

// ServiceContainer wires every service the handlers depend on.
type ServiceContainer struct {
	AuthService     AuthService
	CatalogService  CatalogService
	CheckoutService CheckoutService
	OrderService    OrderService
	ProfileService  ProfileService
	AdminService    AdminService
}

func NewServiceContainer(client *backend.Client, catalogCache *cache.Catalog) *ServiceContainer {
	return &ServiceContainer{
		AuthService:     NewAuthService(client),
		CatalogService:  NewCatalogService(client, catalogCache),
		CheckoutService: NewCheckoutService(client),
		OrderService:    NewOrderService(client),
		ProfileService:  NewProfileService(client),
		AdminService:    NewAdminService(client),
	}
}
