package handlers

import (
	"jobdeck_gateway/internal/services"
	"jobdeck_gateway/internal/validator"
)

// AppHandlers holds every handler the router registers.
type AppHandlers struct {
	AuthHandler     *AuthHandler
	JobsHandler     *JobsHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
	OrdersHandler   *OrdersHandler
	ProfileHandler  *ProfileHandler
	AdminHandler    *AdminHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		AuthHandler:     NewAuthHandler(base, sc.AuthService),
		JobsHandler:     NewJobsHandler(base, sc.CatalogService),
		CartHandler:     NewCartHandler(base, sc.CatalogService),
		CheckoutHandler: NewCheckoutHandler(base, sc.CheckoutService),
		OrdersHandler:   NewOrdersHandler(base, sc.OrderService),
		ProfileHandler:  NewProfileHandler(base, sc.ProfileService),
		AdminHandler:    NewAdminHandler(base, sc.AdminService),
	}
}
