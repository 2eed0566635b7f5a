package routes

import (
	"jobdeck_gateway/internal/backend"
	"jobdeck_gateway/internal/handlers"
	"jobdeck_gateway/internal/middleware"
	"jobdeck_gateway/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every screen's route group. The guard splits the
// surface three ways: public, any signed-in user, and admin only.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	client *backend.Client,
) {
	public := ginRouter.Group("/")
	{
		appHandlers.AuthHandler.RegisterRoutes(public)
		appHandlers.JobsHandler.RegisterPublic(public)
	}

	user := ginRouter.Group("/")
	user.Use(middleware.Guard(client))
	{
		appHandlers.JobsHandler.RegisterUser(user)
		appHandlers.CartHandler.RegisterRoutes(user)
		appHandlers.CheckoutHandler.RegisterRoutes(user)
		appHandlers.ProfileHandler.RegisterUser(user)
	}

	admin := ginRouter.Group("/")
	admin.Use(middleware.Guard(client, models.RoleAdmin))
	{
		appHandlers.OrdersHandler.RegisterRoutes(admin)
		appHandlers.AdminHandler.RegisterRoutes(admin)
		appHandlers.ProfileHandler.RegisterAdmin(admin)
	}
}
