package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chirathr/ecommerce/config"
	cartControllers "github.com/chirathr/ecommerce/controllers/cart"
	checkoutControllers "github.com/chirathr/ecommerce/controllers/checkout"
	orderControllers "github.com/chirathr/ecommerce/controllers/order"
	userControllers "github.com/chirathr/ecommerce/controllers/user"
	"github.com/chirathr/ecommerce/middleware"
)

// SetupUserRoutes registers every JWT-protected endpoint: profile,
// cart mutation, checkout and order history.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authed := r.Group("/")
	authed.Use(middleware.RequireAuth(cfg.JWTSecret))
	{
		authed.GET("/user/", userControllers.GetProfile(db))

		authed.GET("/cart/", cartControllers.GetCart(db))
		authed.POST("/cart/add/", cartControllers.Add(db))
		authed.POST("/cart/delete/", cartControllers.Remove(db))

		authed.GET("/checkout/", checkoutControllers.Show(db))
		authed.POST("/checkout/", checkoutControllers.Checkout(db))

		authed.GET("/order/", orderControllers.ListOrders(db))
		authed.GET("/order/:id", orderControllers.GetOrder(db))
	}
}
