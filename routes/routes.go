package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chirathr/ecommerce/config"
)

// SetupRoutes is the single entry point that wires up the public shop,
// auth, user and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Public catalog browsing
	SetupShopRoutes(r, db)

	// Registration and login
	SetupAuthRoutes(r, db, cfg)

	// JWT-protected cart, checkout and order history
	SetupUserRoutes(r, db, cfg)

	// API-key-protected admin surface
	SetupAdminRoutes(r, db, cfg)
}
