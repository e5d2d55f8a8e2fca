package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chirathr/ecommerce/config"
	userControllers "github.com/chirathr/ecommerce/controllers/user"
)

// SetupAuthRoutes registers the public registration/login endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", userControllers.Register(db, cfg))
		authGroup.POST("/login", userControllers.Login(db, cfg))
	}
}
