package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chirathr/ecommerce/config"
	adminControllers "github.com/chirathr/ecommerce/controllers/admin"
	"github.com/chirathr/ecommerce/middleware"
)

// SetupAdminRoutes registers the API-key-protected catalog management
// endpoints.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAPIKey(cfg.AdminAPIKey))
	{
		admin.POST("/products", adminControllers.CreateProduct(db))
		admin.PUT("/products/:id", adminControllers.UpdateProduct(db))
		admin.DELETE("/products/:id", adminControllers.DeleteProduct(db))
		admin.POST("/products/:id/images", adminControllers.UploadImage(db, cfg.MediaRoot))

		admin.POST("/categories", adminControllers.CreateCategory(db))
		admin.GET("/banners", adminControllers.ListBanners(db))
	}
}
