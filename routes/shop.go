package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/chirathr/ecommerce/controllers/product"
)

// SetupShopRoutes registers the public catalog endpoints.
func SetupShopRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/", productControllers.ListProducts(db))
	r.GET("/products/:id", productControllers.GetProduct(db))
	r.GET("/categories/", productControllers.ListCategories(db))
}
