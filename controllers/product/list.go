package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chirathr/ecommerce/models"
)

const maxBanners = 3

// GET /
// Optional ?category=<name> filters by category name; an unknown name
// yields an empty product list, not an error. The banner carousel is
// only included on the unfiltered listing.
func ListProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryName := c.Query("category")

		query := db.Model(&models.Product{}).
			Preload("Category").
			Preload("Images")

		if categoryName != "" {
			query = query.
				Joins("JOIN product_categories ON product_categories.id = products.category_id").
				Where("product_categories.name = ?", categoryName)
		}

		var products []models.Product
		if err := query.Order("products.id").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		resp := gin.H{"products": products}

		if categoryName == "" {
			var banners []models.Image
			err := db.Where("type = ?", models.ImageTypeBanner).
				Order("name DESC").
				Limit(maxBanners).
				Find(&banners).Error
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch banners"})
				return
			}
			resp["banners"] = banners
		}

		c.JSON(http.StatusOK, resp)
	}
}

// GET /categories/
// Feeds the category list rendered in the navbar.
func ListCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.ProductCategory
		if err := db.Order("name").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
