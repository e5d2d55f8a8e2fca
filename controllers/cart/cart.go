package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chirathr/ecommerce/middleware"
	"github.com/chirathr/ecommerce/models"
)

var (
	// ErrProductNotFound covers invalid ids, unknown products and
	// absent cart rows; handlers map it to HTTP 404.
	ErrProductNotFound = errors.New("product not found")
	// ErrCannotAdd is the business rejection: stock exhausted or the
	// cart row already sits at the product's stock.
	ErrCannotAdd = errors.New("cannot add to cart")
)

type ProductIDInput struct {
	Product string `json:"product" form:"product"`
}

// AddToCart creates a (user, product) cart row with quantity 1, or
// increments an existing row. The quantity is bounded by the product's
// stock; an add attempt at the bound is rejected, as is any add when
// stock is zero.
func AddToCart(db *gorm.DB, userID uint, productID uint) (*models.Cart, error) {
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if product.Quantity == 0 {
		return nil, ErrCannotAdd
	}

	var item models.Cart
	err := db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.Cart{UserID: userID, ProductID: productID, Quantity: 1}
		if err := db.Create(&item).Error; err != nil {
			return nil, err
		}
		return &item, nil
	case err != nil:
		return nil, err
	}

	if item.Quantity >= product.Quantity {
		return nil, ErrCannotAdd
	}

	item.Quantity++
	if err := db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveFromCart deletes the (user, product) cart row, reporting
// ErrProductNotFound when the product or the row does not exist.
func RemoveFromCart(db *gorm.DB, userID uint, productID uint) error {
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	result := db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.Cart{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// parseProductID reads the "product" body field. Anything missing or
// non-integer is treated as not-found, matching the remove/add paths.
func parseProductID(c *gin.Context) (uint, bool) {
	var input ProductIDInput
	if err := c.ShouldBind(&input); err != nil || input.Product == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(input.Product, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// POST /cart/add/
func Add(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		productID, ok := parseProductID(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		item, err := AddToCart(db, userID, productID)
		switch {
		case errors.Is(err, ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, ErrCannotAdd):
			c.JSON(http.StatusConflict, gin.H{"error": "Cannot add to cart"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		default:
			c.JSON(http.StatusOK, item)
		}
	}
}

// POST /cart/delete/
func Remove(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		productID, ok := parseProductID(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		err := RemoveFromCart(db, userID, productID)
		switch {
		case errors.Is(err, ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from cart"})
		default:
			c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
		}
	}
}

// GET /cart/
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		items, err := models.ListCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		var total int64
		for _, item := range items {
			if item.Product != nil {
				total += item.Product.DiscountPrice() * int64(item.Quantity)
			}
		}

		c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
	}
}
