package checkoutControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chirathr/ecommerce/middleware"
	"github.com/chirathr/ecommerce/models"
)

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInsufficientBalance = errors.New("insufficient wallet balance")

	// ErrConsistency means a precondition that passed the optimistic
	// check failed again inside the transaction: a concurrent checkout
	// raced us on stock or balance. The transaction rolls back and the
	// failure is surfaced as fatal; there is deliberately no retry.
	ErrConsistency = errors.New("checkout consistency violation")
)

// PlaceOrder converts a user's cart into an order: debit the wallet by
// the cart total, create the order and its line items, decrement stock
// per line and delete the cart rows, all inside one transaction.
func PlaceOrder(db *gorm.DB, userID uint) (*models.Order, error) {
	items, err := models.ListCart(db, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var total int64
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		total += item.Product.DiscountPrice() * int64(item.Quantity)
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return nil, err
	}
	if user.WalletBalance < total {
		return nil, ErrInsufficientBalance
	}

	var order models.Order
	err = db.Transaction(func(tx *gorm.DB) error {
		debited, err := models.ReduceWalletBalance(tx, userID, total)
		if err != nil {
			return err
		}
		if !debited {
			return ErrConsistency
		}

		order = models.Order{
			Reference: uuid.NewString(),
			UserID:    userID,
			Amount:    total,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range items {
			reduced, err := models.ReduceStock(tx, item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if !reduced {
				return ErrConsistency
			}

			productID := item.ProductID
			line := models.OrderList{
				OrderID:   order.ID,
				ProductID: &productID,
				Quantity:  item.Quantity,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
			order.Items = append(order.Items, line)

			if err := tx.Delete(&models.Cart{}, item.ID).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// GET /checkout/
// Shows the cart, the wallet balance and the total; an empty cart
// redirects back to the cart view.
func Show(db *gorm.DB) gin.HandlerFunc {
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
		if len(items) == 0 {
			c.Redirect(http.StatusSeeOther, "/cart/")
			return
		}

		var total int64
		for _, item := range items {
			if item.Product != nil {
				total += item.Product.DiscountPrice() * int64(item.Quantity)
			}
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items":          items,
			"total":          total,
			"wallet_balance": user.WalletBalance,
		})
	}
}

// POST /checkout/
func Checkout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		order, err := PlaceOrder(db, userID)
		switch {
		case errors.Is(err, ErrEmptyCart):
			c.Redirect(http.StatusSeeOther, "/cart/")
		case errors.Is(err, ErrInsufficientBalance):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "Insufficient wallet balance"})
		case errors.Is(err, ErrConsistency):
			log.Printf("checkout consistency violation for user %d", userID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed, no charge was made"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		default:
			c.JSON(http.StatusCreated, order)
		}
	}
}
