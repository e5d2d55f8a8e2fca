package models

import (
	"time"

	"gorm.io/gorm"
)

// Cart is one (user, product) row of unpurchased intent. The add path
// keeps at most one row per pair; there is no database constraint.
type Cart struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int       `gorm:"not null;default:0" json:"quantity"`
	AddedAt   time.Time `gorm:"autoCreateTime" json:"added_at"`
}

// ListCart returns a user's cart rows with products preloaded.
func ListCart(db *gorm.DB, userID uint) ([]Cart, error) {
	var items []Cart
	err := db.Preload("Product").Preload("Product.Images").
		Where("user_id = ?", userID).
		Order("added_at").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// CartTotal sums discount price times quantity over a user's cart.
// An empty cart totals 0.
func CartTotal(db *gorm.DB, userID uint) (int64, error) {
	items, err := ListCart(db, userID)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		total += item.Product.DiscountPrice() * int64(item.Quantity)
	}
	return total, nil
}
