package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// Product prices are whole currency units. The discounted price is
// derived, never stored: price minus the integer-truncated percentage.
type Product struct {
	ID              uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string           `gorm:"not null" json:"name"`
	Description     string           `json:"description"`
	Price           int64            `gorm:"not null;default:0" json:"price"`
	DiscountPercent float64          `gorm:"default:0" json:"discount_percent"`
	Rating          *int             `json:"rating,omitempty"` // 0..5, nil when unrated
	Quantity        int              `gorm:"default:0" json:"quantity"`
	CategoryID      *uint            `json:"category_id,omitempty"`
	Category        *ProductCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Images          []Image          `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`

	// DiscountedPrice mirrors DiscountPrice for JSON responses.
	DiscountedPrice int64 `gorm:"-" json:"discount_price"`
}

// DiscountPrice returns price - floor(price * discount_percent / 100).
func (p *Product) DiscountPrice() int64 {
	return p.Price - int64(math.Floor(float64(p.Price)*p.DiscountPercent/100.0))
}

// FeaturedImage returns the first image marked featured, or nil.
// A product may carry several; display picks the first.
func (p *Product) FeaturedImage() *Image {
	for i := range p.Images {
		if p.Images[i].Type == ImageTypeFeatured {
			return &p.Images[i]
		}
	}
	return nil
}

// AfterFind fills the derived price field on every read.
func (p *Product) AfterFind(*gorm.DB) error {
	p.DiscountedPrice = p.DiscountPrice()
	return nil
}

// ReduceStock decrements a product's stock inside the given
// transaction. Like the wallet debit, the update is conditional on the
// stored quantity: it applies iff 0 < quantity <= stock, reported by
// the returned bool, and leaves the row untouched otherwise.
func ReduceStock(tx *gorm.DB, productID uint, quantity int) (bool, error) {
	if quantity <= 0 {
		return false, nil
	}

	result := tx.Model(&Product{}).
		Where("id = ? AND quantity >= ?", productID, quantity).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", quantity))
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}
