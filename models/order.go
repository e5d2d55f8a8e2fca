package models

import "time"

// Order is the immutable record of a completed checkout. Amount is the
// cart total at creation time; there are no cancellation, refund or
// edit transitions.
type Order struct {
	ID        uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Reference string      `gorm:"uniqueIndex;not null" json:"reference"`
	UserID    uint        `gorm:"not null;index" json:"user_id"`
	Amount    int64       `gorm:"not null" json:"amount"`
	Items     []OrderList `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderList is one line item. ProductID is nullable so order history
// survives product deletion.
type OrderList struct {
	ID        uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint     `gorm:"not null;index" json:"order_id"`
	ProductID *uint    `json:"product_id,omitempty"`
	Product   *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL" json:"product,omitempty"`
	Quantity  int      `gorm:"not null" json:"quantity"`
}
