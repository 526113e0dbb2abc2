package models

import "time"

// CartItem is one shopping cart line: one row per (user, product) pair.
type CartItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"index:idx_cart_user_product,unique" json:"user_id"`
	ProductID uint      `gorm:"index:idx_cart_user_product,unique" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// Subtotal is quantity times the referenced product's current price.
// Zero when the product is not preloaded.
func (ci CartItem) Subtotal() float64 {
	if ci.Product == nil {
		return 0
	}
	return ci.Product.Price * float64(ci.Quantity)
}
