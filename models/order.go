package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

type Order struct {
	ID           uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderRef     string        `gorm:"uniqueIndex" json:"order_ref"`
	Date         time.Time     `gorm:"not null" json:"date"`
	Total        float64       `gorm:"not null" json:"total"`
	UserID       uint          `gorm:"index;not null" json:"user_id"`
	User         *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	OrderDetails []OrderDetail `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_details,omitempty"`
	Status       OrderStatus   `gorm:"type:VARCHAR(20);default:'PENDING'" json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
}

// OrderDetail snapshots one cart line at checkout time. UnitPrice and
// Subtotal are frozen copies; they never track later product price changes.
type OrderDetail struct {
	ID        uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint     `gorm:"index" json:"-"`
	ProductID uint     `json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int      `gorm:"not null" json:"quantity"`
	UnitPrice float64  `gorm:"not null" json:"unit_price"`
	Subtotal  float64  `json:"subtotal"`
}
