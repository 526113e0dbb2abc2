package models

import "time"

type Product struct {
	ID               uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string            `gorm:"unique;not null" json:"name"`
	Alias            string            `gorm:"unique;not null" json:"alias"`
	Description      string            `json:"description"`
	Brand            string            `json:"brand"`
	Price            float64           `gorm:"not null" json:"price"`
	Stock            int               `json:"stock"`
	Enabled          bool              `json:"enabled"`
	CategoryID       *uint             `json:"category_id"`
	Category         *Category         `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	TechnicalDetails []TechnicalDetail `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"technical_details,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

type TechnicalDetail struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	Value     string `gorm:"not null" json:"value"`
	ProductID uint   `gorm:"index" json:"product_id"`
}
