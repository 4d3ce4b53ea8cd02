package models

import "time"

// Product is a shop package (website, online shop, custom build) offered in the storefront.
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Images      []string  `gorm:"serializer:json" json:"images"`
	Features    []string  `gorm:"serializer:json" json:"features"`
	IsPopular   bool      `json:"isPopular"`
	IsPremium   bool      `json:"isPremium"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
