// Package entity defines the domain models for the products feature.
package entity

// Product represents an item in the product catalog. The identifier is
// assigned by the store on creation; no other entity references it.
type Product struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:255"`
	Description string  `gorm:"size:1000"`
	Price       float64
}
