// Package entity defines the domain models for the clients feature.
package entity

// Client represents a customer contact record. Unlike User.Email, the email
// column carries no uniqueness constraint.
type Client struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"size:255"`
	Phone string `gorm:"size:50"`
	Email string `gorm:"size:255"`
}
