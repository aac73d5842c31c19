package models

import "time"

// Meal sessions a menu item can belong to.
const (
	CategoryMorning = "morning"
	CategoryLunch   = "lunch"
	CategoryDinner  = "dinner"
)

func ValidCategory(category string) bool {
	switch category {
	case CategoryMorning, CategoryLunch, CategoryDinner:
		return true
	}
	return false
}

// FoodItem is a published menu entry. Items are append-only: there is no
// update or delete endpoint.
type FoodItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Category  string    `gorm:"size:80;not null" json:"category"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	ImagePath string    `gorm:"size:255" json:"image_path"`
	CreatedAt time.Time `json:"created_at"`
}
