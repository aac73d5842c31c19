package models

import "time"

// Feedback is a student's rating, optionally tied to a menu item. If the
// referenced item is ever removed the link is nulled out rather than
// cascading, so feedback history survives. StudentName is a snapshot of the
// submitter's username at creation time and is never rewritten.
type Feedback struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FoodItemID  *uint     `gorm:"index" json:"food_item_id"`
	FoodItem    *FoodItem `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	StudentName string    `gorm:"size:150;not null" json:"student_name"`
	Rating      int       `gorm:"not null" json:"rating"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}
