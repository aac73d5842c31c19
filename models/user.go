package models

import "time"

// User mirrors the identity table the frontend logs in against. Role is
// derived, not stored: staff or superuser means admin, everyone else is a
// student.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"size:30;uniqueIndex;not null" json:"username"`
	Email       string    `gorm:"size:254;index" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	// No column default: gorm drops zero-valued fields that carry one from the
	// INSERT, so an account created inactive would come back active. Create
	// paths set the flag explicitly instead.
	IsActive    bool      `gorm:"not null" json:"is_active"`
	IsStaff     bool      `gorm:"not null;default:false" json:"is_staff"`
	IsSuperuser bool      `gorm:"not null;default:false" json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.IsStaff || u.IsSuperuser
}

func (u *User) Role() string {
	if u.IsAdmin() {
		return "admin"
	}
	return "student"
}
