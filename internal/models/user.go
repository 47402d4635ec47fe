package models

import "time"

// User represents the user model in the database
type User struct {
	Base
	Username    string     `gorm:"uniqueIndex;size:255;not null" json:"username"`
	Password    string     `gorm:"not null" json:"-"`
	Surname     string     `json:"surname"`
	Prename     string     `json:"prename"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	IsAdmin     bool       `gorm:"default:false" json:"is_admin"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}
