package models

import (
	"gorm.io/gorm"
)

type Admin struct {
	gorm.Model
	FullName       string `gorm:"not null" json:"full_name"`
	EmailAddress   string `gorm:"unique;not null" json:"email_address"`
	PhoneNumber    string `gorm:"unique;not null" json:"phone_number"`
	PasswordHash   string `gorm:"not null" json:"-"` // never serialized
	RestaurantName string `gorm:"default:''" json:"restaurant_name,omitempty"`
}
