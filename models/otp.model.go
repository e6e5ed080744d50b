package models

import (
	"time"
)

// OTP holds the single live one-time code for an email address. Upserts
// key on EmailAddress, so there is never more than one row per admin.
// No soft-delete column: rows are hard-deleted so a fresh upsert never
// collides with a tombstone on the unique index.
type OTP struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	EmailAddress string    `gorm:"size:100;uniqueIndex;not null" json:"email_address"`
	Code         string    `gorm:"size:6;not null" json:"code"`
	Verified     bool      `gorm:"default:false" json:"verified"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}
