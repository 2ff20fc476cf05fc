package models

import "time"

// User is the site owner's account. Accounts are created at registration
// and never updated or deleted afterwards; the email unique index is the
// final arbiter under concurrent registrations.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"size:50;uniqueIndex;not null"`
	Email     string `gorm:"size:100;uniqueIndex;not null"`
	Password  string `gorm:"size:100;not null"` // bcrypt hash, never the plaintext
	CreatedAt time.Time
	UpdatedAt time.Time
}
