package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account. A user has a password hash, a Google identity, or both.
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash *string   `gorm:"size:255" json:"-"` // nil for Google-only accounts
	GoogleID     *string   `gorm:"uniqueIndex;size:255" json:"-"`
	Name         string    `gorm:"size:255" json:"name"`
}

// BeforeCreate assigns the primary key.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	newID(&u.ID)
	return nil
}

// HasPassword reports whether the account can log in with a password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}
