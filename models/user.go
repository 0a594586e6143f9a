// user.go - Defines the User model for the database

package models

import "time"

type User struct { // User struct represents a patient account
	ID        uint      `gorm:"primaryKey" json:"id"`          // Unique user ID (primary key)
	Name      string    `gorm:"not null" json:"name"`          // Full name
	Email     string    `gorm:"unique;not null" json:"email"`  // Email (must be unique, cannot be null)
	Password  string    `gorm:"not null" json:"-"`             // Bcrypt password hash, never serialized
	Phone     string    `json:"phone,omitempty"`               // Phone number (optional)
	CreatedAt time.Time `json:"created_at"`                    // When the account was created
}
