// prescription.go - Defines the Prescription model for the database

package models

import "time"

// Prescription belongs to exactly one user; records are append-only
// from the API's point of view (no update or delete endpoints).
type Prescription struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"-"`   // Foreign key to users table, never exposed
	User           User      `gorm:"foreignKey:UserID" json:"-"` // Foreign key constraint
	MedicationName string    `gorm:"not null" json:"medication_name"`
	Dosage         string    `json:"dosage"`
	Frequency      string    `json:"frequency"`
	Duration       string    `json:"duration"`
	Status         string    `gorm:"default:'active'" json:"status"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
}
