// admission.go - Defines the hospital Admission model for the database

package models

import "time"

// Admission belongs to exactly one user. Admission and discharge
// times are optional and serialize as null when absent.
type Admission struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"not null;index" json:"-"`   // Foreign key to users table, never exposed
	User          User       `gorm:"foreignKey:UserID" json:"-"` // Foreign key constraint
	RoomNumber    string     `gorm:"not null" json:"room_number"`
	AdmissionDate *time.Time `json:"admission_date"`
	DischargeDate *time.Time `json:"discharge_date"`
	Status        string     `json:"status"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
}
