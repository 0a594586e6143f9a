// admission.go - Handles hospital admission creation and listing

package handlers

import (
	"net/http"
	"time"

	"healthcare-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdmissionInput struct { // Struct for admission creation input
	RoomNumber    string `json:"room_number" binding:"required"`
	AdmissionDate string `json:"admission_date"` // ISO-8601, optional
	DischargeDate string `json:"discharge_date"` // ISO-8601, optional
	Status        string `json:"status" binding:"required"`
	Notes         string `json:"notes"` // Free-text notes (optional)
}

// AdmissionHandler owns the admission endpoints.
type AdmissionHandler struct {
	db *gorm.DB
}

func NewAdmissionHandler(db *gorm.DB) *AdmissionHandler {
	return &AdmissionHandler{db: db}
}

// List returns the current user's admissions in creation order.
// Absent admission/discharge dates serialize as null.
func (h *AdmissionHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
		return
	}

	admissions := []models.Admission{} // Empty list serializes as [], not null
	if err := h.db.Where("user_id = ?", userID).Order("id").Find(&admissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	c.JSON(http.StatusOK, admissions)
}

// Create records a new admission owned by the current user.
func (h *AdmissionHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
		return
	}

	var input AdmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admissionDate, err := parseDate(input.AdmissionDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid admission_date"})
		return
	}
	dischargeDate, err := parseDate(input.DischargeDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid discharge_date"})
		return
	}

	admission := models.Admission{
		UserID:        userID, // Owner from the token, not the payload
		RoomNumber:    input.RoomNumber,
		AdmissionDate: admissionDate,
		DischargeDate: dischargeDate,
		Status:        input.Status,
		Notes:         input.Notes,
	}
	if err := h.db.Create(&admission).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":          admission.ID,
		"room_number": admission.RoomNumber,
		"status":      admission.Status,
	})
}

// dateFormats are the accepted ISO-8601 shapes: full RFC3339, a
// zone-less datetime, and a bare date.
var dateFormats = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// parseDate parses an optional ISO-8601 timestamp. An empty string
// means the field was omitted and yields nil.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	var lastErr error
	for _, format := range dateFormats {
		if t, err := time.Parse(format, value); err == nil {
			return &t, nil
		} else {
			lastErr = err
		}
	}
	return nil, lastErr
}
