// prescription.go - Handles prescription creation and listing
//
// Every operation is scoped to the authenticated user: the owner ID
// comes from the verified token in the request context, never from
// the request body, so one user can't write or read records under
// another identity.

package handlers

import (
	"net/http"

	"healthcare-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PrescriptionInput struct { // Struct for prescription creation input
	MedicationName string `json:"medication_name" binding:"required"`
	Dosage         string `json:"dosage" binding:"required"`
	Frequency      string `json:"frequency" binding:"required"`
	Duration       string `json:"duration" binding:"required"`
	Notes          string `json:"notes"` // Free-text notes (optional)
}

// PrescriptionHandler owns the prescription endpoints.
type PrescriptionHandler struct {
	db *gorm.DB
}

func NewPrescriptionHandler(db *gorm.DB) *PrescriptionHandler {
	return &PrescriptionHandler{db: db}
}

// List returns the current user's prescriptions in creation order.
func (h *PrescriptionHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
		return
	}

	prescriptions := []models.Prescription{} // Empty list serializes as [], not null
	if err := h.db.Where("user_id = ?", userID).Order("id").Find(&prescriptions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	c.JSON(http.StatusOK, prescriptions)
}

// Create records a new prescription owned by the current user.
func (h *PrescriptionHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
		return
	}

	var input PrescriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prescription := models.Prescription{
		UserID:         userID, // Owner from the token, not the payload
		MedicationName: input.MedicationName,
		Dosage:         input.Dosage,
		Frequency:      input.Frequency,
		Duration:       input.Duration,
		Status:         "active",
		Notes:          input.Notes,
	}
	if err := h.db.Create(&prescription).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":              prescription.ID,
		"medication_name": prescription.MedicationName,
		"status":          prescription.Status,
	})
}

// currentUserID reads the user ID bound by the auth middleware.
func currentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
