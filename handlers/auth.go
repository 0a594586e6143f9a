// auth.go - Handles user signup and login

package handlers

import (
	"errors"   // For gorm sentinel error checks
	"net/http" // HTTP status codes

	"healthcare-backend/auth"   // Password hashing and tokens
	"healthcare-backend/models" // User model

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM
)

type SignupInput struct { // Struct for signup input
	Name     string `json:"name" binding:"required"`        // Full name (required)
	Email    string `json:"email" binding:"required,email"` // Email (required, must be valid)
	Password string `json:"password" binding:"required"`    // Password (required)
	Phone    string `json:"phone"`                          // Phone number (optional)
}

type LoginInput struct { // Struct for login input
	Email    string `json:"email" binding:"required"`    // Email (required)
	Password string `json:"password" binding:"required"` // Password (required)
}

// AuthHandler owns the signup and login endpoints.
type AuthHandler struct {
	db     *gorm.DB
	tokens *auth.TokenService
}

func NewAuthHandler(db *gorm.DB, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{db: db, tokens: tokens}
}

// Signup registers a new user and returns a token plus the user's
// public fields. Reusing an existing email fails with 400 and
// leaves no new record.
func (h *AuthHandler) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Reject duplicate emails up front; the unique index is the backstop.
	var existing models.User
	err := h.db.Where("email = ?", input.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hash,
		Phone:    input.Phone,
	}
	if err := h.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": publicUser(user)})
}

// Login checks credentials and returns a fresh token. Unknown email
// and wrong password report the same error, so accounts can't be
// enumerated.
func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := h.db.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if !auth.CheckPassword(input.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": publicUser(user)})
}

// publicUser strips the user down to the fields returned to clients.
func publicUser(user models.User) gin.H {
	return gin.H{"id": user.ID, "name": user.Name, "email": user.Email}
}
