// auth.go - JWT authentication middleware
//
// Authentication flow:
// 1. Extract bearer token from the Authorization header
// 2. Verify signature and expiration via the token service
// 3. Store the verified user ID in the request context
//
// Protected handlers read the owner identity only from the context
// set here, never from the request payload.

package middleware

import (
	"errors"   // For sentinel error checks
	"net/http" // HTTP status codes
	"strings"  // Header parsing

	"healthcare-backend/auth" // Token verification

	"github.com/gin-gonic/gin" // Gin web framework
)

// AuthMiddleware returns a Gin middleware that rejects requests
// without a valid bearer token and binds the token's user ID to the
// context under "user_id".
func AuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// STEP 1: Extract Authorization header in "Bearer <token>" form
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		// STEP 2: Verify the token; any failure is terminal for the request
		userID, err := tokens.Verify(tokenStr)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				msg = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		// STEP 3: Bind the subject identity for downstream handlers
		c.Set("user_id", userID)
		c.Next()
	}
}
