// setup_test.go - Shared fixtures for the API handler tests
// Each test gets a throwaway SQLite file and a router wired exactly
// like main.go.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"healthcare-backend/auth"
	"healthcare-backend/database"
	"healthcare-backend/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// setupTestAPI builds a fresh database and a fully wired router.
// The database file is removed up front so reruns start clean.
func setupTestAPI(t *testing.T, dbFile string) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	_ = os.Remove(dbFile) // Remove old test DB if exists
	db, err := database.Connect(dbFile)
	if err != nil {
		t.Fatalf("connect test db: %v", err)
	}
	t.Cleanup(func() { _ = os.Remove(dbFile) })

	tokens := auth.NewTokenService("test-secret", time.Hour)

	r := gin.New()
	authHandler := NewAuthHandler(db, tokens)
	prescriptions := NewPrescriptionHandler(db)
	admissions := NewAdmissionHandler(db)

	r.POST("/api/auth/signup", authHandler.Signup)
	r.POST("/api/auth/login", authHandler.Login)

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(tokens))
	{
		api.GET("/prescriptions", prescriptions.List)
		api.POST("/prescriptions", prescriptions.Create)
		api.GET("/admissions", admissions.List)
		api.POST("/admissions", admissions.Create)
	}

	return r, db
}

// performRequest serves one JSON request and records the response.
// An empty token leaves the Authorization header unset.
func performRequest(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// signupUser registers a user through the API and returns the token
// from the signup response.
func signupUser(t *testing.T, router *gin.Engine, name, email, password string) string {
	t.Helper()
	w := performRequest(router, "POST", "/api/auth/signup", gin.H{
		"name":     name,
		"email":    email,
		"password": password,
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("signup for %s failed: %d %s", email, w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Fatalf("signup for %s returned no token: %s", email, w.Body.String())
	}
	return resp.Token
}
