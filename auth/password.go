// password.go - Password hashing and verification

package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a raw password with bcrypt. A fresh random salt
// is generated per call and encoded into the returned hash, so
// verification needs no separate salt storage.
func HashPassword(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether raw matches the stored bcrypt hash.
// A malformed stored hash simply yields false.
func CheckPassword(raw, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(raw)) == nil
}
