package models

import (
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// AdminsPath is the tree path holding admin accounts.
const AdminsPath = "admins"

// MinPasswordLength is the shortest accepted admin password.
const MinPasswordLength = 6

// Admin is a panel account allowed to edit the menu.
type Admin struct {
	ID           string `json:"-"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    int64  `json:"updated_at"`
}

// NormalizeEmail lowercases and trims an email for lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CheckPassword reports whether password matches the stored hash.
func (a *Admin) CheckPassword(password string) bool {
	return CheckPasswordHash(password, a.PasswordHash)
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

var missingAdminHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("missing-admin"), bcrypt.DefaultCost)
	return hash
})

// RejectMissingAdmin spends the same bcrypt work as CheckPassword for an
// email with no account, then reports false.
func RejectMissingAdmin(password string) bool {
	_ = bcrypt.CompareHashAndPassword(missingAdminHash(), []byte(password))
	return false
}
