package services

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// AdminAuthService checks the single configured gallery administrator
type AdminAuthService struct {
	email        string
	passwordHash string
}

// NewAdminAuthService creates a new admin auth service
func NewAdminAuthService(email, passwordHash string) *AdminAuthService {
	return &AdminAuthService{
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: passwordHash,
	}
}

// Authenticate returns the canonical admin email when the credentials match
func (s *AdminAuthService) Authenticate(email, password string) (string, error) {
	if s.email == "" || s.passwordHash == "" {
		return "", ErrInvalidCredentials
	}
	given := strings.ToLower(strings.TrimSpace(email))
	emailOK := subtle.ConstantTimeCompare([]byte(given), []byte(s.email)) == 1
	passwordOK := VerifyPassword(s.passwordHash, password)
	if !emailOK || !passwordOK {
		return "", ErrInvalidCredentials
	}
	return s.email, nil
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func VerifyPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword checks if a password meets minimum requirements
// Minimum 8 characters
func ValidatePassword(password string) bool {
	return len(password) >= 8
}
