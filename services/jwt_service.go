package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const jwtIssuer = "shakya-gallery"

// AdminJWTClaims represents the JWT claims for admin tokens
type AdminJWTClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService handles JWT token generation and verification
type JWTService struct {
	secretKey string
	expiry    time.Duration
}

var jwtService *JWTService

// InitJWTService initializes the JWT service with a secret key
func InitJWTService(secretKey string, expiry time.Duration) error {
	if secretKey == "" {
		return errors.New("JWT secret key cannot be empty")
	}
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	jwtService = &JWTService{secretKey: secretKey, expiry: expiry}
	return nil
}

// GetJWTService returns the initialized JWT service
func GetJWTService() *JWTService {
	return jwtService
}

// GenerateAdminJWT creates a signed token for the admin identified by email
func (j *JWTService) GenerateAdminJWT(email string) (string, time.Time, error) {
	if email == "" {
		return "", time.Time{}, errors.New("email cannot be empty")
	}

	now := time.Now()
	expiresAt := now.Add(j.expiry)

	claims := AdminJWTClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    jwtIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// VerifyAdminJWT verifies and parses a JWT token
// Returns claims if valid, error if invalid or expired
func (j *JWTService) VerifyAdminJWT(tokenString string) (*AdminJWTClaims, error) {
	claims := &AdminJWTClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	}, jwt.WithIssuer(jwtIssuer))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.Email == "" {
		return nil, errors.New("token missing required claims")
	}

	return claims, nil
}
