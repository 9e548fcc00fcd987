package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"salonpro/config"

	"github.com/golang-jwt/jwt"
)

// Principal roles embedded in issued tokens.
const (
	RoleBusiness = "business"
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// TokenTTL is how long issued tokens remain valid.
const TokenTTL = 24 * time.Hour

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "salonpro-dev-secret"
	}
	return []byte(secret)
}

// TokenClaims is the decoded view of an access token.
type TokenClaims struct {
	Subject string
	Email   string
	Role    string
}

// GenerateToken creates a signed JWT for the given subject (business,
// customer or admin ID) with its role claim. The token expires after TokenTTL.
func GenerateToken(subject, email, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"role":  role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractClaims validates a token string and returns its subject, email and
// role claims.
func ExtractClaims(tokenString string) (*TokenClaims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return nil, errors.New("token does not contain a valid 'role' claim")
	}
	email, _ := claims["email"].(string)

	return &TokenClaims{Subject: sub, Email: email, Role: role}, nil
}
