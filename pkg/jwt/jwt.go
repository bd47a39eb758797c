package jwt

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("missing authorization token")
	ErrWrongType    = errors.New("wrong token type")
)

// Token types carried in the claims so a refresh token can never pass as an
// access token or vice versa
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims represents the JWT claims structure
type Claims struct {
	UserID       uuid.UUID `json:"user_id"`
	Username     string    `json:"username"`
	TokenType    string    `json:"token_type"`
	TokenVersion string    `json:"token_version"`
	jwt.RegisteredClaims
}

// GetSecretKey returns the JWT secret from environment or a default
func GetSecretKey() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your-super-secret-key-change-in-production"
	}
	return []byte(secret)
}

func accessTTL() time.Duration {
	if v := os.Getenv("JWT_ACCESS_TTL_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return 2 * time.Hour
}

func refreshTTL() time.Duration {
	if v := os.Getenv("JWT_REFRESH_TTL_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return 7 * 24 * time.Hour
}

func generate(userID uuid.UUID, username, tokenType, tokenVersion string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:       userID,
		Username:     username,
		TokenType:    tokenType,
		TokenVersion: tokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "go-erp-backoffice",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(GetSecretKey())
}

// GenerateTokenPair creates an access/refresh token pair for a user. Both
// carry the token version, so bumping it invalidates the pair at once.
func GenerateTokenPair(userID uuid.UUID, username, tokenVersion string) (access string, refresh string, err error) {
	access, err = generate(userID, username, TokenTypeAccess, tokenVersion, accessTTL())
	if err != nil {
		return "", "", err
	}
	refresh, err = generate(userID, username, TokenTypeRefresh, tokenVersion, refreshTTL())
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// GenerateAccessToken creates a fresh access token (refresh flow)
func GenerateAccessToken(userID uuid.UUID, username, tokenVersion string) (string, error) {
	return generate(userID, username, TokenTypeAccess, tokenVersion, accessTTL())
}

func parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return GetSecretKey(), nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// ValidateAccessToken parses a token and rejects anything but access tokens
func ValidateAccessToken(tokenString string) (*Claims, error) {
	claims, err := parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, ErrWrongType
	}
	return claims, nil
}

// ValidateRefreshToken parses a token and rejects anything but refresh tokens
func ValidateRefreshToken(tokenString string) (*Claims, error) {
	claims, err := parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeRefresh {
		return nil, ErrWrongType
	}
	return claims, nil
}
