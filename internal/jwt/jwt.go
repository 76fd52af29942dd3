package jwt

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/kemet-travel/kemet-api/internal/models"
)

// refreshTokenLength is the raw byte length of opaque refresh tokens.
const refreshTokenLength = 32

// Claims carried by an access token.
type Claims struct {
	Name      string `json:"name"`       // User email, mirrored into the name claim
	Email     string `json:"email"`      // User email
	Role      string `json:"role"`       // "User" or "Admin"
	FirstName string `json:"first_name"` // First name
	LastName  string `json:"last_name"`  // Last name
	jwt.RegisteredClaims
}

// UserID returns the subject claim parsed as a UUID.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// JWT mints and validates signed access tokens and generates opaque
// refresh tokens.
type JWT struct {
	SecretKey string        // Symmetric signing secret
	Issuer    string        // Fixed issuer claim
	Audience  string        // Fixed audience claim
	Exp       time.Duration // Access token lifetime
}

// New creates a new JWT instance
func New(secretKey, issuer, audience string, expiration time.Duration) *JWT {
	return &JWT{
		SecretKey: secretKey,
		Issuer:    issuer,
		Audience:  audience,
		Exp:       expiration,
	}
}

// GenerateAccessToken creates a signed access token carrying the user's
// identity and role claims.
func (j *JWT) GenerateAccessToken(ctx context.Context, user *models.UserDB) (string, error) {
	now := time.Now()
	claims := Claims{
		Name:      user.Email,
		Email:     user.Email,
		Role:      user.Role,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID.String(),
			Issuer:    j.Issuer,
			Audience:  jwt.ClaimStrings{j.Audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(j.Exp)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// ParseAccessToken validates the signature, issuer, audience and expiry of
// a token string and returns its claims.
func (j *JWT) ParseAccessToken(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	}, jwt.WithIssuer(j.Issuer), jwt.WithAudience(j.Audience))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// GenerateRefreshToken returns a cryptographically random opaque token.
// It carries no claims, it is only a lookup key against the user store.
func (j *JWT) GenerateRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
