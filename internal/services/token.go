package services

import (
	"context"
	"time"

	"github.com/kemet-travel/kemet-api/internal/logger"
	"github.com/kemet-travel/kemet-api/internal/models"
)

// TokenIssuer mints access and refresh tokens. Implemented by jwt.JWT.
type TokenIssuer interface {
	GenerateAccessToken(ctx context.Context, user *models.UserDB) (string, error)
	GenerateRefreshToken() (string, error)
}

// TokenService manages the refresh-token lifecycle against the user store
// and delegates token minting to the issuer. It implements TokenProvider.
type TokenService struct {
	issuer     TokenIssuer
	reader     UserReader
	writer     UserWriter
	refreshTTL time.Duration
}

// NewTokenService creates a new TokenService instance.
func NewTokenService(issuer TokenIssuer, reader UserReader, writer UserWriter, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		issuer:     issuer,
		reader:     reader,
		writer:     writer,
		refreshTTL: refreshTTL,
	}
}

// GenerateAccessToken mints a signed access token for the user.
func (svc *TokenService) GenerateAccessToken(ctx context.Context, user *models.UserDB) (string, error) {
	return svc.issuer.GenerateAccessToken(ctx, user)
}

// GenerateRefreshToken mints an opaque refresh token.
func (svc *TokenService) GenerateRefreshToken() (string, error) {
	return svc.issuer.GenerateRefreshToken()
}

// SaveRefreshToken persists the token on the user row with a fresh expiry,
// overwriting any previous token. One active session per user.
func (svc *TokenService) SaveRefreshToken(ctx context.Context, user *models.UserDB, refreshToken string) error {
	expiry := time.Now().Add(svc.refreshTTL)
	user.RefreshToken = &refreshToken
	user.RefreshTokenExpiresAt = &expiry

	if err := svc.writer.Update(ctx, user); err != nil {
		logger.Log.Errorw("failed to save refresh token", "user_id", user.UserID, "err", err)
		return err
	}
	return nil
}

// ValidateRefreshToken reports whether the store's current, unexpired record
// for the token belongs to the given user.
func (svc *TokenService) ValidateRefreshToken(ctx context.Context, user *models.UserDB, refreshToken string) (bool, error) {
	if user == nil || refreshToken == "" {
		return false, nil
	}

	stored, err := svc.reader.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		logger.Log.Errorw("failed to look up refresh token", "err", err)
		return false, err
	}
	return stored != nil && stored.UserID == user.UserID, nil
}

// RevokeRefreshToken clears the stored token and its expiry.
func (svc *TokenService) RevokeRefreshToken(ctx context.Context, user *models.UserDB) error {
	user.RefreshToken = nil
	user.RefreshTokenExpiresAt = nil

	if err := svc.writer.Update(ctx, user); err != nil {
		logger.Log.Errorw("failed to revoke refresh token", "user_id", user.UserID, "err", err)
		return err
	}
	return nil
}
