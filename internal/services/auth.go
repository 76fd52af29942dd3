package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kemet-travel/kemet-api/internal/logger"
	"github.com/kemet-travel/kemet-api/internal/models"
	"github.com/kemet-travel/kemet-api/internal/otp"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByRefreshToken(ctx context.Context, refreshToken string) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) (*models.UserDB, error)
	Update(ctx context.Context, user *models.UserDB) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, storedHash string) bool
}

// OtpGenerator produces one-time codes.
type OtpGenerator interface {
	Generate() (string, error)
}

// OtpEmailSender delivers one-time codes by email.
type OtpEmailSender interface {
	SendOtpEmail(ctx context.Context, to, code string) error
}

// TokenProvider issues access and refresh tokens and manages their lifecycle
// against the user store.
type TokenProvider interface {
	GenerateAccessToken(ctx context.Context, user *models.UserDB) (string, error)
	GenerateRefreshToken() (string, error)
	SaveRefreshToken(ctx context.Context, user *models.UserDB, refreshToken string) error
	ValidateRefreshToken(ctx context.Context, user *models.UserDB, refreshToken string) (bool, error)
	RevokeRefreshToken(ctx context.Context, user *models.UserDB) error
}

// AuthService orchestrates registration, login, email verification, password
// flows and refresh-token rotation. Business failures come back as
// nil-user/false results with a message; returned errors are infrastructure
// faults only.
type AuthService struct {
	reader UserReader
	writer UserWriter
	hasher PasswordHasher
	otpGen OtpGenerator
	mailer OtpEmailSender
	tokens TokenProvider
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	hasher PasswordHasher,
	otpGen OtpGenerator,
	mailer OtpEmailSender,
	tokens TokenProvider,
) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		hasher: hasher,
		otpGen: otpGen,
		mailer: mailer,
		tokens: tokens,
	}
}

// Register creates a new unverified user and mails the verification code.
// A failed email send does not roll back the created user; it is reported
// in the returned message instead.
func (svc *AuthService) Register(ctx context.Context, email, password, firstName, lastName, role string) (*models.UserDB, string, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, "", err
	}
	if existing != nil {
		return nil, "Email already exists", nil
	}

	code, err := svc.otpGen.Generate()
	if err != nil {
		logger.Log.Errorw("failed to generate otp", "err", err)
		return nil, "", err
	}

	hash, err := svc.hasher.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	if role != models.RoleAdmin {
		role = models.RoleUser
	}

	expiry := time.Now().Add(otp.TTL)
	user := &models.UserDB{
		Email:           email,
		PasswordHash:    hash,
		FirstName:       firstName,
		LastName:        lastName,
		Role:            role,
		IsActive:        true,
		IsEmailVerified: false,
		OtpCode:         &code,
		OtpExpiresAt:    &expiry,
	}

	created, err := svc.writer.Save(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	if err := svc.mailer.SendOtpEmail(ctx, email, code); err != nil {
		logger.Log.Errorw("failed to send verification email", "email", email, "err", err)
		return created, "User registered but failed to send verification email: " + err.Error(), nil
	}

	return created, "User registered successfully. Please check your email for verification code.", nil
}

// Login authenticates a user. The message does not distinguish between a
// missing user, an inactive account and a wrong password.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.UserDB, string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}

	if user == nil || !user.IsActive {
		return nil, "Invalid credentials", nil
	}

	if !user.IsEmailVerified {
		return nil, "Please verify your email address before logging in.", nil
	}

	if !svc.hasher.Verify(password, user.PasswordHash) {
		return nil, "Invalid credentials", nil
	}

	return user, "Login successful", nil
}

// VerifyEmail transitions an unverified user to verified when the code
// matches and has not expired. The code is cleared on success, so it is
// single-use.
func (svc *AuthService) VerifyEmail(ctx context.Context, email, code string) (bool, string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return false, "", err
	}
	if user == nil {
		return false, "User not found", nil
	}
	if user.IsEmailVerified {
		return false, "Email is already verified", nil
	}
	if user.OtpCode == nil || *user.OtpCode != code {
		return false, "Invalid verification code", nil
	}
	if user.OtpExpiresAt == nil || user.OtpExpiresAt.Before(time.Now()) {
		return false, "Verification code has expired", nil
	}

	user.IsEmailVerified = true
	user.OtpCode = nil
	user.OtpExpiresAt = nil

	if err := svc.writer.Update(ctx, user); err != nil {
		logger.Log.Errorw("failed to update user", "err", err)
		return false, "", err
	}
	return true, "Email verified successfully", nil
}

// forgotPasswordMessage is returned for both existing and unknown accounts
// so the endpoint cannot be used for account enumeration.
const forgotPasswordMessage = "If an account exists with this email, you will receive a reset code."

// ForgotPassword issues a reset code for an existing account. The caller
// gets the same generic message whether or not the account exists.
func (svc *AuthService) ForgotPassword(ctx context.Context, email string) (bool, string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return false, "", err
	}
	if user == nil {
		return false, forgotPasswordMessage, nil
	}

	code, err := svc.otpGen.Generate()
	if err != nil {
		logger.Log.Errorw("failed to generate otp", "err", err)
		return false, "", err
	}

	expiry := time.Now().Add(otp.TTL)
	user.OtpCode = &code
	user.OtpExpiresAt = &expiry

	if err := svc.writer.Update(ctx, user); err != nil {
		logger.Log.Errorw("failed to update user", "err", err)
		return false, "", err
	}

	// A failed send must not produce a different message: the reset code is
	// persisted either way, and naming the failure would confirm the account.
	if err := svc.mailer.SendOtpEmail(ctx, email, code); err != nil {
		logger.Log.Errorw("failed to send reset email", "email", email, "err", err)
		return false, forgotPasswordMessage, nil
	}

	return true, forgotPasswordMessage, nil
}

// ResetPassword sets a new password when the mailed reset code matches.
// Resetting via a mailed code proves mailbox ownership, so the account is
// marked email-verified as a side effect.
func (svc *AuthService) ResetPassword(ctx context.Context, email, code, newPassword string) (bool, string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return false, "", err
	}
	if user == nil {
		return false, "User not found", nil
	}
	if user.OtpCode == nil || *user.OtpCode != code {
		return false, "Invalid reset code", nil
	}
	if user.OtpExpiresAt == nil || user.OtpExpiresAt.Before(time.Now()) {
		return false, "Reset code has expired", nil
	}

	hash, err := svc.hasher.Hash(newPassword)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return false, "", err
	}

	user.PasswordHash = hash
	user.OtpCode = nil
	user.OtpExpiresAt = nil
	user.IsEmailVerified = true

	if err := svc.writer.Update(ctx, user); err != nil {
		logger.Log.Errorw("failed to update user", "err", err)
		return false, "", err
	}
	return true, "Password has been reset successfully.", nil
}

// ChangePassword replaces the password of an authenticated user after
// re-verifying the current one.
func (svc *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) (bool, string, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return false, "", err
	}
	if user == nil {
		return false, "User not found", nil
	}
	if !svc.hasher.Verify(currentPassword, user.PasswordHash) {
		return false, "Current password is incorrect", nil
	}

	hash, err := svc.hasher.Hash(newPassword)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return false, "", err
	}

	user.PasswordHash = hash
	if err := svc.writer.Update(ctx, user); err != nil {
		logger.Log.Errorw("failed to update user", "err", err)
		return false, "", err
	}
	return true, "Password changed successfully", nil
}

// ResendOtp reissues the verification code for a not-yet-verified account.
func (svc *AuthService) ResendOtp(ctx context.Context, email string) (bool, string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return false, "", err
	}
	if user == nil {
		return false, "User not found", nil
	}
	if user.IsEmailVerified {
		return false, "Email is already verified", nil
	}

	code, err := svc.otpGen.Generate()
	if err != nil {
		logger.Log.Errorw("failed to generate otp", "err", err)
		return false, "", err
	}

	expiry := time.Now().Add(otp.TTL)
	user.OtpCode = &code
	user.OtpExpiresAt = &expiry

	if err := svc.writer.Update(ctx, user); err != nil {
		logger.Log.Errorw("failed to update user", "err", err)
		return false, "", err
	}

	if err := svc.mailer.SendOtpEmail(ctx, email, code); err != nil {
		logger.Log.Errorw("failed to send verification email", "email", email, "err", err)
		return false, "Verification code generated, but failed to send email: " + err.Error(), nil
	}

	return true, "New verification code sent to your email.", nil
}

// Refresh exchanges a refresh token for a new access/refresh pair. Refresh
// tokens rotate on use: saving the new token overwrites the presented one,
// so replaying it fails.
func (svc *AuthService) Refresh(ctx context.Context, refreshToken string) (string, string, string, error) {
	user, err := svc.reader.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		logger.Log.Errorw("failed to look up refresh token", "err", err)
		return "", "", "", err
	}
	if user == nil {
		return "", "", "Invalid refresh token", nil
	}

	valid, err := svc.tokens.ValidateRefreshToken(ctx, user, refreshToken)
	if err != nil {
		logger.Log.Errorw("failed to validate refresh token", "err", err)
		return "", "", "", err
	}
	if !valid {
		return "", "", "Invalid refresh token", nil
	}

	accessToken, err := svc.tokens.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return "", "", "", err
	}

	newRefreshToken, err := svc.tokens.GenerateRefreshToken()
	if err != nil {
		logger.Log.Errorw("failed to generate refresh token", "err", err)
		return "", "", "", err
	}

	if err := svc.tokens.SaveRefreshToken(ctx, user, newRefreshToken); err != nil {
		logger.Log.Errorw("failed to save refresh token", "err", err)
		return "", "", "", err
	}

	return accessToken, newRefreshToken, "Token refreshed successfully", nil
}

// Logout revokes the session identified by the refresh token. Returns false
// when no active session holds that token.
func (svc *AuthService) Logout(ctx context.Context, refreshToken string) (bool, error) {
	user, err := svc.reader.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		logger.Log.Errorw("failed to look up refresh token", "err", err)
		return false, err
	}
	if user == nil {
		return false, nil
	}

	if err := svc.tokens.RevokeRefreshToken(ctx, user); err != nil {
		logger.Log.Errorw("failed to revoke refresh token", "err", err)
		return false, err
	}
	return true, nil
}

// ListUsers returns all registered users.
func (svc *AuthService) ListUsers(ctx context.Context) ([]models.UserDB, error) {
	return svc.reader.List(ctx)
}

// UpdateUserRole sets a user's role.
func (svc *AuthService) UpdateUserRole(ctx context.Context, userID uuid.UUID, role string) (bool, string, error) {
	if role != models.RoleUser && role != models.RoleAdmin {
		return false, "Invalid role", nil
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return false, "", err
	}
	if user == nil {
		return false, "User not found", nil
	}

	user.Role = role
	if err := svc.writer.Update(ctx, user); err != nil {
		logger.Log.Errorw("failed to update user", "err", err)
		return false, "", err
	}
	return true, "User role updated to " + role + " successfully", nil
}
