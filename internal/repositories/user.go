package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kemet-travel/kemet-api/internal/logger"
	"github.com/kemet-travel/kemet-api/internal/models"
)

const userColumns = `
	user_id, email, password_hash, first_name, last_name, role,
	is_active, is_email_verified, otp_code, otp_expires_at,
	refresh_token, refresh_token_expires_at, created_at, updated_at
`

// UserReadRepository provides read access to user records.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, compared
// case-insensitively. Returns nil without error when no user matches.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1) LIMIT 1`
	return r.getOne(ctx, query, email)
}

// GetByID returns the user with the given id, or nil when not found.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return r.getOne(ctx, query, userID)
}

// GetByRefreshToken returns the user holding the given refresh token.
// Expired tokens are filtered out at the query level, so a match implies an
// active session.
func (r *UserReadRepository) GetByRefreshToken(ctx context.Context, refreshToken string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE refresh_token = $1 AND refresh_token_expires_at > NOW()`
	return r.getOne(ctx, query, refreshToken)
}

// List returns all users ordered by creation time.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`

	var users []models.UserDB
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"rows", len(users),
		"error", err,
	)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, arg)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository provides write access to user records.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the stored record.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) (*models.UserDB, error) {
	query := `
		INSERT INTO users (
			user_id, email, password_hash, first_name, last_name, role,
			is_active, is_email_verified, otp_code, otp_expires_at,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING ` + userColumns

	if user.UserID == uuid.Nil {
		user.UserID = uuid.New()
	}

	var created models.UserDB
	err := r.db.GetContext(ctx, &created, query,
		user.UserID, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.Role, user.IsActive, user.IsEmailVerified, user.OtpCode, user.OtpExpiresAt,
	)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"user_id", user.UserID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update persists every mutable field of the user row, including the
// nullable OTP and refresh-token fields.
func (r *UserWriteRepository) Update(ctx context.Context, user *models.UserDB) error {
	query := `
		UPDATE users SET
			email = $2,
			password_hash = $3,
			first_name = $4,
			last_name = $5,
			role = $6,
			is_active = $7,
			is_email_verified = $8,
			otp_code = $9,
			otp_expires_at = $10,
			refresh_token = $11,
			refresh_token_expires_at = $12,
			updated_at = NOW()
		WHERE user_id = $1`

	_, err := r.db.ExecContext(ctx, query,
		user.UserID, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.Role, user.IsActive, user.IsEmailVerified, user.OtpCode, user.OtpExpiresAt,
		user.RefreshToken, user.RefreshTokenExpiresAt,
	)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"user_id", user.UserID,
		"error", err,
	)

	return err
}
