package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles. Stored as plain strings and embedded into access-token claims.
const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID                uuid.UUID  `json:"id" db:"user_id"`                                          // Primary key
	Email                 string     `json:"email" db:"email"`                                         // Unique email, compared case-insensitively
	PasswordHash          string     `json:"-" db:"password_hash"`                                     // Salted and peppered digest
	FirstName             string     `json:"first_name" db:"first_name"`                               // First name
	LastName              string     `json:"last_name" db:"last_name"`                                 // Last name
	Role                  string     `json:"role" db:"role"`                                           // RoleUser or RoleAdmin
	IsActive              bool       `json:"is_active" db:"is_active"`                                 // Deactivated accounts cannot log in
	IsEmailVerified       bool       `json:"is_email_verified" db:"is_email_verified"`                 // Set after OTP verification
	OtpCode               *string    `json:"-" db:"otp_code"`                                          // Pending verification/reset code
	OtpExpiresAt          *time.Time `json:"-" db:"otp_expires_at"`                                    // Set together with OtpCode
	RefreshToken          *string    `json:"-" db:"refresh_token"`                                     // Current session refresh token
	RefreshTokenExpiresAt *time.Time `json:"-" db:"refresh_token_expires_at"`                          // Refresh token expiry
	CreatedAt             time.Time  `json:"created_at" db:"created_at"`                               // Creation timestamp
	UpdatedAt             time.Time  `json:"updated_at" db:"updated_at"`                               // Last update timestamp
}
