package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kemet-travel/kemet-api/internal/models"
)

func TestUserRepository_SaveAndGetByEmail(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	saved, err := writeRepo.Save(ctx, &models.UserDB{
		Email:        "Jane@Example.com",
		PasswordHash: "digest",
		FirstName:    "Jane",
		LastName:     "Doe",
		Role:         models.RoleUser,
		IsActive:     true,
	})
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.UserID)

	// Lookup is case-insensitive.
	got, err := readRepo.GetByEmail(ctx, "jane@example.COM")
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, saved.UserID, got.UserID)
	assert.Equal(t, "Jane@Example.com", got.Email)

	missing, err := readRepo.GetByEmail(ctx, "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_GetByID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	saved, err := writeRepo.Save(ctx, &models.UserDB{
		Email:        "jane@example.com",
		PasswordHash: "digest",
		Role:         models.RoleUser,
		IsActive:     true,
	})
	assert.NoError(t, err)

	got, err := readRepo.GetByID(ctx, saved.UserID)
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, saved.Email, got.Email)

	missing, err := readRepo.GetByID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_GetByRefreshToken(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	saved, err := writeRepo.Save(ctx, &models.UserDB{
		Email:        "jane@example.com",
		PasswordHash: "digest",
		Role:         models.RoleUser,
		IsActive:     true,
	})
	assert.NoError(t, err)

	token := "active-session-token"
	expiry := time.Now().Add(time.Hour)
	saved.RefreshToken = &token
	saved.RefreshTokenExpiresAt = &expiry
	assert.NoError(t, writeRepo.Update(ctx, saved))

	got, err := readRepo.GetByRefreshToken(ctx, token)
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, saved.UserID, got.UserID)

	// Expired sessions never match.
	stale := time.Now().Add(-time.Hour)
	saved.RefreshTokenExpiresAt = &stale
	assert.NoError(t, writeRepo.Update(ctx, saved))

	got, err = readRepo.GetByRefreshToken(ctx, token)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepository_UpdateRoundTrip(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	saved, err := writeRepo.Save(ctx, &models.UserDB{
		Email:        "jane@example.com",
		PasswordHash: "digest",
		Role:         models.RoleUser,
		IsActive:     true,
	})
	assert.NoError(t, err)

	code := "123456"
	codeExpiry := time.Now().Add(10 * time.Minute)
	saved.Role = models.RoleAdmin
	saved.IsEmailVerified = true
	saved.OtpCode = &code
	saved.OtpExpiresAt = &codeExpiry
	assert.NoError(t, writeRepo.Update(ctx, saved))

	got, err := readRepo.GetByID(ctx, saved.UserID)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, got.Role)
	assert.True(t, got.IsEmailVerified)
	assert.NotNil(t, got.OtpCode)
	assert.Equal(t, code, *got.OtpCode)

	// Clearing the nullable fields persists too.
	saved.OtpCode = nil
	saved.OtpExpiresAt = nil
	assert.NoError(t, writeRepo.Update(ctx, saved))

	got, err = readRepo.GetByID(ctx, saved.UserID)
	assert.NoError(t, err)
	assert.Nil(t, got.OtpCode)
	assert.Nil(t, got.OtpExpiresAt)
}

func TestUserRepository_List(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, err := writeRepo.Save(ctx, &models.UserDB{
			Email:        email,
			PasswordHash: "digest",
			Role:         models.RoleUser,
			IsActive:     true,
		})
		assert.NoError(t, err)
	}

	users, err := readRepo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, users, 3)
}
