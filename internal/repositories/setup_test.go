package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const testSchema = `
CREATE TABLE IF NOT EXISTS users (
	user_id UUID PRIMARY KEY,
	email VARCHAR(100) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	first_name VARCHAR(50) NOT NULL DEFAULT '',
	last_name VARCHAR(50) NOT NULL DEFAULT '',
	role VARCHAR(20) NOT NULL DEFAULT 'User',
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	is_email_verified BOOLEAN NOT NULL DEFAULT FALSE,
	otp_code VARCHAR(6),
	otp_expires_at TIMESTAMP,
	refresh_token TEXT,
	refresh_token_expires_at TIMESTAMP,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS trips (
	trip_id UUID PRIMARY KEY,
	user_id UUID REFERENCES users(user_id) ON DELETE CASCADE,
	title VARCHAR(200) NOT NULL,
	trip_type VARCHAR(20) NOT NULL DEFAULT '',
	start_date TIMESTAMP NOT NULL DEFAULT NOW(),
	end_date TIMESTAMP NOT NULL DEFAULT NOW(),
	duration_days INT NOT NULL DEFAULT 0,
	price DOUBLE PRECISION NOT NULL DEFAULT 0,
	description TEXT NOT NULL DEFAULT '',
	image_url TEXT,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS days (
	day_id UUID PRIMARY KEY,
	trip_id UUID NOT NULL REFERENCES trips(trip_id) ON DELETE CASCADE,
	day_number INT NOT NULL,
	date TIMESTAMP,
	title VARCHAR(200) NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	city VARCHAR(100) NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS destinations (
	destination_id UUID PRIMARY KEY,
	name VARCHAR(200) NOT NULL,
	city VARCHAR(100) NOT NULL DEFAULT '',
	description TEXT,
	image_url TEXT,
	estimated_price DOUBLE PRECISION NOT NULL DEFAULT 0,
	opens_at VARCHAR(5),
	closes_at VARCHAR(5),
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS day_activities (
	activity_id UUID PRIMARY KEY,
	day_id UUID NOT NULL REFERENCES days(day_id) ON DELETE CASCADE,
	destination_id UUID NOT NULL REFERENCES destinations(destination_id) ON DELETE CASCADE,
	activity_type VARCHAR(50) NOT NULL DEFAULT '',
	start_time VARCHAR(5) NOT NULL DEFAULT '09:00',
	duration_hours DOUBLE PRECISION NOT NULL DEFAULT 1,
	description TEXT
);

CREATE TABLE IF NOT EXISTS user_favorites (
	user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
	destination_id UUID NOT NULL REFERENCES destinations(destination_id) ON DELETE CASCADE,
	added_at TIMESTAMP NOT NULL DEFAULT NOW(),
	PRIMARY KEY (user_id, destination_id)
);

CREATE TABLE IF NOT EXISTS virtual_tours (
	vr_id UUID PRIMARY KEY,
	destination_id UUID NOT NULL UNIQUE REFERENCES destinations(destination_id) ON DELETE CASCADE,
	vr_image_url TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS analytics_events (
	event_id UUID PRIMARY KEY,
	event_type VARCHAR(50) NOT NULL,
	category VARCHAR(100),
	user_id UUID REFERENCES users(user_id) ON DELETE SET NULL,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);
`

// setupPostgresContainer starts a throwaway Postgres with the full schema
// applied and returns a connected pool plus a teardown.
func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	_, err = db.Exec(testSchema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

// setupRedisContainer starts a throwaway Redis and returns a client plus a
// teardown.
func setupRedisContainer(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "6379")

	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", host, port.Int()),
	})
	assert.NoError(t, client.Ping(context.Background()).Err())

	teardown := func() {
		client.Close()
		container.Terminate(context.Background())
	}

	return client, teardown
}
