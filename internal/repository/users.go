// Package repository provides persistence implementations backed by SQLite.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"duitku/internal/models"
)

// SQLiteUserRepository implements user persistence using a SQLite database.
type SQLiteUserRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewSQLiteUserRepository creates a new SQLiteUserRepository with the given
// database connection.
func NewSQLiteUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{DB: db}
}

// UserExists checks whether a user with the specified username exists.
// It returns true if the user exists, false otherwise.
func (r *SQLiteUserRepository) UserExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)`,
		username,
	).Scan(&exists)
	return exists, err
}

// CreateUser inserts a new user with the given username and password hash
// and returns the generated id.
func (r *SQLiteUserRepository) CreateUser(ctx context.Context, username, passwordHash string) (int64, error) {
	res, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO users (username, password_hash) VALUES (?, ?)`,
		username, passwordHash,
	)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// GetUserByUsername fetches a user by username.
// Returns models.ErrNotFound if no such user exists.
func (r *SQLiteUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT id, username, password_hash FROM users WHERE username = ?`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &u, nil
}
