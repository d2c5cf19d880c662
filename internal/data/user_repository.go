package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// UserRepository handles database operations for users.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Get retrieves a user by id.
func (r *UserRepository) Get(ctx context.Context, id string) (*User, error) {
	var user User
	q := `SELECT id, userName, created, updated FROM users WHERE id = ? LIMIT 1`
	if err := r.db.GetContext(ctx, &user, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// Upsert inserts the user or refreshes its name and updated timestamp in a
// single atomic statement keyed on the primary key, so concurrent
// submissions for the same id cannot race a check against a write.
func (r *UserRepository) Upsert(ctx context.Context, u *User) error {
	var q string
	switch r.db.DriverName() {
	case "mysql":
		q = `INSERT INTO users (id, userName, created, updated) VALUES (?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE userName = VALUES(userName), updated = VALUES(updated)`
	default: // sqlite3
		q = `INSERT INTO users (id, userName, created, updated) VALUES (?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET userName = excluded.userName, updated = excluded.updated`
	}
	if _, err := r.db.ExecContext(ctx, q, u.ID, u.UserName, u.Created, u.Updated); err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}
