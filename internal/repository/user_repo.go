package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nithish-ponnusamy/final-devops/internal/model"
)

// UserRepo stores dashboard accounts for the auth endpoints.
type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create inserts a new user and returns its id.
func (r *UserRepo) Create(ctx context.Context, username, passwordHash string) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id`,
		username, passwordHash).Scan(&id)
	if err != nil {
		return 0, &PersistenceError{Op: "user create", Err: err}
	}
	return id, nil
}

// FindByUsername returns a user or pgx.ErrNoRows.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx, `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1`,
		username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
