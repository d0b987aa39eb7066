package postgres

import (
	"context"
	"errors"

	"github.com/fundflow/crowdfund-backend/internal/models"
	"github.com/fundflow/crowdfund-backend/internal/store"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type usersRepo struct{ pool *pgxpool.Pool }

const uniqueViolation = "23505"

func (r *usersRepo) Create(ctx context.Context, u models.User) (models.User, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users(id, email, password_hash, created_at)
		 VALUES($1,$2,$3,$4)
		 RETURNING id, email, password_hash, created_at`,
		u.ID, u.Email, u.PasswordHash, u.CreatedAt,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	// The unique index on email is the duplicate check; racing registrations
	// both hit it and exactly one row survives.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return models.User{}, store.ErrDuplicateEmail
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE email=$1`, email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, store.ErrNotFound
	}
	return u, err
}
