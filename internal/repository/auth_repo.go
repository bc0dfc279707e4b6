package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AuthRepository struct {
	DB *pgxpool.Pool
}

func NewAuthRepository(db *pgxpool.Pool) *AuthRepository {
	return &AuthRepository{DB: db}
}

// Account is a row in the userauth table.
type Account struct {
	ID           int64      `json:"id"`
	FullName     string     `json:"fullName"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

func (r *AuthRepository) CreateUser(ctx context.Context, fullName, email, passwordHash, role string) (int64, error) {
	var id int64
	query := `INSERT INTO userauth (fullname, email, passwordhash, role, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := r.DB.QueryRow(ctx, query, fullName, email, passwordHash, role, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *AuthRepository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	var a Account
	query := `SELECT id, fullname, email, passwordhash, role, created_at, deleted_at FROM userauth WHERE email=$1 AND deleted_at IS NULL`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&a.ID, &a.FullName, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt, &a.DeletedAt); err != nil {
		return nil, errors.New("user not found")
	}
	return &a, nil
}

func (r *AuthRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM userauth WHERE email=$1)`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
