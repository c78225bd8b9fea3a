package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"applytrack-api/internal/models"
	"applytrack-api/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo implements the storage.UserRepository interface using pgx.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

var _ storage.UserRepository = (*UserRepo)(nil)

const uniqueViolation = "23505"

// GetByID retrieves a single user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at, updated_at
		 FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by ID %s: %v", id, err)
		return nil, fmt.Errorf("%w: getting user: %v", storage.ErrUnavailable, err)
	}
	return &u, nil
}

// GetByEmail retrieves a single user by email, including the password hash.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at, updated_at
		 FROM users WHERE email = $1`, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by email %s: %v", email, err)
		return nil, fmt.Errorf("%w: getting user: %v", storage.ErrUnavailable, err)
	}
	return &u, nil
}

// Create inserts a new user. The password must already be hashed by the
// service layer.
func (r *UserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (id, name, email, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		user.ID, user.Name, user.Email, user.PasswordHash).
		Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			log.Printf("Attempted to create user with duplicate email %s", user.Email)
			return nil, storage.ErrDuplicateEmail
		}
		log.Printf("Error creating user with email %s: %v", user.Email, err)
		return nil, fmt.Errorf("%w: creating user: %v", storage.ErrUnavailable, err)
	}

	log.Printf("User created successfully with ID: %s", user.ID)
	return user, nil
}
