package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/vigilance-service/internal/domain"
)

// UserRepository defines persistence access for citizens. GetByID strips
// the password hash; lookups by email or NIC keep it so login can verify.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByNIC(ctx context.Context, nic string) (*domain.User, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (name, email, nic, password_hash, role)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.NIC,
		user.PasswordHash,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		// unique index violation from a concurrent registration
		if pgErr.ConstraintName == "users_nic_key" {
			return ErrDuplicateNIC
		}
		return ErrDuplicateEmail
	}
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `
        SELECT id, name, email, nic, role, created_at
        FROM users WHERE id=$1`

	var user domain.User
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.NIC,
		&user.Role,
		&user.CreatedAt,
	); err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getByField(ctx, "email", email)
}

func (r *userRepository) GetByNIC(ctx context.Context, nic string) (*domain.User, error) {
	return r.getByField(ctx, "nic", nic)
}

func (r *userRepository) getByField(ctx context.Context, field, value string) (*domain.User, error) {
	query := `
        SELECT id, name, email, nic, password_hash, role, created_at
        FROM users WHERE ` + field + `=$1`

	var user domain.User
	if err := r.pool.QueryRow(ctx, query, value).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.NIC,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	); err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func translateErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
