package auth

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserStore abstracts the credential store. The service depends on this
// interface so tests can substitute an in-memory implementation.
type UserStore interface {
	// CreateUser persists a new user and fills in the generated id and
	// created_at. A unique-constraint violation on username is returned
	// as the raw driver error for the service to classify.
	CreateUser(ctx context.Context, user *User) error
	// GetUserByUsername returns pgx.ErrNoRows when no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*User, error)
}

// pgxUserStore is the PostgreSQL-backed UserStore.
type pgxUserStore struct {
	db *pgxpool.Pool
}

// NewUserStore creates a UserStore backed by the given connection pool.
func NewUserStore(db *pgxpool.Pool) UserStore {
	return &pgxUserStore{db: db}
}

func (s *pgxUserStore) CreateUser(ctx context.Context, user *User) error {
	query := `INSERT INTO users (username, password, bio)
              VALUES ($1, $2, $3)
              RETURNING id, created_at`
	return s.db.QueryRow(ctx, query, user.Username, user.HashedPassword, user.Bio).
		Scan(&user.ID, &user.CreatedAt)
}

func (s *pgxUserStore) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	query := `SELECT id, username, password, bio, created_at FROM users WHERE username = $1`
	err := s.db.QueryRow(ctx, query, username).
		Scan(&user.ID, &user.Username, &user.HashedPassword, &user.Bio, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
