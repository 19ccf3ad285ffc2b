// Package tweets handles tweet publication. The profile endpoint in the users
// package reads the same tweets table; this package owns the write path.
package tweets

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Tweet represents a published tweet.
type Tweet struct {
	ID          int       `json:"id" example:"12"`
	UserID      int       `json:"user_id" example:"1"`
	PublishedAt time.Time `json:"published_at" example:"2023-01-15T10:30:00Z"`
	Text        string    `json:"tweet" example:"first!"`
}

// CreateTweetRequest represents the tweet creation payload.
type CreateTweetRequest struct {
	Tweet string `json:"tweet" example:"first!"`
}

// Store abstracts tweet persistence.
type Store interface {
	CreateTweet(ctx context.Context, tweet *Tweet) error
}

// pgxStore is the PostgreSQL-backed Store.
type pgxStore struct {
	db *pgxpool.Pool
}

// NewStore creates a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) Store {
	return &pgxStore{db: db}
}

func (s *pgxStore) CreateTweet(ctx context.Context, tweet *Tweet) error {
	query := `INSERT INTO tweets (user_id, tweet)
              VALUES ($1, $2)
              RETURNING id, published_at`
	return s.db.QueryRow(ctx, query, tweet.UserID, tweet.Text).
		Scan(&tweet.ID, &tweet.PublishedAt)
}
