package users

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/kicau-go/auth"
)

// Store abstracts the user, follow-graph, and tweet queries that the profile
// and follow features need. The service depends on this interface so tests
// can substitute an in-memory implementation.
type Store interface {
	// GetUserByID returns pgx.ErrNoRows when no such user exists.
	GetUserByID(ctx context.Context, id int) (*auth.User, error)
	CountFollowing(ctx context.Context, userID int) (int, error)
	CountFollowers(ctx context.Context, userID int) (int, error)
	RecentTweets(ctx context.Context, userID, limit int) ([]TweetSummary, error)
	// AddFollow inserts a follow edge and reports whether a new edge was
	// created. The follows table's primary key makes the insert a no-op
	// when the edge already exists, including for concurrent duplicates.
	AddFollow(ctx context.Context, followerID, followeeID int) (bool, error)
	// RemoveFollow deletes a follow edge and reports whether one existed.
	RemoveFollow(ctx context.Context, followerID, followeeID int) (bool, error)
}

// pgxStore is the PostgreSQL-backed Store.
type pgxStore struct {
	db *pgxpool.Pool
}

// NewStore creates a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) Store {
	return &pgxStore{db: db}
}

func (s *pgxStore) GetUserByID(ctx context.Context, id int) (*auth.User, error) {
	var user auth.User
	query := `SELECT id, username, password, bio, created_at FROM users WHERE id = $1`
	err := s.db.QueryRow(ctx, query, id).
		Scan(&user.ID, &user.Username, &user.HashedPassword, &user.Bio, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *pgxStore) CountFollowing(ctx context.Context, userID int) (int, error) {
	var count int
	query := `SELECT count(*) FROM follows WHERE follower_id = $1`
	err := s.db.QueryRow(ctx, query, userID).Scan(&count)
	return count, err
}

func (s *pgxStore) CountFollowers(ctx context.Context, userID int) (int, error) {
	var count int
	query := `SELECT count(*) FROM follows WHERE followee_id = $1`
	err := s.db.QueryRow(ctx, query, userID).Scan(&count)
	return count, err
}

func (s *pgxStore) RecentTweets(ctx context.Context, userID, limit int) ([]TweetSummary, error) {
	query := `SELECT id, published_at, tweet
              FROM tweets
              WHERE user_id = $1
              ORDER BY published_at DESC
              LIMIT $2`
	rows, err := s.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tweets := []TweetSummary{}
	for rows.Next() {
		var t TweetSummary
		if err := rows.Scan(&t.ID, &t.PublishedAt, &t.Tweet); err != nil {
			return nil, err
		}
		tweets = append(tweets, t)
	}
	return tweets, rows.Err()
}

func (s *pgxStore) AddFollow(ctx context.Context, followerID, followeeID int) (bool, error) {
	query := `INSERT INTO follows (follower_id, followee_id)
              VALUES ($1, $2)
              ON CONFLICT DO NOTHING`
	tag, err := s.db.Exec(ctx, query, followerID, followeeID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *pgxStore) RemoveFollow(ctx context.Context, followerID, followeeID int) (bool, error) {
	query := `DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`
	tag, err := s.db.Exec(ctx, query, followerID, followeeID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
