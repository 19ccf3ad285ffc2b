package tweets

import (
	"context"
	"strings"

	"github.com/user/kicau-go/apperror"
)

// maxTweetLength bounds the tweet text, in runes.
const maxTweetLength = 280

// TweetService provides tweet publication.
type TweetService struct {
	store Store
}

// NewTweetService creates a new TweetService.
func NewTweetService(store Store) *TweetService {
	return &TweetService{store: store}
}

// Create publishes a tweet for the given user. The publication timestamp is
// assigned by the database so ordering on profiles is consistent.
func (s *TweetService) Create(ctx context.Context, userID int, req CreateTweetRequest) (*Tweet, error) {
	text := strings.TrimSpace(req.Tweet)
	if text == "" {
		return nil, apperror.NewValidationError("tweet text is required", nil)
	}
	if len([]rune(text)) > maxTweetLength {
		return nil, apperror.NewValidationError("tweet text exceeds 280 characters", nil)
	}

	tweet := &Tweet{UserID: userID, Text: text}
	if err := s.store.CreateTweet(ctx, tweet); err != nil {
		return nil, apperror.NewDatabaseError("failed to create tweet", err)
	}
	return tweet, nil
}
