// Package users encapsulates user profile management and the follow graph.
// The profile endpoint assembles user data, follow counts, and recent tweets;
// the follow and unfollow operations mutate the directed follow relation with
// idempotent semantics.
package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/user/kicau-go/apperror"
	"github.com/user/kicau-go/auth"
)

// profileTweetLimit caps the recent-tweets list on a profile.
const profileTweetLimit = 10

// UserService provides profile, follow, and unfollow operations.
type UserService struct {
	store Store
}

// NewUserService creates a new UserService.
func NewUserService(store Store) *UserService {
	return &UserService{store: store}
}

// getUser resolves a user id, translating a missing row into a NotFoundError.
func (s *UserService) getUser(ctx context.Context, userID int) (*auth.User, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("user not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}
	return user, nil
}

// GetProfile assembles the authenticated user's profile: basic user data,
// follow-graph counts, and the most recent tweets, newest first.
// The user may have been deleted between token issuance and use, so a stale
// id resolves to a not-found error rather than a server fault.
func (s *UserService) GetProfile(ctx context.Context, userID int) (*ProfileResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	followingCount, err := s.store.CountFollowing(ctx, userID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to count following", err)
	}
	followersCount, err := s.store.CountFollowers(ctx, userID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to count followers", err)
	}

	tweets, err := s.store.RecentTweets(ctx, userID, profileTweetLimit)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to get tweets", err)
	}
	if tweets == nil {
		tweets = []TweetSummary{}
	}

	return &ProfileResponse{
		ID:             user.ID,
		Username:       user.Username,
		Bio:            user.Bio,
		FollowingCount: followingCount,
		FollowersCount: followersCount,
		Tweets:         tweets,
	}, nil
}

// Follow creates a follow edge from followerID to followeeID. Following a
// user twice is a no-op success, not an error; two concurrent follows of the
// same pair collapse into one edge at the storage layer the same way.
func (s *UserService) Follow(ctx context.Context, followerID, followeeID int) (*MessageResponse, error) {
	if _, err := s.getUser(ctx, followerID); err != nil {
		return nil, err
	}
	target, err := s.getUser(ctx, followeeID)
	if err != nil {
		return nil, err
	}

	if followerID == followeeID {
		return nil, apperror.NewValidationError("cannot follow yourself", nil)
	}

	added, err := s.store.AddFollow(ctx, followerID, followeeID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to create follow", err)
	}
	if !added {
		return &MessageResponse{Message: "You are already following this user"}, nil
	}
	return &MessageResponse{Message: fmt.Sprintf("You are now following %s", target.Username)}, nil
}

// Unfollow removes the follow edge from followerID to followeeID.
// Unfollowing someone who was never followed is a no-op success.
func (s *UserService) Unfollow(ctx context.Context, followerID, followeeID int) (*MessageResponse, error) {
	if _, err := s.getUser(ctx, followerID); err != nil {
		return nil, err
	}
	target, err := s.getUser(ctx, followeeID)
	if err != nil {
		return nil, err
	}

	if followerID == followeeID {
		return nil, apperror.NewValidationError("You are not following yourself", nil)
	}

	removed, err := s.store.RemoveFollow(ctx, followerID, followeeID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to remove follow", err)
	}
	if !removed {
		return &MessageResponse{Message: "You were not following this user"}, nil
	}
	return &MessageResponse{Message: fmt.Sprintf("You have unfollowed %s", target.Username)}, nil
}
