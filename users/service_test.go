package users

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/kicau-go/apperror"
	"github.com/user/kicau-go/auth"
)

// fakeStore is an in-memory Store for tests. Follow edges live in a set keyed
// by the ordered (follower, followee) pair, mirroring the composite primary
// key of the follows table.
type fakeStore struct {
	users   map[int]*auth.User
	follows map[[2]int]bool
	tweets  map[int][]TweetSummary
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:   make(map[int]*auth.User),
		follows: make(map[[2]int]bool),
		tweets:  make(map[int][]TweetSummary),
	}
}

func (f *fakeStore) addUser(id int, username string) *auth.User {
	user := &auth.User{ID: id, Username: username, Bio: username + "'s bio", CreatedAt: time.Now()}
	f.users[id] = user
	return user
}

func (f *fakeStore) GetUserByID(_ context.Context, id int) (*auth.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (f *fakeStore) CountFollowing(_ context.Context, userID int) (int, error) {
	count := 0
	for edge := range f.follows {
		if edge[0] == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) CountFollowers(_ context.Context, userID int) (int, error) {
	count := 0
	for edge := range f.follows {
		if edge[1] == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) RecentTweets(_ context.Context, userID, limit int) ([]TweetSummary, error) {
	tweets := append([]TweetSummary(nil), f.tweets[userID]...)
	sort.Slice(tweets, func(i, j int) bool {
		return tweets[i].PublishedAt.After(tweets[j].PublishedAt)
	})
	if len(tweets) > limit {
		tweets = tweets[:limit]
	}
	return tweets, nil
}

func (f *fakeStore) AddFollow(_ context.Context, followerID, followeeID int) (bool, error) {
	edge := [2]int{followerID, followeeID}
	if f.follows[edge] {
		return false, nil
	}
	f.follows[edge] = true
	return true, nil
}

func (f *fakeStore) RemoveFollow(_ context.Context, followerID, followeeID int) (bool, error) {
	edge := [2]int{followerID, followeeID}
	if !f.follows[edge] {
		return false, nil
	}
	delete(f.follows, edge)
	return true, nil
}

func TestGetProfile(t *testing.T) {
	store := newFakeStore()
	store.addUser(1, "alice")
	store.addUser(2, "bob")
	store.addUser(3, "carol")
	store.follows[[2]int{1, 2}] = true // alice follows bob
	store.follows[[2]int{2, 1}] = true // bob follows alice
	store.follows[[2]int{3, 1}] = true // carol follows alice

	svc := NewUserService(store)
	profile, err := svc.GetProfile(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, profile.ID)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "alice's bio", profile.Bio)
	assert.Equal(t, 1, profile.FollowingCount)
	assert.Equal(t, 2, profile.FollowersCount)
	assert.NotNil(t, profile.Tweets)
	assert.Empty(t, profile.Tweets)
}

func TestGetProfileRecentTweets(t *testing.T) {
	store := newFakeStore()
	store.addUser(1, "alice")

	base := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		store.tweets[1] = append(store.tweets[1], TweetSummary{
			ID:          i + 1,
			PublishedAt: base.Add(time.Duration(i) * time.Minute),
			Tweet:       fmt.Sprintf("tweet %d", i+1),
		})
	}

	svc := NewUserService(store)
	profile, err := svc.GetProfile(context.Background(), 1)
	require.NoError(t, err)

	// Exactly the 10 most recent, newest first.
	require.Len(t, profile.Tweets, 10)
	assert.Equal(t, 15, profile.Tweets[0].ID)
	assert.Equal(t, 6, profile.Tweets[9].ID)
	for i := 1; i < len(profile.Tweets); i++ {
		assert.True(t, profile.Tweets[i-1].PublishedAt.After(profile.Tweets[i].PublishedAt))
	}
}

func TestGetProfileUserGone(t *testing.T) {
	svc := NewUserService(newFakeStore())

	_, err := svc.GetProfile(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestFollow(t *testing.T) {
	store := newFakeStore()
	store.addUser(1, "alice")
	store.addUser(2, "bob")
	svc := NewUserService(store)
	ctx := context.Background()

	resp, err := svc.Follow(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "You are now following bob", resp.Message)
	assert.True(t, store.follows[[2]int{1, 2}])
	// Directed edge: bob does not follow alice.
	assert.False(t, store.follows[[2]int{2, 1}])
}

func TestFollowIsIdempotent(t *testing.T) {
	store := newFakeStore()
	store.addUser(1, "alice")
	store.addUser(2, "bob")
	svc := NewUserService(store)
	ctx := context.Background()

	_, err := svc.Follow(ctx, 1, 2)
	require.NoError(t, err)

	resp, err := svc.Follow(ctx, 1, 2)
	require.NoError(t, err, "duplicate follow is a success, not an error")
	assert.Equal(t, "You are already following this user", resp.Message)
	assert.Len(t, store.follows, 1)
}

func TestFollowSelf(t *testing.T) {
	store := newFakeStore()
	store.addUser(1, "alice")
	svc := NewUserService(store)

	_, err := svc.Follow(context.Background(), 1, 1)
	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))
	assert.Empty(t, store.follows)
}

func TestFollowMissingUsers(t *testing.T) {
	store := newFakeStore()
	store.addUser(1, "alice")
	svc := NewUserService(store)
	ctx := context.Background()

	_, err := svc.Follow(ctx, 1, 99)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	_, err = svc.Follow(ctx, 99, 1)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestUnfollow(t *testing.T) {
	store := newFakeStore()
	store.addUser(1, "alice")
	store.addUser(2, "bob")
	store.follows[[2]int{1, 2}] = true
	svc := NewUserService(store)

	resp, err := svc.Unfollow(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "You have unfollowed bob", resp.Message)
	assert.Empty(t, store.follows)
}

func TestUnfollowWithoutPriorEdge(t *testing.T) {
	store := newFakeStore()
	store.addUser(1, "alice")
	store.addUser(2, "bob")
	svc := NewUserService(store)

	resp, err := svc.Unfollow(context.Background(), 1, 2)
	require.NoError(t, err, "no-op unfollow is a success, not an error")
	assert.Equal(t, "You were not following this user", resp.Message)
	assert.Empty(t, store.follows)
}

func TestUnfollowSelf(t *testing.T) {
	store := newFakeStore()
	store.addUser(1, "alice")
	svc := NewUserService(store)

	_, err := svc.Unfollow(context.Background(), 1, 1)
	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))
}
