// Data Transfer Objects for the users module: the profile payload and the
// message responses returned by the follow and unfollow endpoints.
package users

import "time"

// TweetSummary is one entry in the profile's recent-tweets list.
type TweetSummary struct {
	ID          int       `json:"id" example:"12"`
	PublishedAt time.Time `json:"published_at" example:"2023-01-15T10:30:00Z"`
	Tweet       string    `json:"tweet" example:"first!"`
}

// ProfileResponse represents the data returned for a user profile.
type ProfileResponse struct {
	ID             int            `json:"id" example:"1"`
	Username       string         `json:"username" example:"alice"`
	Bio            string         `json:"bio" example:"Coffee first, tweets later."`
	FollowingCount int            `json:"following_count" example:"3"`
	FollowersCount int            `json:"followers_count" example:"5"`
	Tweets         []TweetSummary `json:"tweets"`
}

// MessageResponse is the body of follow/unfollow results.
type MessageResponse struct {
	Message string `json:"message" example:"You are now following bob"`
}
