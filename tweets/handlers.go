package tweets

import (
	"encoding/json"
	"net/http"

	"github.com/user/kicau-go/apperror"
	"github.com/user/kicau-go/auth"
)

// TweetHandlers provides HTTP handlers for tweet publication.
type TweetHandlers struct {
	service *TweetService
}

// NewTweetHandlers creates new TweetHandlers.
func NewTweetHandlers(service *TweetService) *TweetHandlers {
	return &TweetHandlers{service: service}
}

// HandleCreateTweet godoc
// @Summary Publish a tweet
// @Description Publishes a tweet as the authenticated user.
// @Tags tweets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tweetBody body tweets.CreateTweetRequest true "Tweet text"
// @Success 200 {object} tweets.Tweet "Published tweet"
// @Failure 400 {object} apperror.ErrorResponse "Empty or oversized tweet text"
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /tweet [post]
func (h *TweetHandlers) HandleCreateTweet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewUnauthorizedError("user id not found in context", nil))
			return
		}

		var req CreateTweetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		tweet, err := h.service.Create(r.Context(), userID, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, tweet)
	}
}
