// HTTP handlers for the users module: the profile endpoint and the follow and
// unfollow endpoints, all behind the JWT middleware.
package users

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/kicau-go/apperror"
	"github.com/user/kicau-go/auth"
)

// UserHandlers provides HTTP handlers for user profile and follow management.
type UserHandlers struct {
	service *UserService
}

// NewUserHandlers creates new UserHandlers.
func NewUserHandlers(service *UserService) *UserHandlers {
	return &UserHandlers{service: service}
}

// targetUserID parses the {user_id} path parameter.
func targetUserID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "user_id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.NewValidationError("invalid user id in path", err)
	}
	return id, nil
}

// HandleGetProfile godoc
// @Summary Get current user's profile
// @Description Returns the authenticated user's profile with follow counts and the 10 most recent tweets.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users.ProfileResponse "User profile"
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} apperror.ErrorResponse "User no longer exists"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /user [get]
func (h *UserHandlers) HandleGetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewUnauthorizedError("user id not found in context", nil))
			return
		}

		profile, err := h.service.GetProfile(r.Context(), userID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, profile)
	}
}

// HandleFollow godoc
// @Summary Follow a user
// @Description Creates a follow edge from the authenticated user to the target user. Following twice is a no-op success.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "Target user id"
// @Success 200 {object} users.MessageResponse "Follow result"
// @Failure 400 {object} apperror.ErrorResponse "Self-follow or malformed id"
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} apperror.ErrorResponse "User not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /user/follow/{user_id} [post]
func (h *UserHandlers) HandleFollow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewUnauthorizedError("user id not found in context", nil))
			return
		}

		followeeID, err := targetUserID(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		resp, err := h.service.Follow(r.Context(), userID, followeeID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleUnfollow godoc
// @Summary Unfollow a user
// @Description Removes the follow edge from the authenticated user to the target user. Unfollowing without a prior follow is a no-op success.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "Target user id"
// @Success 200 {object} users.MessageResponse "Unfollow result"
// @Failure 400 {object} apperror.ErrorResponse "Self-unfollow or malformed id"
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} apperror.ErrorResponse "User not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /user/unfollow/{user_id} [post]
func (h *UserHandlers) HandleUnfollow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewUnauthorizedError("user id not found in context", nil))
			return
		}

		followeeID, err := targetUserID(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		resp, err := h.service.Unfollow(r.Context(), userID, followeeID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, resp)
	}
}
