package auth

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/kicau-go/apperror"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// loginFailedMessage is deliberately identical for an unknown username and a
// wrong password so the API does not reveal which usernames exist.
const loginFailedMessage = "username or password incorrect"

// AuthService provides registration and login.
type AuthService struct {
	store  UserStore
	tokens *TokenService
}

// NewAuthService creates a new AuthService with its dependencies injected.
func NewAuthService(store UserStore, tokens *TokenService) *AuthService {
	return &AuthService{store: store, tokens: tokens}
}

// Register hashes the password and creates a new user.
// bcrypt salts each hash, so registering the same password twice stores two
// different digests. A duplicate username surfaces as a ConflictError.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.NewInternalError("failed to hash password", err)
	}

	user := &User{
		Username:       req.Username,
		HashedPassword: string(hashedPassword),
		Bio:            req.Bio,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation &&
			strings.Contains(pgErr.ConstraintName, "username") {
			return nil, apperror.NewConflictError("username already taken", nil)
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}

	return &RegisterResponse{
		ID:       user.ID,
		Username: user.Username,
		Bio:      user.Bio,
	}, nil
}

// Login authenticates a user by username and password and issues a token.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewAuthError(loginFailedMessage, nil)
		}
		log.Printf("database error looking up user during login: %v", err)
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}

	// CompareHashAndPassword also fails on a malformed stored hash; both
	// cases must look exactly like a wrong password to the caller.
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, apperror.NewAuthError(loginFailedMessage, nil)
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, apperror.NewInternalError("failed to issue token", err)
	}

	return &LoginResponse{
		ID:       user.ID,
		Username: user.Username,
		Token:    token,
	}, nil
}
