// Package auth is responsible for authentication and authorization logic:
// user registration, login, password hashing, token issuance and verification,
// and the middleware protecting authenticated routes.
package auth

import "time"

// User represents a user in the system as stored in the database.
// The `json:"-"` tag on HashedPassword keeps the stored hash out of every
// API response.
type User struct {
	ID             int       `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"`
	Bio            string    `json:"bio"`
	CreatedAt      time.Time `json:"created_at"`
}
