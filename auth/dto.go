// Data Transfer Objects for the auth module: request and response payloads
// for the registration and login endpoints.
package auth

// RegisterRequest represents the registration request payload.
type RegisterRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"strongpassword123"`
	Bio      string `json:"bio" example:"Coffee first, tweets later."`
}

// RegisterResponse is returned on successful registration.
// The password is never echoed back.
type RegisterResponse struct {
	ID       int    `json:"id" example:"1"`
	Username string `json:"username" example:"alice"`
	Bio      string `json:"bio" example:"Coffee first, tweets later."`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"strongpassword123"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	ID       int    `json:"id" example:"1"`
	Username string `json:"username" example:"alice"`
	Token    string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}
