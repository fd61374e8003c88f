package models

import "errors"

// Session is the proof-of-login record handed to the client after a
// successful credential check. It is mirrored into the JWT claims.
type Session struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// LoginRequest is the login form payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Response model
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

var (
	// ErrInvalidCredentials is returned on a login mismatch. Recoverable,
	// user-facing; carries no detail about which field was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotFound is returned by the store when a mutation targets an id
	// that no longer exists.
	ErrNotFound = errors.New("menu item not found")
)
