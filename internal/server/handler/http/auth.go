// Package http provides HTTP handlers and routing for the bookkeeping API.
package http

import (
	"context"
	"errors"
	"net/http"

	"duitku/internal/models"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Register creates a new user with a hashed password.
	// Returns models.ErrUsernameTaken if the username is already in use.
	Register(ctx context.Context, username, password string) error
	// Login verifies a username/password pair and returns the matching user.
	// Returns models.ErrInvalidCredentials on failure.
	Login(ctx context.Context, username, password string) (*models.User, error)
}

// TokenIssuer creates signed bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

// AuthHandler handles HTTP requests for user registration and login.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
	// Tokens issues bearer tokens on successful login.
	Tokens TokenIssuer
}

// credentialsRequest represents the JSON payload for registration and login.
// Pointer fields distinguish missing fields from empty ones.
type credentialsRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

func (req *credentialsRequest) validate(w http.ResponseWriter) bool {
	if req.Username == nil || *req.Username == "" {
		writeMessage(w, http.StatusBadRequest, "Username is required")
		return false
	}
	if req.Password == nil || *req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Password is required")
		return false
	}
	return true
}

// Register handles POST /register.
// It expects a JSON body with "username" and "password". If the username is
// not already taken, it stores the user with a hashed password and replies 201.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeBody(w, r, &req) || !req.validate(w) {
		return
	}

	err := h.AuthService.Register(r.Context(), *req.Username, *req.Password)
	if errors.Is(err, models.ErrUsernameTaken) {
		writeMessage(w, http.StatusBadRequest, "Username already exists")
		return
	}
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeMessage(w, http.StatusCreated, "User registered successfully")
}

// Login handles POST /login.
// It verifies the credentials and replies with a signed bearer token.
// Unknown username and wrong password produce the same 401 message.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeBody(w, r, &req) || !req.validate(w) {
		return
	}

	user, err := h.AuthService.Login(r.Context(), *req.Username, *req.Password)
	if errors.Is(err, models.ErrInvalidCredentials) {
		writeMessage(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	accessToken, err := h.Tokens.Issue(user.ID)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"access_token": accessToken})
}
