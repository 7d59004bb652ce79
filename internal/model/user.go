package model

import "time"

// User is a registered dashboard user. PasswordHash is a bcrypt hash and is
// never serialized.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RegisterRequest is the API request body for POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the API request body for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the signed bearer token after a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// ChatRequest is the API request body for POST /chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the pass-through reply from the generative-text service.
type ChatResponse struct {
	Reply string `json:"reply"`
}
