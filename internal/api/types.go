// Package api is the JSON client for the storefront backend: quote
// requests and account sign-in/registration.
package api

import "encoding/json"

// Endpoint paths relative to the base URL.
const (
	PathSendQuote = "/api/send-quote"
	PathLogin     = "/api/auth/login"
	PathRegister  = "/api/auth/register"
)

// QuoteRequest is the body of POST /api/send-quote.
type QuoteRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ServiceType string `json:"serviceType"`
	Message     string `json:"message"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// AuthResponse is the success body of login and register. User is kept
// raw so it can be stored exactly as the server sent it.
type AuthResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	User         json.RawMessage `json:"user"`
}

// errorBody is the failure body shape.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
