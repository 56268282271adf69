package domain

import "errors"

// Credential and registration errors.
var (
	ErrUserExists         = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Token errors. ErrMissingSecret is a startup misconfiguration; the rest come from client input.
var (
	ErrMissingSecret    = errors.New("token signing secret is not configured")
	ErrMissingToken     = errors.New("missing token")
	ErrMalformedToken   = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrTokenExpired     = errors.New("token expired")
)

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrInvalidID      = errors.New("invalid identifier")
	ErrInvalidInput   = errors.New("invalid input")
	ErrForbidden      = errors.New("access forbidden")
	ErrUpstream       = errors.New("upstream service unavailable")
)
