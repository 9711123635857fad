// Package common defines shared constants and sentinel errors used across
// the portal client and server. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Auth / token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Client-side failure taxonomy. Every network call made by the portal
	// client resolves to exactly one of these (or nil).
	ErrValidation = errors.New("validation failed")
	ErrServer     = errors.New("server error")
	ErrNetwork    = errors.New("no response from server")
	ErrTimeout    = errors.New("request timed out")
)
