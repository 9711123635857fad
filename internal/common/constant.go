// Package common contains shared constants and sentinel errors used across
// portal components.
package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token on
// outbound requests.
const AuthorizationHeaderName = "Authorization"

// TokenStorageKey is the key under which the portal client persists the
// session token in durable storage.
const TokenStorageKey = "token"
