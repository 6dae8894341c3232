// Package common defines shared constants and sentinel errors used across
// client and admin layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// The auth service refused the credentials or refresh token.
	ErrorUnauthorized = errors.New("unauthorized")
)
