package authclient

import "errors"

// ErrUnavailable means the auth service could not be reached or failed on
// its side; the refresh token may still be good.
var ErrUnavailable = errors.New("auth service unavailable")
