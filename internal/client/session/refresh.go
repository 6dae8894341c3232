package session

import (
	"context"
	"fmt"
)

// TokenPair is a newly issued access/refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Refresher exchanges a refresh token for a new token pair.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

// RefreshTokenAction returns a thunk that performs one refresh exchange and
// dispatches TokensRefreshed on success or RefreshFailed on failure. user is
// carried into state alongside the new tokens.
func RefreshTokenAction(r Refresher, refreshToken string, user *User) Thunk {
	return func(ctx context.Context, s *Store) error {
		pair, err := r.Refresh(ctx, refreshToken)
		if err != nil {
			s.Dispatch(ctx, RefreshFailed{Err: err})
			return fmt.Errorf("refresh token: %w", err)
		}

		s.Dispatch(ctx, TokensRefreshed{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			User:         user,
		})
		return nil
	}
}
