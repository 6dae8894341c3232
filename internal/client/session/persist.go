package session

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/socialecho/internal/common"
	"github.com/dmitrijs2005/socialecho/internal/logging"
)

type ProfileWriter interface {
	Save(ctx context.Context, p *Profile) error
	Delete(ctx context.Context) error
}

// PersistMiddleware keeps the stored profile in step with the auth state:
// refreshed tokens are written back, logout removes the profile, and so does
// a refresh the server rejected as unauthorized. Other refresh failures keep
// the profile so the next start can try again.
func PersistMiddleware(profiles ProfileWriter, logger logging.Logger) Middleware {
	return func(s *Store, next DispatchFunc) DispatchFunc {
		return func(ctx context.Context, a Action) {
			next(ctx, a)

			switch act := a.(type) {
			case TokensRefreshed:
				auth := s.State().Auth
				p := &Profile{AccessToken: auth.AccessToken, RefreshToken: auth.RefreshToken, User: auth.User}
				if err := profiles.Save(ctx, p); err != nil {
					logger.Error(ctx, "failed to persist profile", "error", err)
				}
			case LoggedOut:
				if err := profiles.Delete(ctx); err != nil {
					logger.Error(ctx, "failed to delete profile", "error", err)
				}
			case RefreshFailed:
				if !errors.Is(act.Err, common.ErrorUnauthorized) {
					return
				}
				logger.Warn(ctx, "refresh token rejected, dropping stored profile")
				if err := profiles.Delete(ctx); err != nil {
					logger.Error(ctx, "failed to delete profile", "error", err)
				}
			}
		}
	}
}
