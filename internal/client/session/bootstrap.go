package session

import (
	"context"

	"github.com/dmitrijs2005/socialecho/internal/logging"
)

type ProfileLoader interface {
	Load(ctx context.Context) (*Profile, error)
}

// Plan is the synchronous outcome of reading the stored profile.
type Plan struct {
	// Initial is the state the store is constructed with.
	Initial State
	// Pending is set when the stored access token has expired and a refresh
	// must run once the store exists.
	Pending *Profile
}

func (p Plan) NeedsRefresh() bool { return p.Pending != nil }

type Bootstrapper struct {
	profiles  ProfileLoader
	validator TokenValidator
	refresher Refresher
	logger    logging.Logger
}

func NewBootstrapper(profiles ProfileLoader, validator TokenValidator, refresher Refresher, logger logging.Logger) *Bootstrapper {
	return &Bootstrapper{profiles: profiles, validator: validator, refresher: refresher, logger: logger}
}

// Plan reads the stored profile and decides the initial state. An unreadable
// profile is logged and treated as no session.
func (b *Bootstrapper) Plan(ctx context.Context) Plan {
	p, err := b.profiles.Load(ctx)
	if err != nil {
		b.logger.Warn(ctx, "stored profile unreadable, starting signed out", "error", err)
		return Plan{}
	}
	if !p.HasTokens() {
		return Plan{}
	}

	if b.validator.IsValid(p.AccessToken) {
		return Plan{Initial: State{Auth: AuthState{
			AccessToken:  p.AccessToken,
			RefreshToken: p.RefreshToken,
			User:         p.User,
		}}}
	}

	return Plan{Pending: p}
}

// Start builds the store from Plan and, if needed, runs the refresh against
// it in a background goroutine. The returned channel is closed once the
// store has settled: immediately when no refresh is needed, otherwise after
// the refresh attempt finished, whatever its outcome.
func (b *Bootstrapper) Start(ctx context.Context, middlewares ...Middleware) (*Store, <-chan struct{}) {
	plan := b.Plan(ctx)
	store := NewStore(plan.Initial, middlewares...)
	ready := make(chan struct{})

	if !plan.NeedsRefresh() {
		b.logger.Info(ctx, "store is ready", "authenticated", plan.Initial.Auth.IsAuthenticated())
		close(ready)
		return store, ready
	}

	b.logger.Info(ctx, "access token expired, refreshing")
	go func() {
		defer close(ready)
		action := RefreshTokenAction(b.refresher, plan.Pending.RefreshToken, plan.Pending.User)
		if err := store.Run(ctx, action); err != nil {
			b.logger.Error(ctx, "failed to check tokens", "error", err)
			return
		}
		b.logger.Info(ctx, "store is ready", "authenticated", true)
	}()

	return store, ready
}
