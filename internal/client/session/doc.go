// Package session rehydrates the client's authentication state at start-up.
//
// The persisted profile ({accessToken, refreshToken, user}) is read from the
// local key-value store. If the access token is still valid the tokens and
// user become the store's preloaded state; if it has expired the store is
// built empty and a single refresh is dispatched against it in the
// background. A failed refresh is logged and leaves the session signed out.
//
// Typical wiring:
//
//	b := session.NewBootstrapper(profiles, session.NewJWTValidator(leeway), refresher, logger)
//	store, ready := b.Start(ctx, session.PersistMiddleware(profiles, logger))
//	<-ready
//	fmt.Println(store.State().Auth.IsAuthenticated())
package session
