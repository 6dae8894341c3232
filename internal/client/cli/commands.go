package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/socialecho/internal/client/session"
)

// Status prints the restored session.
func (a *App) Status(store *session.Store) {
	auth := store.State().Auth
	if !auth.IsAuthenticated() {
		fmt.Fprintln(a.out, "Not signed in")
		return
	}
	if auth.User == nil {
		fmt.Fprintln(a.out, "Signed in")
		return
	}
	fmt.Fprintf(a.out, "Signed in as %s <%s>\n", auth.User.Name, auth.User.Email)
}

// Logout clears the session; the persist middleware removes the stored
// profile.
func (a *App) Logout(ctx context.Context, store *session.Store) {
	store.Dispatch(ctx, session.LoggedOut{})
	fmt.Fprintln(a.out, "Signed out")
}
