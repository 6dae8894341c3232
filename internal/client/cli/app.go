package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/socialecho/internal/client/authclient"
	"github.com/dmitrijs2005/socialecho/internal/client/config"
	"github.com/dmitrijs2005/socialecho/internal/client/session"
	"github.com/dmitrijs2005/socialecho/internal/client/storage"
	"github.com/dmitrijs2005/socialecho/internal/common"
	"github.com/dmitrijs2005/socialecho/internal/flagx"
	"github.com/dmitrijs2005/socialecho/internal/logging"
)

type App struct {
	config   *config.Config
	db       *sql.DB
	profiles *session.ProfileStore
	boot     *session.Bootstrapper
	logger   logging.Logger
	out      io.Writer
}

// NewApp opens the profile database and wires the session bootstrapper.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	repo := storage.NewSQLiteRepository(db)

	profiles := session.NewProfileStore(repo)
	if c.ProfileSecret != "" {
		secret := []byte(c.ProfileSecret)
		profiles, err = session.NewSealedProfileStore(ctx, repo, secret)
		common.WipeByteArray(secret)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("error preparing profile store: %w", err)
		}
	}

	boot := session.NewBootstrapper(
		profiles,
		session.NewJWTValidator(c.TokenLeeway),
		authclient.New(c.TokenURL, c.ClientID, c.RefreshTimeout),
		logger,
	)

	return &App{config: c, db: db, profiles: profiles, boot: boot, logger: logger, out: os.Stdout}, nil
}

// Run bootstraps the session and executes the command found in args
// (os.Args[1:] style). It returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	defer a.db.Close()

	cmd := "status"
	if pos := flagx.Positional(args, config.ValueFlags, nil); len(pos) > 0 {
		cmd = pos[0]
	}

	store, ready := a.boot.Start(ctx, session.PersistMiddleware(a.profiles, a.logger))
	select {
	case <-ready:
	case <-ctx.Done():
		a.logger.Error(ctx, "interrupted before the session was restored", "error", ctx.Err())
		return 1
	}

	switch cmd {
	case "status":
		a.Status(store)
	case "logout":
		a.Logout(ctx, store)
	case "help":
		fmt.Fprintln(a.out, "Available commands: status, logout, help")
	default:
		fmt.Fprintf(a.out, "Unknown command: %s\n", cmd)
		return 1
	}
	return 0
}
