package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"golang.org/x/term"

	"github.com/dmitrijs2005/socialecho/internal/admin/config"
	"github.com/dmitrijs2005/socialecho/internal/admin/models"
	"github.com/dmitrijs2005/socialecho/internal/admin/repositories/repomanager"
	"github.com/dmitrijs2005/socialecho/internal/admin/services"
	"github.com/dmitrijs2005/socialecho/internal/logging"
)

const (
	ExitOK      = 0
	ExitFailure = 1
)

const appName = "socialecho"

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// Promoter is the part of services.PromotionService the prompts drive.
type Promoter interface {
	Moderators(ctx context.Context) ([]models.User, error)
	CommunityNames(ctx context.Context) ([]string, error)
	Promote(ctx context.Context, user models.User, communityName string) (*models.Community, error)
}

// Connector opens the database and returns a Promoter over it together with
// the func that releases the connection.
type Connector func(ctx context.Context) (Promoter, func(context.Context) error, error)

type App struct {
	connect Connector
	reader  *bufio.Reader
	out     io.Writer
	style   Style
	logger  logging.Logger
}

// NewApp wires the tool to MongoDB as described by c, reading answers from
// stdin and writing to stdout.
func NewApp(c *config.Config, logger logging.Logger) *App {
	connect := func(ctx context.Context) (Promoter, func(context.Context) error, error) {
		m, err := repomanager.Connect(ctx, c.MongoURI, c.Database, c.ConnectTimeout)
		if err != nil {
			return nil, nil, err
		}
		return services.NewPromotionService(m, logger), m.Close, nil
	}

	color := !c.NoColor && isTerminal(int(os.Stdout.Fd()))
	return &App{
		connect: connect,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		style:   NewStyle(color),
		logger:  logger,
	}
}

func (a *App) println(msg string) {
	fmt.Fprintln(a.out, msg)
}

func (a *App) printBanner() {
	fig := figure.NewFigure(appName, "cybermedium", true)
	fmt.Fprint(a.out, fig.String())
	fmt.Fprintln(a.out)
}

// Run performs one promotion pass and returns the exit code.
func (a *App) Run(ctx context.Context) int {
	a.printBanner()

	promoter, closeFn, err := a.connect(ctx)
	if err != nil {
		a.logger.Error(ctx, "database connection failed", "error", err)
		a.println(a.style.Fail("Error connecting to database: " + err.Error()))
		return ExitFailure
	}
	defer func() {
		if err := closeFn(context.Background()); err != nil {
			a.logger.Warn(ctx, "failed to close database connection", "error", err)
		}
	}()
	a.logger.Debug(ctx, "connected")
	a.println(a.style.Success("Connected to MongoDB"))

	code, err := a.promote(ctx, promoter)
	if err != nil {
		return a.fail(ctx, err)
	}
	return code
}

// fail reports an error that ended the pass early.
func (a *App) fail(ctx context.Context, err error) int {
	if errors.Is(err, ErrInvalidChoice) {
		a.logger.Warn(ctx, "invalid selection", "error", err)
		a.println(a.style.Fail("Invalid choice"))
		return ExitFailure
	}
	a.logger.Error(ctx, "promotion aborted", "error", err)
	a.println(a.style.Fail("Error: " + err.Error()))
	return ExitFailure
}

func (a *App) promote(ctx context.Context, p Promoter) (int, error) {
	moderators, err := p.Moderators(ctx)
	if err != nil {
		return ExitFailure, err
	}

	moderator, ok, err := a.chooseModerator(moderators)
	if err != nil {
		return ExitFailure, err
	}
	if !ok {
		a.println(a.style.Fail("Error! Moderator not found."))
		return ExitOK, nil
	}

	names, err := p.CommunityNames(ctx)
	if err != nil {
		return ExitFailure, err
	}

	communityName, err := a.chooseCommunity(names)
	if err != nil {
		return ExitFailure, err
	}

	_, err = p.Promote(ctx, moderator, communityName)
	switch {
	case errors.Is(err, services.ErrCommunityNotFound):
		a.println(a.style.Warn("Warning: Community does not exist. Please select a valid community."))
		return ExitFailure, nil
	case errors.Is(err, services.ErrAlreadyModerator):
		a.println(a.style.Warn(fmt.Sprintf("Warning: %s is already a moderator of %s community!",
			a.style.Name(moderator.Name, yellow), a.style.Name(communityName, yellow))))
		return ExitFailure, nil
	case err != nil:
		return ExitFailure, err
	}

	a.println(a.style.Success(fmt.Sprintf("Done! %s has been added as a moderator and member of %s community.",
		a.style.Name(moderator.Name, green), a.style.Name(communityName, green))))
	return ExitOK, nil
}

// chooseModerator shows the numbered moderator list and resolves the answer.
// ok is false when the choice parsed but names no moderator.
func (a *App) chooseModerator(moderators []models.User) (models.User, bool, error) {
	lines := make([]string, 0, len(moderators)+1)
	lines = append(lines, a.style.Prompt("Which moderator would you like to add? (Enter the number)"))
	for i, m := range moderators {
		lines = append(lines, fmt.Sprintf("%d. %s - %s", i+1, m.Name, m.Email))
	}

	answer, err := getSimpleText(a.reader, strings.Join(lines, "\n"), a.out)
	if err != nil {
		return models.User{}, false, err
	}

	choice, err := ParseChoice(answer, len(moderators))
	if err != nil {
		return models.User{}, false, err
	}
	if int(choice) >= len(moderators) {
		return models.User{}, false, nil
	}
	return moderators[choice], true, nil
}

func (a *App) chooseCommunity(names []string) (string, error) {
	if len(names) > 0 {
		a.println(a.style.Prompt("Select an option:"))
		for i, n := range names {
			a.println(a.style.Prompt(fmt.Sprintf("%d. %s", i+1, n)))
		}
	}

	answer, err := getSimpleText(a.reader,
		a.style.Prompt("Which community would you like to add the moderator to? (Enter the number)"), a.out)
	if err != nil {
		return "", err
	}

	choice, err := ParseChoice(answer, len(names))
	if err != nil {
		return "", err
	}
	return names[choice], nil
}
