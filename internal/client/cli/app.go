package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/dmitrijs2005/diradmin/internal/client/client"
	"github.com/dmitrijs2005/diradmin/internal/client/config"
	"github.com/dmitrijs2005/diradmin/internal/client/flows"
	"github.com/dmitrijs2005/diradmin/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/diradmin/internal/client/services"
	"github.com/dmitrijs2005/diradmin/internal/client/session"
	"github.com/dmitrijs2005/diradmin/internal/logging"
)

// imageTimeout bounds a single profile image probe.
const imageTimeout = 5 * time.Second

type App struct {
	config  *config.Config
	db      *sql.DB
	session *session.Session
	auth    services.AuthService
	login   *flows.Login
	users   *flows.UserList
	profile *flows.Profile
	nav     *terminalNavigator
	logger  logging.Logger

	identifier string
	reader     *bufio.Reader
	out        io.Writer
}

// NewApp opens the local state, restores the session and wires the flows
// to the terminal. The caller must Close the App.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	return newApp(ctx, c, os.Stdin, os.Stdout, logging.New(os.Stderr, c.LogLevel))
}

func newApp(ctx context.Context, c *config.Config, in io.Reader, out io.Writer, logger logging.Logger) (*App, error) {
	mode, err := flows.ParseSubmitMode(c.SubmitMode)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, c.StatePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.StatePath, "error", err)
		return nil, err
	}

	sess, err := session.Open(ctx, metadata.NewSQLiteRepository(db))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	api, err := client.New(c.APIBaseURL, c.Headers, sess, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := &App{
		config:  c,
		db:      db,
		session: sess,
		auth:    services.NewAuthService(api, sess, db, logger),
		nav:     &terminalNavigator{route: flows.RouteLogin},
		logger:  logger,
		reader:  bufio.NewReader(in),
		out:     out,
	}

	notifier := &terminalNotifier{out: out}
	dialog := &terminalDialog{reader: a.reader, out: out}
	opts := flows.DialogOptions{SubmitMode: mode, MatchPasswords: c.MatchPasswords}

	a.login = flows.NewLogin(a.auth, notifier, a.nav, logger)
	a.users = flows.NewUserList(api, notifier, dialog, logger, c.PageSize, opts)
	a.profile = flows.NewProfile(api, &http.Client{Timeout: imageTimeout}, c.PlaceholderImage, logger)
	return a, nil
}

// Run shows the user list when a stored session exists and the login prompt
// otherwise, then serves commands until the user exits or ctx is done. In
// the latter case ctx.Err() is returned.
func (a *App) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if a.isLoggedIn() {
		if acc, err := a.auth.Account(ctx); err == nil {
			a.identifier = acc.Identifier
		}
		fmt.Fprintln(a.out, "Restored previous session")
		a.nav.Navigate(flows.RouteUsers)
		_ = a.List(ctx)
	} else {
		_ = a.Login(ctx)
	}

	runREPL(ctx, a, a.status, a.reader)
	return ctx.Err()
}

// Close releases the local database.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	_, ok := a.session.Token()
	return ok
}

func (a *App) status() string {
	who := "guest"
	if a.isLoggedIn() {
		who = a.identifier
		if who == "" {
			who = "admin"
		}
	}
	return fmt.Sprintf("%s %s", who, a.nav.Route())
}
