// Package cli is the interactive terminal frontend for the MediApp
// client. It is a presentation collaborator: it renders what the api and
// session layers return and never interprets raw gateway shapes itself.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	"github.com/mediapp/client-go/internal/client/api"
	"github.com/mediapp/client-go/internal/client/config"
	"github.com/mediapp/client-go/internal/client/repositories/metadata"
	"github.com/mediapp/client-go/internal/client/session"
	"github.com/mediapp/client-go/internal/client/storage"
	"github.com/mediapp/client-go/internal/logging"
)

type App struct {
	cfg     *config.Config
	session *session.Manager

	users         *api.Users
	doctors       *api.Doctors
	bookings      *api.Bookings
	notifications *api.Notifications

	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger
}

// NewApp wires the full client stack: local database, token store, API
// client and session manager, then restores any persisted session.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Discard()
	}

	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	repo := metadata.NewSQLiteRepository(db)
	tokens := session.NewTokenStore(repo)

	// An admin token stored on this machine beats the built-in default but
	// not an explicitly configured one.
	adminToken := cfg.AdminToken
	if adminToken == "change-me" {
		if stored, err := repo.Get(ctx, "admin_token"); err == nil && len(stored) > 0 {
			adminToken = string(stored)
		}
	}

	client := api.New(api.Options{
		BaseURL:    cfg.BaseURL(),
		Tokens:     tokens,
		AdminToken: adminToken,
		HTTPClient: &http.Client{Timeout: cfg.RequestTimeout},
		Logger:     log,
	})

	manager := session.NewManager(client.Auth(), client.Users(), tokens, session.Options{
		EagerProfileFetch: cfg.EagerProfileFetch,
		Logger:            log,
	})
	if err := manager.Restore(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &App{
		cfg:           cfg,
		session:       manager,
		users:         client.Users(),
		doctors:       client.Doctors(),
		bookings:      client.Bookings(),
		notifications: client.Notifications(),
		db:            db,
		reader:        bufio.NewReader(os.Stdin),
		out:           os.Stdout,
		log:           log,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	runREPL(ctx, a, bufio.NewScanner(os.Stdin), a.out)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.session.IsAuthenticated(ctx)
}

// currentUserID resolves the id of the signed-in user, fetching the
// profile lazily when it has not been loaded yet.
func (a *App) currentUserID(ctx context.Context) (int64, error) {
	if user, ok := a.session.User(); ok {
		return user.UserID, nil
	}
	if err := a.session.FetchUser(ctx); err != nil {
		return 0, err
	}
	user, _ := a.session.User()
	return user.UserID, nil
}
