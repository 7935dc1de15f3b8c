package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/drawerfinder/internal/config"
	"github.com/dmitrijs2005/drawerfinder/internal/cryptox"
	"github.com/dmitrijs2005/drawerfinder/internal/logging"
	"github.com/dmitrijs2005/drawerfinder/internal/repositories/users"
	"github.com/dmitrijs2005/drawerfinder/internal/services"
	"github.com/dmitrijs2005/drawerfinder/internal/session"
	"github.com/dmitrijs2005/drawerfinder/internal/storage"
)

type App struct {
	authService      services.AuthService
	inventoryService services.InventoryService
	session          *session.Session
	reader           *bufio.Reader
	inFd             int
	out              io.Writer
	log              logging.Logger
	closeFn          func() error
}

// NewApp builds an App from c: logger on stderr, the configured storage
// backend, and the services on top of it. The credential store is
// bootstrapped before returning.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log, err := logging.New(c.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	hasher, err := cryptox.NewHasher(cryptox.Scheme(c.PasswordScheme))
	if err != nil {
		return nil, err
	}

	seed, err := users.SeedAdmin(hasher)
	if err != nil {
		return nil, err
	}

	repos, err := storage.Open(ctx, c, seed)
	if err != nil {
		log.Error(ctx, "error initializing storage", "storage", c.Storage, "err", err)
		return nil, err
	}

	as := services.NewAuthService(repos.Users, hasher, log)
	if err := as.Bootstrap(ctx); err != nil {
		_ = repos.Close()
		return nil, err
	}
	is := services.NewInventoryService(repos.Items, log)

	log.Debug(ctx, "storage ready", "storage", c.Storage)

	return &App{
		authService:      as,
		inventoryService: is,
		reader:           bufio.NewReader(os.Stdin),
		inFd:             int(os.Stdin.Fd()),
		out:              os.Stdout,
		log:              log,
		closeFn:          repos.Close,
	}, nil
}

// Run starts the REPL and releases storage when the user leaves.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.closeFn == nil {
			return
		}
		if err := a.closeFn(); err != nil {
			a.log.Warn(ctx, "closing storage", "err", err)
		}
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}

func (a *App) isAdmin() bool {
	return a.session.IsAdmin()
}
