package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/housesell/internal/config"
	"github.com/dmitrijs2005/housesell/internal/filex"
	"github.com/dmitrijs2005/housesell/internal/logging"
	"github.com/dmitrijs2005/housesell/internal/models"
	"github.com/dmitrijs2005/housesell/internal/repositories/kv"
	"github.com/dmitrijs2005/housesell/internal/services"
)

// sessionService is the part of services.SessionManager the client uses.
type sessionService interface {
	Signup(ctx context.Context, email, password string) (models.PublicUser, error)
	Login(ctx context.Context, email, password string) (models.PublicUser, error)
	Logout(ctx context.Context) error
	CurrentSession() (models.PublicUser, bool)
	PasswordStrength(password string) models.PasswordStrength
	MinPasswordLength() int
}

// listingService is the part of services.ListingStore the client uses.
type listingService interface {
	List(ctx context.Context) ([]models.Property, error)
	Get(ctx context.Context, id string) (models.Property, error)
	Create(ctx context.Context, in models.PropertyInput, owner *models.PublicUser) (models.Property, error)
	Update(ctx context.Context, id string, in models.PropertyInput, requester *models.PublicUser) (models.Property, error)
	Delete(ctx context.Context, id string, requester *models.PublicUser) error
	EditableBy(ctx context.Context, id string, requester *models.PublicUser) (models.Property, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Property, error)
}

type App struct {
	config   *config.Config
	store    kv.Store
	sessions sessionService
	listings listingService
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp opens the configured store and builds the services on top of it.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Discard()
	}

	store, err := openStore(ctx, c)
	if err != nil {
		return nil, err
	}

	sessions, err := services.NewSessionManager(ctx, store, services.SessionOptions{
		MinPasswordLength: c.MinPasswordLength,
		Logger:            log,
	})
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	listings, err := services.NewListingStore(ctx, store, services.ListingOptions{
		SeedSamples: c.SeedSamples,
		Logger:      log,
	})
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &App{
		config:   c,
		store:    store,
		sessions: sessions,
		listings: listings,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func openStore(ctx context.Context, c *config.Config) (kv.Store, error) {
	opts := kv.Options{
		Backend:     c.Backend,
		BusyTimeout: c.SQLiteBusyTimeout,
		PostgresDSN: c.PostgresDSN,
	}
	if c.Backend == kv.BackendSQLite {
		path := c.SQLitePath()
		if _, err := filex.EnsureDir(filepath.Dir(path)); err != nil {
			return nil, fmt.Errorf("prepare data directory: %w", err)
		}
		opts.SQLitePath = path
	}
	return kv.Open(ctx, opts)
}

// Run starts the REPL and closes the store when it returns.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.Close(); err != nil {
			a.log.Error(ctx, "failed to close store", "error", err)
		}
	}()
	a.Root(ctx)
}

// Root prints the banner and runs the REPL on the app's input.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, titleStyle.Render("Welcome to HouseSell")+" (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

func (a *App) isLoggedIn() bool {
	_, ok := a.sessions.CurrentSession()
	return ok
}

// currentUser returns the session identity, or nil when logged out.
func (a *App) currentUser() *models.PublicUser {
	u, ok := a.sessions.CurrentSession()
	if !ok {
		return nil
	}
	return &u
}

func (a *App) getStatus() string {
	if u := a.currentUser(); u != nil {
		return "(" + u.Email + ")"
	}
	return ""
}
