package cli

import (
	"bufio"
	"context"
	"database/sql"
	"net/http"
	"os"

	"github.com/estudiantes/revista/internal/client/api"
	"github.com/estudiantes/revista/internal/client/config"
	"github.com/estudiantes/revista/internal/client/repositories/metadata"
	"github.com/estudiantes/revista/internal/client/services"
	"github.com/estudiantes/revista/internal/client/session"
	"github.com/estudiantes/revista/internal/client/storage"
	"github.com/estudiantes/revista/internal/logging"
)

// App ties the configuration, the collaborator client, the session manager,
// and the workflow services to an interactive REPL.
type App struct {
	config      *config.Config
	log         logging.Logger
	client      api.Client
	db          *sql.DB
	session     *session.Manager
	submissions services.SubmissionService
	catalog     services.CatalogService
	reader      *bufio.Reader
}

// NewApp opens the local session database and wires the HTTP client, the
// session manager, and the services.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.Open(ctx, c.SessionDBPath)
	if err != nil {
		log.Error(ctx, "opening session database", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.ServerEndpointAddr, &http.Client{Timeout: c.RequestTimeout})

	sm := session.NewManager(apiClient, metadata.NewSQLiteRepository(db), log)

	return &App{
		config:      c,
		log:         log,
		client:      apiClient,
		db:          db,
		session:     sm,
		submissions: services.NewSubmissionService(apiClient, sm, log),
		catalog:     services.NewCatalogService(apiClient, sm, log),
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores a persisted session, starts the background session watcher,
// and enters the REPL. It blocks until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if identity, err := a.session.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	} else if identity != nil {
		printlnFn("Welcome back,", identity.Name)
	}

	go a.session.Watch(ctx, a.config.SessionCheckInterval)

	a.Root(ctx)
}

// Close releases the collaborator client and the local database.
func (a *App) Close() {
	if err := a.client.Close(); err != nil {
		a.log.Warn(context.Background(), "closing api client", "error", err)
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn(context.Background(), "closing session database", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Current() != nil
}

func (a *App) isAdmin() bool {
	identity := a.session.Current()
	return identity != nil && identity.IsAdmin()
}

func (a *App) getStatus() string {
	identity := a.session.Current()
	if identity == nil {
		return "(guest)"
	}
	return "(" + identity.Email + " " + string(identity.Role) + ")"
}
