// Package cli is the interactive shell over the session and collection
// stores. Every command is a thin wrapper: prompt, validate, call a store,
// render. State lives in the stores, not here.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/maintdesk/maintdesk/internal/client/api"
	"github.com/maintdesk/maintdesk/internal/client/config"
	"github.com/maintdesk/maintdesk/internal/client/filter"
	"github.com/maintdesk/maintdesk/internal/client/session"
	"github.com/maintdesk/maintdesk/internal/client/storage"
	"github.com/maintdesk/maintdesk/internal/client/store"
	"github.com/maintdesk/maintdesk/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the client together and carries the per-run state the REPL
// needs: session, stores, and the restored filter preferences.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	settings *storage.Store

	session  *session.Session
	tickets  *store.TicketStore
	machines *store.MachineStore
	statuses *store.StatusStore
	users    *store.UserStore
	chat     *store.ChatStore
	overview *store.OverviewStore

	ticketFilter  filter.TicketFilter
	machineFilter filter.MachineFilter
	userFilter    filter.UserFilter

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local settings database and builds the API client,
// session, and stores on top of it.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening settings db: %w", err)
	}

	settings := storage.New(db)
	client := api.NewHTTPClient(cfg.BaseURL, settings, log, cfg.RequestTimeout)

	return &App{
		config:   cfg,
		log:      log,
		db:       db,
		settings: settings,
		session:  session.New(client, settings, log),
		tickets:  store.NewTicketStore(client, log),
		machines: store.NewMachineStore(client, log),
		statuses: store.NewStatusStore(client, log),
		users:    store.NewUserStore(client, log),
		chat:     store.NewChatStore(client, log),
		overview: store.NewOverviewStore(client, log),

		ticketFilter:  filter.DefaultTicketFilter(),
		machineFilter: filter.MachineFilter{},
		userFilter:    filter.DefaultUserFilter(),

		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run restores preferences, resolves the stored session, and hands control
// to the REPL. Preferences are persisted on the way out.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	a.restoreFilters(ctx)

	if state := a.session.Check(ctx); state == session.StateAuthenticated {
		fmt.Fprintf(a.out, "Welcome back, %s.\n", a.session.User().Name)
	} else {
		fmt.Fprintln(a.out, "Welcome to maintdesk. Type 'login' or 'register' to begin, 'help' for commands.")
	}

	runREPL(ctx, a, a.statusLine, bufio.NewScanner(os.Stdin), a.out)

	return a.persistFilters(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == session.StateAuthenticated
}

// statusLine is the prompt suffix: user and role when logged in.
func (a *App) statusLine() string {
	u := a.session.User()
	if u == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", u.Username, u.Role)
}

func (a *App) restoreFilters(ctx context.Context) {
	if _, err := a.settings.LoadFilter(ctx, "tickets", &a.ticketFilter); err != nil {
		a.log.Warn(ctx, "restoring ticket filter failed", "err", err)
	}
	if _, err := a.settings.LoadFilter(ctx, "machines", &a.machineFilter); err != nil {
		a.log.Warn(ctx, "restoring machine filter failed", "err", err)
	}
	if _, err := a.settings.LoadFilter(ctx, "users", &a.userFilter); err != nil {
		a.log.Warn(ctx, "restoring user filter failed", "err", err)
	}
}

func (a *App) persistFilters(ctx context.Context) error {
	return storage.SaveAllFilters(ctx, a.db, map[string]any{
		"tickets":  a.ticketFilter,
		"machines": a.machineFilter,
		"users":    a.userFilter,
	})
}
