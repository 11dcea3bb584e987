package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chem-crm/internal/docstore"
	"github.com/MKhiriev/go-chem-crm/internal/logger"
	"github.com/MKhiriev/go-chem-crm/internal/session"
	"github.com/MKhiriev/go-chem-crm/internal/tui"
)

// App owns the client process lifecycle: it pumps session transitions into
// the UI, blocks on the UI loop, and tears everything down on exit.
type App struct {
	sessions session.Manager
	store    docstore.DocumentStore
	ui       *tui.TUI
	log      *logger.Logger
}

func NewApp(sessions session.Manager, store docstore.DocumentStore, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if sessions == nil || store == nil || ui == nil {
		return nil, fmt.Errorf("client app: missing dependency")
	}
	return &App{sessions: sessions, store: store, ui: ui, log: log}, nil
}

// Run blocks until the user quits the UI. Session transitions observed while
// running are forwarded into the UI loop.
func (a *App) Run() error {
	ctx := context.Background()

	stop := a.sessions.Subscribe(a.ui.Notify)
	defer stop()

	runErr := a.ui.Run(ctx)

	a.sessions.Close()
	if err := a.store.Close(); err != nil {
		a.log.Warn().Str("func", "Run").Err(err).Msg("error occured during document store close")
	}

	return runErr
}
