package tui

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-chem-crm/internal/crm"
	"github.com/MKhiriev/go-chem-crm/internal/logger"
	"github.com/MKhiriev/go-chem-crm/internal/session"
	"github.com/MKhiriev/go-chem-crm/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit reports that the user left the program deliberately.
var ErrUserQuit = errors.New("user quit")

// Services bundles everything the terminal UI talks to.
type Services struct {
	Sessions     session.Manager
	Tasks        crm.TaskService
	PriceUpdates crm.PriceUpdateService
	OceanFreight crm.OceanFreightService
	Staff        crm.StaffService
}

// TUI runs the interactive terminal client.
type TUI struct {
	services Services

	mu      sync.Mutex
	program *tea.Program
}

func New(services Services, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// Run blocks until the user quits or the context is cancelled. The screen
// shown at any moment follows the session: splash while initializing, auth
// while signed out, the CRM menu while signed in.
func (t *TUI) Run(ctx context.Context) error {
	root := newAppModel(ctx, t.services)

	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	t.mu.Lock()
	t.program = program
	t.mu.Unlock()

	finalModel, err := program.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.err != nil && !errors.Is(result.err, ErrUserQuit) {
		return result.err
	}

	return nil
}

// Notify feeds a session transition into the running program. Safe to call
// before Run; transitions arriving that early are dropped and the model picks
// the state up at start.
func (t *TUI) Notify(s models.Session) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(sessionChangedMsg{session: s})
	}
}
