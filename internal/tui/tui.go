package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pstuifzand/op.nvim/internal/editor"
	"github.com/pstuifzand/op.nvim/internal/gateway"
	"github.com/pstuifzand/op.nvim/internal/logger"
	"github.com/pstuifzand/op.nvim/internal/service"
	"github.com/pstuifzand/op.nvim/internal/store"
)

var ErrUserQuit = errors.New("user quit")

// Deps bundles everything the terminal frontend drives.
type Deps struct {
	Engine   service.NoteSyncService
	Builder  service.ItemBuildService
	Index    store.ItemIndex
	Gateway  gateway.ItemGateway
	Buffers  *editor.MemoryBuffers
	Prompter *Prompter
	Notifier *Notifier

	// DefaultVault scopes listings and creation; empty means all vaults.
	DefaultVault string
}

type TUI struct {
	deps   Deps
	logger *logger.Logger
}

func New(deps Deps, log *logger.Logger) (*TUI, error) {
	if deps.Prompter == nil || deps.Notifier == nil {
		return nil, errors.New("tui: prompter and notifier are required")
	}
	return &TUI{deps: deps, logger: log}, nil
}

// Run drives the main loop until the user quits or ctx is cancelled. The
// engine's prompts and notices are attached to the program's message queue
// for the duration of the run.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.deps)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.deps.Prompter.Attach(p.Send)
	t.deps.Notifier.Attach(p.Send)

	finalModel, runErr := p.Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if errors.Is(result.err, ErrUserQuit) {
		return nil
	}
	return result.err
}
