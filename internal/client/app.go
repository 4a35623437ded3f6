package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/pstuifzand/op.nvim/internal/config"
	"github.com/pstuifzand/op.nvim/internal/editor"
	"github.com/pstuifzand/op.nvim/internal/gateway"
	"github.com/pstuifzand/op.nvim/internal/logger"
	"github.com/pstuifzand/op.nvim/internal/service"
	"github.com/pstuifzand/op.nvim/internal/session"
	"github.com/pstuifzand/op.nvim/internal/store"
	"github.com/pstuifzand/op.nvim/internal/tui"
	"github.com/pstuifzand/op.nvim/internal/workers"
)

type App struct {
	gateway gateway.ItemGateway
	index   store.ItemIndex
	refresh *workers.IndexRefresh
	ui      *tui.TUI
	logger  *logger.Logger
}

// NewApp assembles the full client from configuration: gateway, local item
// index, sync engine, background refresh, and the terminal UI.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	gw, err := newGateway(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create gateway: %w", err)
	}

	vaultID := cfg.Notes.DefaultVault
	if vaultID != "" {
		// The configured vault may be a name; the Connect API only accepts
		// ids, so resolve it up front. Resolution failures keep the raw
		// value, which the op CLI accepts either way.
		if id, err := resolveVault(context.Background(), gw, vaultID); err != nil {
			log.Warn().Err(err).Str("vault", vaultID).Msg("vault resolution failed")
		} else {
			vaultID = id
		}
	}

	db, err := store.NewConnectSQLite(context.Background(), cfg.Storage.DB.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("open item index: %w", err)
	}
	index := store.NewItemIndex(db, log)

	buffers := editor.NewMemoryBuffers()
	registry := session.NewRegistry()
	prompter := tui.NewPrompter()
	notifier := tui.NewNotifier()

	engine := service.NewNoteSyncService(gw, registry, buffers, prompter, notifier, log, cfg.Notes.Filetype)
	builder := service.NewItemBuildService(gw, prompter, notifier, log)

	refresh := workers.NewIndexRefresh(gw, index, vaultID, cfg.Workers.RefreshInterval, log)

	ui, err := tui.New(tui.Deps{
		Engine:       engine,
		Builder:      builder,
		Index:        index,
		Gateway:      gw,
		Buffers:      buffers,
		Prompter:     prompter,
		Notifier:     notifier,
		DefaultVault: vaultID,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		gateway: gw,
		index:   index,
		refresh: refresh,
		ui:      ui,
		logger:  log,
	}, nil
}

func (a *App) Run() error {
	ctx := context.Background()
	defer func() { _ = a.index.Close() }()

	// The cli gateway can tell whether the user is signed in before the
	// UI starts; a failed check is only a warning because op may prompt
	// for authentication on first use.
	if accounts, ok := a.gateway.(gateway.AccountGateway); ok {
		account, err := accounts.Whoami(ctx)
		if err != nil {
			a.logger.Warn().Err(err).Msg("whoami check failed")
		} else {
			a.logger.Info().Str("account", account).Msg("signed in")
		}
	}

	workers.NewWorkers(a.refresh).Run()
	defer a.refresh.Stop()

	return a.ui.Run(ctx)
}

// resolveVault maps a vault name or id to the vault id known to the remote
// store. Ids pass through on exact match; names match case-insensitively.
func resolveVault(ctx context.Context, gw gateway.ItemGateway, nameOrID string) (string, error) {
	vaults, err := gw.ListVaults(ctx)
	if err != nil {
		return "", fmt.Errorf("list vaults: %w", err)
	}

	for _, v := range vaults {
		if v.ID == nameOrID || strings.EqualFold(v.Name, nameOrID) {
			return v.ID, nil
		}
	}
	return "", fmt.Errorf("no vault named %q", nameOrID)
}

func newGateway(cfg *config.ClientConfig, log *logger.Logger) (gateway.ItemGateway, error) {
	switch cfg.Gateway.Mode {
	case config.GatewayModeConnect:
		return gateway.NewConnectGateway(gateway.ConnectConfig{
			Host:    cfg.Gateway.ConnectHost,
			Token:   cfg.Gateway.ConnectToken,
			Timeout: cfg.Gateway.RequestTimeout,
		}, log)
	case config.GatewayModeCLI:
		invoker := gateway.NewExecInvoker(cfg.Gateway.BinaryPath, cfg.Gateway.Account, log)
		return gateway.NewCLIGateway(invoker, log), nil
	default:
		return nil, fmt.Errorf("unknown gateway mode %q", cfg.Gateway.Mode)
	}
}
