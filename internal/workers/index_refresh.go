package workers

import (
	"context"
	"sync"
	"time"

	"github.com/pstuifzand/op.nvim/internal/gateway"
	"github.com/pstuifzand/op.nvim/internal/logger"
	"github.com/pstuifzand/op.nvim/internal/store"
)

// IndexRefresh periodically pulls the item listing from the remote store and
// swaps it into the local index so the picker stays current. One refresh runs
// immediately on Run, then every interval until Stop.
type IndexRefresh struct {
	gateway  gateway.ItemGateway
	index    store.ItemIndex
	vaultID  string
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewIndexRefresh creates an IndexRefresh worker. If interval is zero or
// negative it defaults to 5 minutes. An empty vaultID refreshes all vaults.
func NewIndexRefresh(gw gateway.ItemGateway, index store.ItemIndex, vaultID string, interval time.Duration, log *logger.Logger) *IndexRefresh {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &IndexRefresh{
		gateway:  gw,
		index:    index,
		vaultID:  vaultID,
		interval: interval,
		logger:   log,
	}
}

// Run implements Worker. It stops any previously running refresh loop, then
// launches a background goroutine that refreshes the index every interval.
// The goroutine exits when Stop is called.
func (w *IndexRefresh) Run() {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		w.refresh(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.refresh(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has fully
// exited. Safe to call when the worker is not running.
func (w *IndexRefresh) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *IndexRefresh) refresh(ctx context.Context) {
	refs, err := w.gateway.ListItems(ctx, w.vaultID)
	if err != nil {
		w.logger.Err(err).Msg("item index refresh: list items")
		return
	}

	if err = w.index.ReplaceAll(ctx, refs); err != nil {
		w.logger.Err(err).Msg("item index refresh: replace index")
		return
	}

	w.logger.Debug().Int("items", len(refs)).Msg("item index refreshed")
}
