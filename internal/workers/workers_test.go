package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pstuifzand/op.nvim/internal/logger"
	"github.com/pstuifzand/op.nvim/internal/mock"
	"github.com/pstuifzand/op.nvim/models"
)

// countWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type countWorker struct {
	runCount int
}

func (m *countWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &countWorker{}
	w2 := &countWorker{}
	w3 := &countWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*countWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run()
}

func TestWorkers_Run_MultipleRuns(t *testing.T) {
	w := &countWorker{}
	ws := NewWorkers(w)

	ws.Run()
	ws.Run()
	ws.Run()

	if w.runCount != 3 {
		t.Errorf("expected runCount=3 after 3 calls, got %d", w.runCount)
	}
}

func TestIndexRefresh_RefreshesOnStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockItemGateway(ctrl)
	idx := mock.NewMockItemIndex(ctrl)

	refs := []models.ItemRef{{ID: "a", VaultID: "v1", Title: "alpha", Category: models.SecureNote}}
	replaced := make(chan struct{})

	gw.EXPECT().ListItems(gomock.Any(), "v1").Return(refs, nil)
	idx.EXPECT().ReplaceAll(gomock.Any(), refs).DoAndReturn(
		func(context.Context, []models.ItemRef) error {
			close(replaced)
			return nil
		})

	w := NewIndexRefresh(gw, idx, "v1", time.Hour, logger.Nop())
	w.Run()
	defer w.Stop()

	select {
	case <-replaced:
	case <-time.After(2 * time.Second):
		t.Fatal("index was not refreshed on start")
	}
}

func TestIndexRefresh_ListErrorSkipsReplace(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockItemGateway(ctrl)
	idx := mock.NewMockItemIndex(ctrl)

	listed := make(chan struct{})
	gw.EXPECT().ListItems(gomock.Any(), "").DoAndReturn(
		func(context.Context, string) ([]models.ItemRef, error) {
			close(listed)
			return nil, errors.New("connection refused")
		})

	w := NewIndexRefresh(gw, idx, "", time.Hour, logger.Nop())
	w.Run()

	select {
	case <-listed:
	case <-time.After(2 * time.Second):
		t.Fatal("gateway was not queried")
	}

	// ReplaceAll has no expectation: Stop waits for the goroutine, so a
	// stray call would be reported by the controller.
	w.Stop()
}

func TestIndexRefresh_StopIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockItemGateway(ctrl)
	idx := mock.NewMockItemIndex(ctrl)

	w := NewIndexRefresh(gw, idx, "", time.Hour, logger.Nop())
	w.Stop()
	w.Stop()
}

func TestIndexRefresh_DefaultInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := NewIndexRefresh(mock.NewMockItemGateway(ctrl), mock.NewMockItemIndex(ctrl), "", 0, logger.Nop())
	require.Equal(t, 5*time.Minute, w.interval)
}
