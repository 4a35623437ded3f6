package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pstuifzand/op.nvim/internal/editor"
	"github.com/pstuifzand/op.nvim/internal/logger"
	"github.com/pstuifzand/op.nvim/internal/mock"
	"github.com/pstuifzand/op.nvim/models"
)

// wizardPrompter scripts the selection loop: every round picks the first
// remaining candidate and answers the name prompt from a queue. A negative
// remaining budget dismisses the selection dialog.
type wizardPrompter struct {
	names       []string // "" answers the name prompt with empty input
	rounds      int      // rounds before the selection dialog is dismissed
	selectCalls int
}

func (p *wizardPrompter) Input(_ context.Context, _, initial string) (string, error) {
	if len(p.names) == 0 {
		return initial, nil
	}
	name := p.names[0]
	p.names = p.names[1:]
	if name == "" {
		return "", nil
	}
	return name, nil
}

func (p *wizardPrompter) Select(_ context.Context, _ string, options []string) (int, error) {
	if p.selectCalls >= p.rounds {
		return 0, editor.ErrCancelled
	}
	p.selectCalls++
	if len(options) == 0 {
		return 0, editor.ErrCancelled
	}
	return 0, nil
}

func (p *wizardPrompter) Confirm(context.Context, string, []string) (int, error) {
	return 0, editor.ErrCancelled
}

func newBuildFixture(t *testing.T, ctrl *gomock.Controller, prompter editor.Prompter) (*itemBuildService, *mock.MockItemGateway, *recordingNotifier) {
	t.Helper()

	gw := mock.NewMockItemGateway(ctrl)
	notifier := &recordingNotifier{}
	svc := NewItemBuildService(gw, prompter, notifier, logger.Nop())
	return svc.(*itemBuildService), gw, notifier
}

func TestCreateFromCandidates_AllAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prompter := &wizardPrompter{
		rounds: 3,
		names:  []string{"username", "password", "website"},
	}
	svc, gw, notifier := newBuildFixture(t, ctrl, prompter)

	candidates := []string{"alice", "s3cr3t!", "https://example.com"}

	gw.EXPECT().
		CreateItem(gomock.Any(), "my login", "vault-1", models.Login, gomock.Any()).
		DoAndReturn(func(_ context.Context, title, _ string, _ models.Category, fields []models.ItemField) (models.Item, error) {
			require.Len(t, fields, 3)
			assert.Equal(t, "username", fields[0].Label)
			assert.Equal(t, "alice", fields[0].Value)
			assert.Equal(t, "URL", fields[2].Type)
			return models.Item{ID: "item-new", Title: title}, nil
		})

	item, err := svc.CreateFromCandidates(context.Background(), "my login", "vault-1", candidates)
	require.NoError(t, err)
	assert.Equal(t, "item-new", item.ID)
	assert.Len(t, notifier.infos, 1)
}

func TestCreateFromCandidates_EmptyTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, notifier := newBuildFixture(t, ctrl, &wizardPrompter{})

	_, err := svc.CreateFromCandidates(context.Background(), "", "vault-1", []string{"x"})
	assert.ErrorIs(t, err, ErrValidationEmptyTitle)
	assert.Len(t, notifier.errors, 1)
}

func TestCreateFromCandidates_NoCandidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, notifier := newBuildFixture(t, ctrl, &wizardPrompter{})

	_, err := svc.CreateFromCandidates(context.Background(), "title", "vault-1", []string{"", "  "})
	assert.ErrorIs(t, err, ErrValidationNoCandidates)
	assert.Len(t, notifier.errors, 1)
}

func TestCreateFromCandidates_ImmediateDismissal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, notifier := newBuildFixture(t, ctrl, &wizardPrompter{rounds: 0})

	_, err := svc.CreateFromCandidates(context.Background(), "title", "vault-1", []string{"a", "b"})
	assert.ErrorIs(t, err, ErrValidationNoFields)
	assert.Len(t, notifier.errors, 1)
}

func TestCreateFromCandidates_EmptyNameGetsConsolidatedError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prompter := &wizardPrompter{
		rounds: 2,
		names:  []string{"good", ""}, // second field left unnamed
	}
	svc, _, notifier := newBuildFixture(t, ctrl, prompter)
	// no CreateItem EXPECT: validation must stop before the remote call

	_, err := svc.CreateFromCandidates(context.Background(), "title", "vault-1", []string{"one", "two"})
	assert.ErrorIs(t, err, ErrValidationInvalidFields)

	require.Len(t, notifier.errors, 1, "one consolidated message, not per-field errors")
	assert.Contains(t, notifier.errors[0], "1 of 2")
}

func TestCollectFields_TerminatesWithinNRounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	candidates := []string{"a", "b", "c", "d", "e"}
	for dismissAfter := 0; dismissAfter <= len(candidates); dismissAfter++ {
		prompter := &wizardPrompter{
			rounds: dismissAfter,
			names:  []string{"n1", "n2", "n3", "n4", "n5"},
		}
		svc, _, _ := newBuildFixture(t, ctrl, prompter)

		fields, err := svc.collectFields(context.Background(), append([]string(nil), candidates...))
		require.NoError(t, err)
		assert.Len(t, fields, dismissAfter)
		assert.LessOrEqual(t, prompter.selectCalls, len(candidates))
	}
}

func TestDedupeCandidates(t *testing.T) {
	got := dedupeCandidates([]string{" a ", "a", "", "b", "a", "c", "b"})
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestClassifyCandidate(t *testing.T) {
	tests := []struct {
		value    string
		wantName string
		wantType string
	}{
		{"alice@example.com", "email", "STRING"},
		{"https://example.com/login", "url", "URL"},
		{"483920", "one-time password", "OTP"},
		{"4111 1111 1111 1111", "card number", "STRING"},
		{"+31 20 123 4567", "phone", "PHONE"},
		{"12345", "number", "STRING"},
		{"hunter2", "text", "STRING"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			name, fieldType := ClassifyCandidate(tt.value)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantType, fieldType)
		})
	}
}
