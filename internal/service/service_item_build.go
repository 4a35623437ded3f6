package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pstuifzand/op.nvim/internal/editor"
	"github.com/pstuifzand/op.nvim/internal/gateway"
	"github.com/pstuifzand/op.nvim/internal/logger"
	"github.com/pstuifzand/op.nvim/models"
)

type itemBuildService struct {
	gateway  gateway.ItemGateway
	prompter editor.Prompter
	notifier editor.Notifier
	logger   *logger.Logger
}

// NewItemBuildService returns the wizard-driven item builder.
func NewItemBuildService(gw gateway.ItemGateway, prompter editor.Prompter, notifier editor.Notifier, log *logger.Logger) ItemBuildService {
	return &itemBuildService{gateway: gw, prompter: prompter, notifier: notifier, logger: log}
}

func (s *itemBuildService) CreateFromCandidates(ctx context.Context, title, vaultID string, candidates []string) (models.Item, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		s.notifier.Error(ErrValidationEmptyTitle.Error())
		return models.Item{}, ErrValidationEmptyTitle
	}

	pool := dedupeCandidates(candidates)
	if len(pool) == 0 {
		s.notifier.Error(ErrValidationNoCandidates.Error())
		return models.Item{}, ErrValidationNoCandidates
	}

	fields, err := s.collectFields(ctx, pool)
	if err != nil {
		return models.Item{}, fmt.Errorf("collect fields: %w", err)
	}
	if len(fields) == 0 {
		s.notifier.Error(ErrValidationNoFields.Error())
		return models.Item{}, ErrValidationNoFields
	}

	// one consolidated message for the whole batch, never per-field errors
	if invalid := countInvalidFields(fields); invalid > 0 {
		s.notifier.Error(fmt.Sprintf("%d of %d fields are missing a name or a value", invalid, len(fields)))
		return models.Item{}, ErrValidationInvalidFields
	}

	item, err := s.gateway.CreateItem(ctx, title, vaultID, models.Login, fields)
	if err != nil {
		s.notifier.Error(err.Error())
		return models.Item{}, fmt.Errorf("create item: %w", err)
	}

	s.notifier.Info(fmt.Sprintf("Created %q with %d fields", item.Title, len(fields)))
	return item, nil
}

// collectFields runs the selection loop over the remaining candidates. Each
// round removes exactly one candidate from the pool, whether it was accepted
// or discarded, so the loop terminates within len(pool) rounds. Dismissing
// the selection dialog ends the loop.
func (s *itemBuildService) collectFields(ctx context.Context, pool []string) ([]models.ItemField, error) {
	var fields []models.ItemField

	for len(pool) > 0 {
		idx, err := s.prompter.Select(ctx, "Add a value as a field", pool)
		if err != nil {
			if errors.Is(err, editor.ErrCancelled) {
				break
			}
			return nil, err
		}

		value := pool[idx]
		pool = append(pool[:idx], pool[idx+1:]...)

		suggested, fieldType := ClassifyCandidate(value)
		name, err := s.prompter.Input(ctx, "Field name", suggested)
		if err != nil && !errors.Is(err, editor.ErrCancelled) {
			return nil, err
		}

		name = strings.TrimSpace(name)
		if err != nil || name == "" {
			// candidate consumed but unusable: keep a placeholder so
			// the final validation reports it
			fields = append(fields, models.ItemField{Value: value})
			continue
		}

		fields = append(fields, models.ItemField{
			Type:  fieldType,
			Label: name,
			Value: value,
		})
	}

	return fields, nil
}

func dedupeCandidates(candidates []string) []string {
	seen := make(map[string]struct{}, len(candidates))
	pool := make([]string, 0, len(candidates))
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		pool = append(pool, c)
	}
	return pool
}

func countInvalidFields(fields []models.ItemField) int {
	var n int
	for _, f := range fields {
		if strings.TrimSpace(f.Label) == "" || strings.TrimSpace(f.Value) == "" {
			n++
		}
	}
	return n
}
