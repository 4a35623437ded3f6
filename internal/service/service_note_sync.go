// Package service implements the editing-session synchronization engine: the
// save and reload protocols between open documents and remote secure-note
// items, the conflict-resolution state machine, and the interactive field
// wizard for building new items.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/pstuifzand/op.nvim/internal/editor"
	"github.com/pstuifzand/op.nvim/internal/gateway"
	"github.com/pstuifzand/op.nvim/internal/logger"
	"github.com/pstuifzand/op.nvim/internal/note"
	"github.com/pstuifzand/op.nvim/internal/session"
	"github.com/pstuifzand/op.nvim/internal/utils"
	"github.com/pstuifzand/op.nvim/models"
)

// noteFieldAssignment is the edit-syntax target for the plain-note body.
const noteFieldAssignment = "notesPlain"

type noteSyncService struct {
	gateway  gateway.ItemGateway
	registry *session.Registry
	buffers  editor.Buffers
	prompter editor.Prompter
	notifier editor.Notifier
	uuidGen  *utils.UUIDGenerator
	logger   *logger.Logger
	filetype string

	// mu guards session state transitions so the per-session
	// single-flight check is atomic even when operations are driven from
	// separate goroutines.
	mu sync.Mutex
}

// NewNoteSyncService wires the sync engine to its collaborators. filetype is
// the content type assigned to note documents (e.g. "markdown").
func NewNoteSyncService(
	gw gateway.ItemGateway,
	registry *session.Registry,
	buffers editor.Buffers,
	prompter editor.Prompter,
	notifier editor.Notifier,
	log *logger.Logger,
	filetype string,
) NoteSyncService {
	if filetype == "" {
		filetype = "markdown"
	}
	return &noteSyncService{
		gateway:  gw,
		registry: registry,
		buffers:  buffers,
		prompter: prompter,
		notifier: notifier,
		uuidGen:  utils.NewUUIDGenerator(),
		logger:   log,
		filetype: filetype,
	}
}

func (s *noteSyncService) OpenNote(ctx context.Context, itemID, vaultID string) (string, error) {
	item, err := s.gateway.GetItem(ctx, itemID, vaultID)
	if err != nil {
		s.notifier.Error(err.Error())
		return "", fmt.Errorf("open note: %w", err)
	}

	documentID := s.openDocument(item)
	s.logger.Debug().Str("item", item.ID).Str("doc", documentID).Msg("note opened")
	s.notifier.Info(fmt.Sprintf("Opened %q", item.Title))
	return documentID, nil
}

func (s *noteSyncService) CreateNote(ctx context.Context, title, vaultID string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		s.notifier.Error(ErrValidationEmptyTitle.Error())
		return "", ErrValidationEmptyTitle
	}

	item, err := s.gateway.CreateItem(ctx, title, vaultID, models.SecureNote, nil)
	if err != nil {
		s.notifier.Error(err.Error())
		return "", fmt.Errorf("create note: %w", err)
	}

	documentID := s.openDocument(item)
	s.logger.Debug().Str("item", item.ID).Str("doc", documentID).Msg("note created")
	s.notifier.Info(fmt.Sprintf("Created secure note %q", item.Title))
	return documentID, nil
}

func (s *noteSyncService) Save(ctx context.Context, documentID string) error {
	sess := s.registry.Get(documentID)
	if sess == nil {
		s.notifier.Error(ErrNoActiveSession.Error())
		return ErrNoActiveSession
	}
	if !s.begin(sess) {
		s.notifier.Error(ErrSyncInFlight.Error())
		return ErrSyncInFlight
	}
	defer s.end(sess)

	return s.save(ctx, sess, documentID)
}

// save pushes the document content to the remote item. The caller holds the
// session's in-flight slot. Save never mutates document content; the
// modified flag is cleared only on confirmed success.
func (s *noteSyncService) save(ctx context.Context, sess *models.Session, documentID string) error {
	lines, err := s.buffers.Lines(documentID)
	if err != nil {
		s.notifier.Error(err.Error())
		return fmt.Errorf("save: %w", err)
	}

	assignment := gateway.FieldAssignment{
		Field: noteFieldAssignment,
		Value: note.ToFieldValue(lines),
	}
	if _, err = s.gateway.EditItem(ctx, sess.ItemID, sess.VaultID, assignment); err != nil {
		s.logger.Err(err).Str("item", sess.ItemID).Msg("save failed")
		s.notifier.Error(err.Error())
		return fmt.Errorf("save: %w", err)
	}

	if err = s.buffers.SetModified(documentID, false); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	s.notifier.Info(fmt.Sprintf("Saved %q", sess.Title))
	return nil
}

func (s *noteSyncService) Reload(ctx context.Context, documentID string) error {
	sess := s.registry.Get(documentID)
	if sess == nil {
		s.notifier.Error(ErrNoActiveSession.Error())
		return ErrNoActiveSession
	}
	if !s.begin(sess) {
		s.notifier.Error(ErrSyncInFlight.Error())
		return ErrSyncInFlight
	}
	defer s.end(sess)

	modified, err := s.buffers.Modified(documentID)
	if err != nil {
		s.notifier.Error(err.Error())
		return fmt.Errorf("reload: %w", err)
	}

	if modified {
		choice, err := s.resolveConflict(ctx, sess)
		if err != nil {
			return fmt.Errorf("reload: %w", err)
		}

		switch choice {
		case models.ChoiceCancel:
			s.notifier.Info("Reload cancelled, local changes kept")
			return nil
		case models.ChoiceOverwrite:
			return s.save(ctx, sess, documentID)
		case models.ChoiceDiscard:
			// proceed to fetch
		}
	}

	return s.fetch(ctx, sess, documentID)
}

// resolveConflict presents the three-way choice for a document with unsaved
// local edits. Prompt dismissal is routed to Cancel, never to an error.
func (s *noteSyncService) resolveConflict(ctx context.Context, sess *models.Session) (models.ConflictChoice, error) {
	s.transition(sess, models.StateAwaitingChoice)

	idx, err := s.prompter.Confirm(ctx,
		fmt.Sprintf("%q has unsaved local changes", sess.Title),
		[]string{"Overwrite remote copy", "Discard local changes", "Cancel"},
	)
	if err != nil {
		if errors.Is(err, editor.ErrCancelled) {
			return models.ChoiceCancel, nil
		}
		s.notifier.Error(err.Error())
		return models.ChoiceCancel, err
	}

	switch idx {
	case 0:
		return models.ChoiceOverwrite, nil
	case 1:
		return models.ChoiceDiscard, nil
	default:
		return models.ChoiceCancel, nil
	}
}

// fetch replaces the document content with the remote item's current body.
func (s *noteSyncService) fetch(ctx context.Context, sess *models.Session, documentID string) error {
	s.transition(sess, models.StateFetching)

	item, err := s.gateway.GetItem(ctx, sess.ItemID, sess.VaultID)
	if err != nil {
		s.logger.Err(err).Str("item", sess.ItemID).Msg("fetch failed")
		s.notifier.Error(err.Error())
		return fmt.Errorf("fetch: %w", err)
	}

	if err = s.buffers.ReplaceLines(documentID, note.ToLines(item)); err != nil {
		s.notifier.Error(err.Error())
		return fmt.Errorf("fetch: %w", err)
	}
	if err = s.buffers.SetModified(documentID, false); err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	if err = s.buffers.SetFiletype(documentID, s.filetype); err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	s.notifier.Info(fmt.Sprintf("Loaded latest %q", sess.Title))
	return nil
}

func (s *noteSyncService) Delete(ctx context.Context, documentID string) error {
	sess := s.registry.Get(documentID)
	if sess == nil {
		s.notifier.Error(ErrNoActiveSession.Error())
		return ErrNoActiveSession
	}
	if !s.begin(sess) {
		s.notifier.Error(ErrSyncInFlight.Error())
		return ErrSyncInFlight
	}

	if err := s.gateway.DeleteItem(ctx, sess.ItemID, sess.VaultID); err != nil {
		s.end(sess)
		s.notifier.Error(err.Error())
		return fmt.Errorf("delete: %w", err)
	}
	s.end(sess)

	// closing the document fires the closed trigger, which destroys the
	// session
	if err := s.buffers.Close(documentID); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	s.notifier.Info(fmt.Sprintf("Deleted %q", sess.Title))
	return nil
}

// openDocument allocates a document for item, registers the editing session
// and wires the lifecycle triggers.
func (s *noteSyncService) openDocument(item models.Item) string {
	documentID := s.buffers.Allocate(editor.AllocateOptions{
		Title:    item.Title,
		Filetype: s.filetype,
		Writable: true,
		Lines:    note.ToLines(item),
	})
	s.registry.Create(documentID, item)

	_ = s.buffers.RegisterTrigger(documentID, editor.EventWriteRequested, func(id string) {
		_ = s.Save(context.Background(), id)
	})
	_ = s.buffers.RegisterTrigger(documentID, editor.EventReadRequested, func(id string) {
		_ = s.Reload(context.Background(), id)
	})
	_ = s.buffers.RegisterTrigger(documentID, editor.EventClosed, func(id string) {
		s.registry.Destroy(id)
	})

	return documentID
}

// begin claims the session's single in-flight slot. It fails when another
// sync operation is pending for the same session.
func (s *noteSyncService) begin(sess *models.Session) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess.State != models.StateIdle || sess.PendingRequestID != "" {
		return false
	}
	sess.PendingRequestID = s.uuidGen.Generate()
	return true
}

func (s *noteSyncService) transition(sess *models.Session, state models.SyncState) {
	s.mu.Lock()
	sess.State = state
	s.mu.Unlock()
}

// end returns the session to Idle and releases the in-flight slot. Every
// terminal path of every operation runs through here.
func (s *noteSyncService) end(sess *models.Session) {
	s.mu.Lock()
	sess.State = models.StateIdle
	sess.PendingRequestID = ""
	s.mu.Unlock()
}
