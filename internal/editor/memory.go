package editor

import (
	"fmt"
	"sync"
)

type document struct {
	id       string
	title    string
	filetype string
	writable bool
	lines    []string
	modified bool
	triggers map[Event][]TriggerFunc
}

// MemoryBuffers is an in-memory [Buffers] implementation. The TUI projects
// its editing screen onto it and tests drive the sync engine through it.
type MemoryBuffers struct {
	mu     sync.RWMutex
	nextID int
	docs   map[string]*document
}

// NewMemoryBuffers returns an empty document table.
func NewMemoryBuffers() *MemoryBuffers {
	return &MemoryBuffers{docs: make(map[string]*document)}
}

func (b *MemoryBuffers) Allocate(opts AllocateOptions) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := fmt.Sprintf("doc-%d", b.nextID)

	lines := opts.Lines
	if len(lines) == 0 {
		lines = []string{""}
	}

	b.docs[id] = &document{
		id:       id,
		title:    opts.Title,
		filetype: opts.Filetype,
		writable: opts.Writable,
		lines:    append([]string(nil), lines...),
		triggers: make(map[Event][]TriggerFunc),
	}
	return id
}

func (b *MemoryBuffers) Lines(documentID string) ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	doc, ok := b.docs[documentID]
	if !ok {
		return nil, fmt.Errorf("lines %s: %w", documentID, ErrNoDocument)
	}
	return append([]string(nil), doc.lines...), nil
}

func (b *MemoryBuffers) ReplaceLines(documentID string, lines []string) error {
	b.mu.Lock()
	doc, ok := b.docs[documentID]
	if !ok {
		b.mu.Unlock()
		return fmt.Errorf("replace lines %s: %w", documentID, ErrNoDocument)
	}

	doc.lines = append([]string(nil), lines...)
	doc.modified = true
	fns := append([]TriggerFunc(nil), doc.triggers[EventContentChanged]...)
	b.mu.Unlock()

	for _, fn := range fns {
		fn(documentID)
	}
	return nil
}

func (b *MemoryBuffers) Modified(documentID string) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	doc, ok := b.docs[documentID]
	if !ok {
		return false, fmt.Errorf("modified %s: %w", documentID, ErrNoDocument)
	}
	return doc.modified, nil
}

func (b *MemoryBuffers) SetModified(documentID string, modified bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	doc, ok := b.docs[documentID]
	if !ok {
		return fmt.Errorf("set modified %s: %w", documentID, ErrNoDocument)
	}
	doc.modified = modified
	return nil
}

func (b *MemoryBuffers) SetFiletype(documentID, filetype string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	doc, ok := b.docs[documentID]
	if !ok {
		return fmt.Errorf("set filetype %s: %w", documentID, ErrNoDocument)
	}
	doc.filetype = filetype
	return nil
}

// Filetype returns the document's current content type.
func (b *MemoryBuffers) Filetype(documentID string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	doc, ok := b.docs[documentID]
	if !ok {
		return "", fmt.Errorf("filetype %s: %w", documentID, ErrNoDocument)
	}
	return doc.filetype, nil
}

// Title returns the document's display name.
func (b *MemoryBuffers) Title(documentID string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	doc, ok := b.docs[documentID]
	if !ok {
		return "", fmt.Errorf("title %s: %w", documentID, ErrNoDocument)
	}
	return doc.title, nil
}

func (b *MemoryBuffers) RegisterTrigger(documentID string, event Event, fn TriggerFunc) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	doc, ok := b.docs[documentID]
	if !ok {
		return fmt.Errorf("register trigger %s: %w", documentID, ErrNoDocument)
	}
	doc.triggers[event] = append(doc.triggers[event], fn)
	return nil
}

// FireTrigger runs the handlers attached to event, in registration order.
// The TUI routes user actions (write, re-read) through this.
func (b *MemoryBuffers) FireTrigger(documentID string, event Event) error {
	b.mu.RLock()
	doc, ok := b.docs[documentID]
	if !ok {
		b.mu.RUnlock()
		return fmt.Errorf("fire trigger %s: %w", documentID, ErrNoDocument)
	}
	fns := append([]TriggerFunc(nil), doc.triggers[event]...)
	b.mu.RUnlock()

	for _, fn := range fns {
		fn(documentID)
	}
	return nil
}

func (b *MemoryBuffers) Close(documentID string) error {
	b.mu.Lock()
	doc, ok := b.docs[documentID]
	if !ok {
		b.mu.Unlock()
		return fmt.Errorf("close %s: %w", documentID, ErrNoDocument)
	}
	fns := append([]TriggerFunc(nil), doc.triggers[EventClosed]...)
	delete(b.docs, documentID)
	b.mu.Unlock()

	for _, fn := range fns {
		fn(documentID)
	}
	return nil
}

// Open reports whether documentID refers to an open document.
func (b *MemoryBuffers) Open(documentID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.docs[documentID]
	return ok
}
