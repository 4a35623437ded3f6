package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pstuifzand/op.nvim/internal/editor"
)

type promptKind int

const (
	promptInput promptKind = iota
	promptSelect
	promptConfirm
)

// promptRequestMsg carries a blocking prompt from an engine goroutine into
// the running program. The model answers on reply exactly once.
type promptRequestMsg struct {
	kind    promptKind
	prompt  string
	initial string
	options []string
	reply   chan promptReply
}

type promptReply struct {
	text      string
	index     int
	cancelled bool
}

// Prompter implements [editor.Prompter] on top of a running bubbletea
// program. Engine goroutines block on a reply channel while the model shows
// an overlay; dismissal maps to [editor.ErrCancelled].
//
// A Prompter starts detached so the services that depend on it can be
// constructed before the program exists; Attach is called once the program
// is running. Prompting while detached reports cancellation.
type Prompter struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func NewPrompter() *Prompter {
	return &Prompter{}
}

// Attach binds the prompter to a running program's message queue.
func (p *Prompter) Attach(send func(tea.Msg)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.send = send
}

func (p *Prompter) Input(ctx context.Context, prompt, initial string) (string, error) {
	r, err := p.ask(ctx, promptRequestMsg{kind: promptInput, prompt: prompt, initial: initial})
	if err != nil {
		return "", err
	}
	return r.text, nil
}

func (p *Prompter) Select(ctx context.Context, prompt string, options []string) (int, error) {
	r, err := p.ask(ctx, promptRequestMsg{kind: promptSelect, prompt: prompt, options: options})
	if err != nil {
		return 0, err
	}
	return r.index, nil
}

func (p *Prompter) Confirm(ctx context.Context, prompt string, choices []string) (int, error) {
	r, err := p.ask(ctx, promptRequestMsg{kind: promptConfirm, prompt: prompt, options: choices})
	if err != nil {
		return 0, err
	}
	return r.index, nil
}

func (p *Prompter) ask(ctx context.Context, req promptRequestMsg) (promptReply, error) {
	p.mu.Lock()
	send := p.send
	p.mu.Unlock()
	if send == nil {
		return promptReply{}, editor.ErrCancelled
	}

	req.reply = make(chan promptReply, 1)
	send(req)

	select {
	case <-ctx.Done():
		return promptReply{}, ctx.Err()
	case r := <-req.reply:
		if r.cancelled {
			return promptReply{}, editor.ErrCancelled
		}
		return r, nil
	}
}

// Notifier implements [editor.Notifier] by pushing notices onto the
// program's message queue. Notices posted while detached are dropped.
type Notifier struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

// Attach binds the notifier to a running program's message queue.
func (n *Notifier) Attach(send func(tea.Msg)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.send = send
}

func (n *Notifier) Info(message string) {
	n.post(noticeMsg{text: message})
}

func (n *Notifier) Error(message string) {
	n.post(noticeMsg{text: message, isError: true})
}

func (n *Notifier) post(msg noticeMsg) {
	n.mu.Lock()
	send := n.send
	n.mu.Unlock()
	if send != nil {
		send(msg)
	}
}
