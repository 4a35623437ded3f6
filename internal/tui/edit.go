package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"

	"github.com/pstuifzand/op.nvim/internal/editor"
)

type editModel struct {
	documentID string
	title      string
	textarea   textarea.Model
	status     string
	busy       bool
}

func newEditModel() editModel {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	return editModel{textarea: ta}
}

// open points the editor at a freshly opened document and loads its content.
func (m *editModel) open(documentID, title string, buffers editor.Buffers) error {
	m.documentID = documentID
	m.title = title
	m.status = ""
	m.busy = false
	if err := m.loadFromBuffer(buffers); err != nil {
		return err
	}
	m.textarea.Focus()
	return nil
}

// loadFromBuffer renders the document's current lines into the textarea.
func (m *editModel) loadFromBuffer(buffers editor.Buffers) error {
	lines, err := buffers.Lines(m.documentID)
	if err != nil {
		return err
	}
	m.textarea.SetValue(strings.Join(lines, "\n"))
	return nil
}

// syncToBuffer pushes the textarea content into the document. Untouched
// content is left alone so the unsaved-changes flag stays accurate.
func (m *editModel) syncToBuffer(buffers editor.Buffers) error {
	current, err := buffers.Lines(m.documentID)
	if err != nil {
		return err
	}

	lines := strings.Split(m.textarea.Value(), "\n")
	if equalLines(current, lines) {
		return nil
	}
	return buffers.ReplaceLines(m.documentID, lines)
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (m editModel) View() string {
	out := titleStyle.Render(m.title) + "\n\n"
	out += m.textarea.View() + "\n"

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("ctrl+s save  ctrl+r reload  ctrl+b item from lines  esc close")
	return out
}
