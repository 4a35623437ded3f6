package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/pstuifzand/op.nvim/models"
)

type listModel struct {
	refs       []models.ItemRef
	idx        int
	loading    bool
	refreshing bool
	spinner    spinner.Model
	status     string
	lastErr    error

	searching bool
	search    textinput.Model
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	in := textinput.New()
	in.Prompt = "/"
	in.Placeholder = "search"

	return listModel{spinner: s, loading: true, search: in}
}

func (m listModel) visible() []models.ItemRef {
	query := strings.ToLower(strings.TrimSpace(m.search.Value()))
	if query == "" {
		return m.refs
	}

	var out []models.ItemRef
	for _, ref := range m.refs {
		if strings.Contains(strings.ToLower(ref.Title), query) {
			out = append(out, ref)
		}
	}
	return out
}

func (m listModel) current() (models.ItemRef, bool) {
	visible := m.visible()
	if len(visible) == 0 || m.idx < 0 || m.idx >= len(visible) {
		return models.ItemRef{}, false
	}
	return visible[m.idx], true
}

func (m *listModel) clampCursor() {
	visible := m.visible()
	if m.idx >= len(visible) {
		m.idx = len(visible) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func listIcon(c models.Category) string {
	switch c {
	case models.SecureNote:
		return "[N]"
	case models.Login:
		return "[L]"
	default:
		return "[?]"
	}
}

func (m listModel) View() string {
	header := titleStyle.Render("op.nvim")
	if m.refreshing {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	if m.searching || m.search.Value() != "" {
		out += m.search.View() + "\n\n"
	}

	visible := m.visible()
	if m.loading {
		out += "Loading...\n"
	} else if len(visible) == 0 {
		out += "No items\n"
	} else {
		for i, ref := range visible {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s %s\n", cursor, listIcon(ref.Category), ref.Title)
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}
	if m.lastErr != nil {
		out += "\n" + errorStyle.Render("Error: "+m.lastErr.Error()) + "\n"
	}

	out += "\n" + helpStyle.Render("n new note  r refresh  / search  c copy  d delete  q quit  enter open")
	return out
}
