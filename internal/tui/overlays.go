package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
)

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Error") + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter / esc close")
	return overlayBoxStyle.Render(content)
}

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := "Delete \"" + m.message + "\"?\n\n"
	content += helpStyle.Render("y yes    n no")
	return overlayBoxStyle.Render(content)
}

// promptModel renders an active engine prompt. The pending request's reply
// channel is answered exactly once, either with the user's choice or with a
// cancellation on dismissal.
type promptModel struct {
	req   promptRequestMsg
	input textinput.Model
	idx   int
}

func newPromptModel(req promptRequestMsg) promptModel {
	in := textinput.New()
	in.SetValue(req.initial)
	in.CursorEnd()
	in.Focus()
	return promptModel{req: req, input: in}
}

func (m promptModel) answer() {
	switch m.req.kind {
	case promptInput:
		m.req.reply <- promptReply{text: m.input.Value()}
	default:
		m.req.reply <- promptReply{index: m.idx}
	}
}

func (m promptModel) dismiss() {
	m.req.reply <- promptReply{cancelled: true}
}

func (m promptModel) View() string {
	content := m.req.prompt + "\n\n"

	switch m.req.kind {
	case promptInput:
		content += m.input.View() + "\n\n"
		content += helpStyle.Render("enter accept  esc cancel")
	default:
		for i, option := range m.req.options {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			content += fmt.Sprintf("%s%s\n", cursor, option)
		}
		content += "\n" + helpStyle.Render("enter choose  esc cancel")
	}

	return overlayBoxStyle.Render(content)
}
