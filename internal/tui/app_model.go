package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pstuifzand/op.nvim/internal/editor"
	"github.com/pstuifzand/op.nvim/models"
)

type screen int

const (
	screenList screen = iota
	screenEdit
)

type appModel struct {
	ctx  context.Context
	deps Deps

	currentScreen screen
	list          listModel
	edit          editModel

	err           error
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete models.ItemRef
	prompt        *promptModel
}

func newAppModel(ctx context.Context, deps Deps) appModel {
	return appModel{
		ctx:           ctx,
		deps:          deps,
		currentScreen: screenList,
		list:          newListModel(),
		edit:          newEditModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return m.cmdLoadIndex()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case promptRequestMsg:
		pm := newPromptModel(msg)
		m.prompt = &pm
		return m, textinput.Blink
	case tea.KeyMsg:
		if m.prompt != nil {
			return m.updatePrompt(msg)
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete.ID == "" {
					return m, nil
				}
				return m, m.cmdDeleteRef(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = models.ItemRef{}
			}
			return m, nil
		}
	case noticeMsg:
		if msg.isError {
			m.showErrorf(msg.text)
			return m, nil
		}
		m.setStatus(msg.text)
		return m, cmdClearStatus()
	case indexLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.list.lastErr = msg.err
			return m, nil
		}
		m.list.lastErr = nil
		m.list.refs = msg.refs
		m.list.clampCursor()
		return m, nil
	case refreshDoneMsg:
		m.list.refreshing = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		return m, m.cmdLoadIndex()
	case noteOpenedMsg:
		if msg.err != nil {
			return m, nil
		}
		if msg.documentID == "" {
			return m, nil
		}
		if err := m.openEditor(msg.documentID); err != nil {
			m.showErrorf(err.Error())
			return m, nil
		}
		m.currentScreen = screenEdit
		return m, nil
	case noteSavedMsg:
		m.edit.busy = false
		return m, nil
	case noteReloadedMsg:
		m.edit.busy = false
		if msg.err == nil {
			if err := m.edit.loadFromBuffer(m.deps.Buffers); err != nil {
				m.showErrorf(err.Error())
			}
		}
		return m, nil
	case noteDeletedMsg:
		m.pendingDelete = models.ItemRef{}
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.list.refreshing = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdRefresh())
	case itemBuiltMsg:
		m.edit.busy = false
		if msg.err != nil && !errors.Is(msg.err, editor.ErrCancelled) {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		return m, nil
	case copiedMsg:
		m.setStatus("Copied!")
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.list.status = ""
		m.edit.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.list.refreshing {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.edit.textarea.SetWidth(msg.Width - 4)
		m.edit.textarea.SetHeight(msg.Height - 8)
		return m, nil
	}

	switch m.currentScreen {
	case screenList:
		return m.updateList(msg)
	case screenEdit:
		return m.updateEdit(msg)
	}
	return m, nil
}

func (m appModel) View() string {
	if m.prompt != nil {
		return appStyle.Render(m.prompt.View())
	}
	if m.showError {
		return appStyle.Render(m.errorOverlay.View())
	}
	if m.showConfirm {
		return appStyle.Render(m.confirm.View())
	}

	switch m.currentScreen {
	case screenEdit:
		return appStyle.Render(m.edit.View())
	default:
		return appStyle.Render(m.list.View())
	}
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setStatus(status string) {
	switch m.currentScreen {
	case screenEdit:
		m.edit.status = status
	default:
		m.list.status = status
	}
}

// openEditor binds the edit screen to a freshly opened document.
func (m *appModel) openEditor(documentID string) error {
	title, err := m.deps.Buffers.Title(documentID)
	if err != nil {
		return err
	}
	return m.edit.open(documentID, title, m.deps.Buffers)
}

func (m appModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	prompt := m.prompt

	switch {
	case key.Matches(msg, keys.esc):
		prompt.dismiss()
		m.prompt = nil
		return m, nil
	case key.Matches(msg, keys.enter):
		prompt.answer()
		m.prompt = nil
		return m, nil
	}

	if prompt.req.kind == promptInput {
		var cmd tea.Cmd
		prompt.input, cmd = prompt.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.up):
		if prompt.idx > 0 {
			prompt.idx--
		}
	case key.Matches(msg, keys.down):
		if prompt.idx < len(prompt.req.options)-1 {
			prompt.idx++
		}
	}
	return m, nil
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.list.searching {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.list.searching = false
			m.list.search.SetValue("")
			m.list.search.Blur()
			m.list.clampCursor()
		case key.Matches(keyMsg, keys.enter):
			m.list.searching = false
			m.list.search.Blur()
		default:
			var cmd tea.Cmd
			m.list.search, cmd = m.list.search.Update(msg)
			m.list.clampCursor()
			return m, cmd
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.visible())-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.search):
		m.list.searching = true
		m.list.search.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.enter):
		ref, ok := m.list.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdOpenNote(ref)
	case key.Matches(keyMsg, keys.newNote):
		return m, m.cmdNewNote()
	case key.Matches(keyMsg, keys.refresh):
		if m.list.refreshing {
			return m, nil
		}
		m.list.refreshing = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdRefresh())
	case key.Matches(keyMsg, keys.copy):
		ref, ok := m.list.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdCopy(ref)
	case key.Matches(keyMsg, keys.delete):
		ref, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = ref.Title
		m.pendingDelete = ref
		return m, nil
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.save):
			if m.edit.busy {
				return m, nil
			}
			if err := m.edit.syncToBuffer(m.deps.Buffers); err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			m.edit.busy = true
			return m, m.cmdSave(m.edit.documentID)
		case key.Matches(keyMsg, keys.reload):
			if m.edit.busy {
				return m, nil
			}
			if err := m.edit.syncToBuffer(m.deps.Buffers); err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			m.edit.busy = true
			return m, m.cmdReload(m.edit.documentID)
		case key.Matches(keyMsg, keys.wizard):
			if m.edit.busy {
				return m, nil
			}
			m.edit.busy = true
			return m, m.cmdBuildItem(strings.Split(m.edit.textarea.Value(), "\n"))
		case key.Matches(keyMsg, keys.esc):
			if err := m.deps.Buffers.Close(m.edit.documentID); err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			m.currentScreen = screenList
			return m, m.cmdLoadIndex()
		}
	}

	var cmd tea.Cmd
	m.edit.textarea, cmd = m.edit.textarea.Update(msg)
	return m, cmd
}

func (m appModel) cmdLoadIndex() tea.Cmd {
	ctx := m.ctx
	index := m.deps.Index
	vault := m.deps.DefaultVault
	return func() tea.Msg {
		refs, err := index.List(ctx, vault)
		return indexLoadedMsg{refs: refs, err: err}
	}
}

func (m appModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	gw := m.deps.Gateway
	index := m.deps.Index
	vault := m.deps.DefaultVault
	return func() tea.Msg {
		refs, err := gw.ListItems(ctx, vault)
		if err != nil {
			return refreshDoneMsg{err: err}
		}
		return refreshDoneMsg{err: index.ReplaceAll(ctx, refs)}
	}
}

func (m appModel) cmdOpenNote(ref models.ItemRef) tea.Cmd {
	ctx := m.ctx
	engine := m.deps.Engine
	return func() tea.Msg {
		documentID, err := engine.OpenNote(ctx, ref.ID, ref.VaultID)
		return noteOpenedMsg{documentID: documentID, err: err}
	}
}

func (m appModel) cmdNewNote() tea.Cmd {
	ctx := m.ctx
	engine := m.deps.Engine
	prompter := m.deps.Prompter
	vault := m.deps.DefaultVault
	return func() tea.Msg {
		title, err := prompter.Input(ctx, "Note title", "")
		if err != nil {
			return noteOpenedMsg{}
		}
		documentID, err := engine.CreateNote(ctx, title, vault)
		return noteOpenedMsg{documentID: documentID, err: err}
	}
}

func (m appModel) cmdSave(documentID string) tea.Cmd {
	ctx := m.ctx
	engine := m.deps.Engine
	return func() tea.Msg {
		return noteSavedMsg{err: engine.Save(ctx, documentID)}
	}
}

func (m appModel) cmdReload(documentID string) tea.Cmd {
	ctx := m.ctx
	engine := m.deps.Engine
	return func() tea.Msg {
		return noteReloadedMsg{err: engine.Reload(ctx, documentID)}
	}
}

func (m appModel) cmdDeleteRef(ref models.ItemRef) tea.Cmd {
	ctx := m.ctx
	gw := m.deps.Gateway
	return func() tea.Msg {
		return noteDeletedMsg{err: gw.DeleteItem(ctx, ref.ID, ref.VaultID)}
	}
}

func (m appModel) cmdBuildItem(lines []string) tea.Cmd {
	ctx := m.ctx
	builder := m.deps.Builder
	prompter := m.deps.Prompter
	notifier := m.deps.Notifier
	vault := m.deps.DefaultVault

	var candidates []string
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			candidates = append(candidates, line)
		}
	}

	return func() tea.Msg {
		title, err := prompter.Input(ctx, "Item title", "")
		if err != nil {
			return itemBuiltMsg{err: err}
		}
		item, err := builder.CreateFromCandidates(ctx, title, vault, candidates)
		if err != nil {
			return itemBuiltMsg{err: err}
		}
		notifier.Info(fmt.Sprintf("Created item %q", item.Title))
		return itemBuiltMsg{}
	}
}

func (m appModel) cmdCopy(ref models.ItemRef) tea.Cmd {
	ctx := m.ctx
	gw := m.deps.Gateway
	return func() tea.Msg {
		item, err := gw.GetItem(ctx, ref.ID, ref.VaultID)
		if err != nil {
			return noticeMsg{text: err.Error(), isError: true}
		}

		value := ""
		if field := item.NoteField(); field != nil {
			value = field.Value
		} else if len(item.Fields) > 0 {
			value = item.Fields[0].Value
		}

		if err := clipboard.WriteAll(value); err != nil {
			return noticeMsg{text: fmt.Sprintf("copy to clipboard: %v", err), isError: true}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
