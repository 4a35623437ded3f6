package tui

import (
	"github.com/pstuifzand/op.nvim/models"
)

type indexLoadedMsg struct {
	refs []models.ItemRef
	err  error
}

type refreshDoneMsg struct {
	err error
}

type noteOpenedMsg struct {
	documentID string
	err        error
}

type noteSavedMsg struct {
	err error
}

type noteReloadedMsg struct {
	err error
}

type noteDeletedMsg struct {
	err error
}

type itemBuiltMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}

// noticeMsg carries a user-visible notification from the sync engine.
type noticeMsg struct {
	text    string
	isError bool
}
