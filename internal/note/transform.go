// Package note converts between a remote item's note-body field and the
// ordered line sequence shown in an editable document.
//
// Both directions are pure and total: an item without a note body yields an
// empty single-line document rather than an error, and joining the lines
// back is a left-inverse of the split up to line-ending normalization.
package note

import (
	"strings"

	"github.com/pstuifzand/op.nvim/models"
)

// ToLines returns the display lines for the item's note body. CR-LF pairs
// are normalized to LF before splitting, so a reload never introduces
// carriage returns into the document.
func ToLines(item models.Item) []string {
	field := item.NoteField()
	if field == nil || field.Value == "" {
		return []string{""}
	}

	body := strings.ReplaceAll(field.Value, "\r\n", "\n")
	return strings.Split(body, "\n")
}

// ToFieldValue joins the edited lines back into the single note-body value
// pushed to the remote store.
func ToFieldValue(lines []string) string {
	return strings.Join(lines, "\n")
}
