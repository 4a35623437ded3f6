package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pstuifzand/op.nvim/internal/logger"
	"github.com/pstuifzand/op.nvim/models"
)

func newTestIndex(t *testing.T) (ItemIndex, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewItemIndex(db, logger.Nop()), mock
}

func refRows(refs ...models.ItemRef) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "vault_id", "title", "category"})
	for _, r := range refs {
		rows.AddRow(r.ID, r.VaultID, r.Title, string(r.Category))
	}
	return rows
}

func TestItemIndex_ReplaceAll(t *testing.T) {
	idx, mock := newTestIndex(t)

	refs := []models.ItemRef{
		{ID: "a", VaultID: "v1", Title: "alpha", Category: models.SecureNote},
		{ID: "b", VaultID: "v2", Title: "beta", Category: models.Login},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM item_index").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO item_index (id,vault_id,title,category) VALUES (?,?,?,?)")).
		WithArgs("a", "v1", "alpha", "SECURE_NOTE").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO item_index (id,vault_id,title,category) VALUES (?,?,?,?)")).
		WithArgs("b", "v2", "beta", "LOGIN").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	require.NoError(t, idx.ReplaceAll(context.Background(), refs))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemIndex_ReplaceAll_RollsBackOnInsertError(t *testing.T) {
	idx, mock := newTestIndex(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM item_index").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO item_index").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := idx.ReplaceAll(context.Background(), []models.ItemRef{{ID: "a", VaultID: "v1"}})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemIndex_List_AllVaults(t *testing.T) {
	idx, mock := newTestIndex(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, vault_id, title, category FROM item_index ORDER BY title ASC")).
		WillReturnRows(refRows(
			models.ItemRef{ID: "a", VaultID: "v1", Title: "alpha", Category: models.SecureNote},
			models.ItemRef{ID: "b", VaultID: "v2", Title: "beta", Category: models.Login},
		))

	refs, err := idx.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, models.SecureNote, refs[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemIndex_List_VaultFilter(t *testing.T) {
	idx, mock := newTestIndex(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, vault_id, title, category FROM item_index WHERE vault_id = ? ORDER BY title ASC")).
		WithArgs("v1").
		WillReturnRows(refRows(models.ItemRef{ID: "a", VaultID: "v1", Title: "alpha"}))

	refs, err := idx.List(context.Background(), "v1")
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "v1", refs[0].VaultID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemIndex_List_Empty(t *testing.T) {
	idx, mock := newTestIndex(t)

	mock.ExpectQuery("SELECT id, vault_id, title, category FROM item_index").
		WillReturnRows(refRows())

	refs, err := idx.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestItemIndex_Search(t *testing.T) {
	idx, mock := newTestIndex(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, vault_id, title, category FROM item_index WHERE LOWER(title) LIKE ? ORDER BY title ASC")).
		WithArgs("%bank%").
		WillReturnRows(refRows(models.ItemRef{ID: "a", VaultID: "v1", Title: "Bank login", Category: models.Login}))

	refs, err := idx.Search(context.Background(), "Bank")
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "Bank login", refs[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemIndex_QueryError(t *testing.T) {
	idx, mock := newTestIndex(t)

	mock.ExpectQuery("SELECT id, vault_id, title, category FROM item_index").
		WillReturnError(sql.ErrConnDone)

	_, err := idx.List(context.Background(), "")
	assert.Error(t, err)
}
