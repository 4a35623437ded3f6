package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/pstuifzand/op.nvim/internal/logger"
	"github.com/pstuifzand/op.nvim/models"
)

type itemIndex struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewItemIndex returns an [ItemIndex] backed by db. The schema must already
// exist (see [NewConnectSQLite]).
func NewItemIndex(db *sql.DB, log *logger.Logger) ItemIndex {
	return &itemIndex{db: db, logger: log}
}

func (i *itemIndex) ReplaceAll(ctx context.Context, refs []models.ItemRef) error {
	tx, err := i.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, "DELETE FROM item_index"); err != nil {
		return fmt.Errorf("clear item index: %w", err)
	}

	for _, ref := range refs {
		query, args, err := sq.Insert("item_index").
			Columns("id", "vault_id", "title", "category").
			Values(ref.ID, ref.VaultID, ref.Title, string(ref.Category)).
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert query: %w", err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert item %s: %w", ref.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit replace transaction: %w", err)
	}

	i.logger.Debug().Int("items", len(refs)).Msg("item index replaced")
	return nil
}

func (i *itemIndex) List(ctx context.Context, vaultID string) ([]models.ItemRef, error) {
	builder := sq.Select("id", "vault_id", "title", "category").
		From("item_index").
		OrderBy("title ASC")
	if vaultID != "" {
		builder = builder.Where(sq.Eq{"vault_id": vaultID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	return i.queryRefs(ctx, query, args...)
}

func (i *itemIndex) Search(ctx context.Context, query string) ([]models.ItemRef, error) {
	sqlQuery, args, err := sq.Select("id", "vault_id", "title", "category").
		From("item_index").
		Where(sq.Like{"LOWER(title)": "%" + strings.ToLower(query) + "%"}).
		OrderBy("title ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}

	return i.queryRefs(ctx, sqlQuery, args...)
}

func (i *itemIndex) Close() error {
	return i.db.Close()
}

func (i *itemIndex) queryRefs(ctx context.Context, query string, args ...any) ([]models.ItemRef, error) {
	rows, err := i.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query item index: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var refs []models.ItemRef
	for rows.Next() {
		var ref models.ItemRef
		var category string
		if err = rows.Scan(&ref.ID, &ref.VaultID, &ref.Title, &category); err != nil {
			return nil, fmt.Errorf("scan item ref: %w", err)
		}
		ref.Category = models.Category(category)
		refs = append(refs, ref)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate item refs: %w", err)
	}

	return refs, nil
}
