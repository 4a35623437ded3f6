package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pstuifzand/op.nvim/internal/logger"
)

const schema = `CREATE TABLE IF NOT EXISTS item_index (
	id TEXT NOT NULL,
	vault_id TEXT NOT NULL,
	title TEXT NOT NULL,
	category TEXT NOT NULL,
	PRIMARY KEY (id, vault_id)
);`

// NewConnectSQLite opens (creating if necessary) the sqlite database at dsn
// and ensures the index schema exists.
func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*sql.DB, error) {
	if dsn == "" {
		dsn = ":memory:"
	}
	if dsn != ":memory:" {
		if err := createLocalDBFileIfNotExists(dsn); err != nil {
			log.Err(err).Str("dsn", dsn).Msg("error creating database file")
			return nil, fmt.Errorf("create database file: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite connection: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if _, err = conn.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	log.Debug().Str("dsn", dsn).Msg("item index database ready")
	return conn, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	if dir := filepath.Dir(dbFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(dbFile, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}
