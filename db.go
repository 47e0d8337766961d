package pagebuilder

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// NewPostgresDB opens a bun handle over a Postgres DSN. The caller owns the
// returned handle and should ping it before serving traffic.
func NewPostgresDB(dsn string) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return bun.NewDB(sqldb, pgdialect.New())
}

// NewSQLiteDB opens a bun handle over a SQLite file path. Pass
// "file::memory:?cache=shared" for an in-memory store.
func NewSQLiteDB(path string) (*bun.DB, error) {
	sqldb, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())
	db.SetMaxOpenConns(1)
	return db, nil
}
