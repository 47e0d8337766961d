package pagebuilder

import (
	"context"
	"embed"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-pagebuilder/internal/blogs"
	"github.com/goliatone/go-pagebuilder/internal/pages"
)

//go:embed data/sql/migrations/*.sql
var migrationsFS embed.FS

// GetMigrationsFS returns the embedded migration files for this package.
func GetMigrationsFS() embed.FS {
	return migrationsFS
}

// CreateTables creates the module's tables directly through bun. Intended
// for tests and tools that skip a proper migration runner.
func CreateTables(ctx context.Context, db *bun.DB) error {
	if _, err := db.NewCreateTable().
		Model((*pages.Page)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return err
	}
	if _, err := db.NewCreateTable().
		Model((*blogs.BlogPost)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return err
	}
	return nil
}
