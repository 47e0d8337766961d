// Command import converts Markdown documents with frontmatter into blog
// posts and prints the stored records as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	pagebuilder "github.com/goliatone/go-pagebuilder"
)

func main() {
	var (
		pattern = flag.String("glob", "", "Glob matching the markdown files to import")
		pgDSN   = flag.String("pg", "", "Postgres DSN; omit to keep imports in memory")
		sqlite  = flag.String("sqlite", "", "SQLite path; omit to keep imports in memory")
		level   = flag.String("log-level", "info", "Log level")
		format  = flag.String("log-format", "console", "Log format (json, console, pretty)")
	)

	flag.Parse()

	if *pattern == "" {
		log.Fatalf("--glob is required")
	}

	matches, err := filepath.Glob(*pattern)
	if err != nil {
		log.Fatalf("expand glob: %v", err)
	}
	if len(matches) == 0 {
		log.Fatalf("no files match %q", *pattern)
	}

	cfg := pagebuilder.DefaultConfig()
	cfg.Logging.Level = *level
	cfg.Logging.Format = *format

	ctx := context.Background()

	switch {
	case *pgDSN != "":
		cfg.DB = pagebuilder.NewPostgresDB(*pgDSN)
	case *sqlite != "":
		db, err := pagebuilder.NewSQLiteDB(*sqlite)
		if err != nil {
			log.Fatalf("open sqlite: %v", err)
		}
		cfg.DB = db
	}
	if cfg.DB != nil {
		if err := pagebuilder.CreateTables(ctx, cfg.DB); err != nil {
			log.Fatalf("create tables: %v", err)
		}
	}

	module, err := pagebuilder.New(cfg)
	if err != nil {
		log.Fatalf("build module: %v", err)
	}

	importer := module.Importer()
	if importer == nil {
		log.Fatalf("markdown import is disabled")
	}

	failed := 0

	for _, match := range matches {
		source, err := os.ReadFile(match)
		if err != nil {
			log.Printf("read %s: %v", match, err)
			failed++
			continue
		}

		post, err := importer.ImportPost(ctx, source)
		if err != nil {
			log.Printf("import %s: %v", match, err)
			failed++
			continue
		}

		encoded, err := json.MarshalIndent(post, "", "  ")
		if err != nil {
			log.Printf("encode %s: %v", match, err)
			failed++
			continue
		}
		fmt.Fprintln(os.Stdout, string(encoded))
	}

	if failed > 0 {
		os.Exit(1)
	}
}
