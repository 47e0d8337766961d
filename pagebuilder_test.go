package pagebuilder

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-repository-cache/cache"

	"github.com/goliatone/go-pagebuilder/internal/blogs"
	blogscmd "github.com/goliatone/go-pagebuilder/internal/commands/blogs"
	"github.com/goliatone/go-pagebuilder/internal/domain"
	"github.com/goliatone/go-pagebuilder/internal/pages"
)

func newModule(t *testing.T) *Module {
	t.Helper()
	module, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("module construction failed: %v", err)
	}
	return module
}

func TestNewWiresMemoryStoresWithoutDB(t *testing.T) {
	module := newModule(t)
	ctx := context.Background()

	page, err := module.Pages().Create(ctx, pages.CreateRequest{Title: "Home"})
	if err != nil {
		t.Fatalf("page create failed: %v", err)
	}
	if page.Path != "/home" {
		t.Fatalf("expected derived path, got %q", page.Path)
	}

	post, err := module.Blogs().Create(ctx, blogs.CreateRequest{Title: "First Post"})
	if err != nil {
		t.Fatalf("blog create failed: %v", err)
	}
	if post.Slug != "first-post" {
		t.Fatalf("expected derived slug, got %q", post.Slug)
	}
}

func TestModuleRendersStoredPageContent(t *testing.T) {
	module := newModule(t)
	ctx := context.Background()

	page, err := module.Pages().Create(ctx, pages.CreateRequest{Title: "Render Me"})
	if err != nil {
		t.Fatalf("page create failed: %v", err)
	}

	nodes := module.Renderer().RenderGridLocales(domain.LocaleEN, page.EN, page.AR)
	if len(nodes) != 1 {
		t.Fatalf("expected one section node, got %d", len(nodes))
	}
	if nodes[0].Tag != "section" {
		t.Fatalf("expected section root, got %q", nodes[0].Tag)
	}
}

func TestModuleEnablesImporterByDefault(t *testing.T) {
	module := newModule(t)

	importer := module.Importer()
	if importer == nil {
		t.Fatalf("expected importer when markdown is enabled")
	}

	post, err := importer.ImportPost(context.Background(), []byte("# Imported\n\nBody text.\n"))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if post.Slug != "imported" {
		t.Fatalf("unexpected slug %q", post.Slug)
	}
}

func TestModuleDisablesImporterWhenConfigured(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Markdown.Enabled = false

	module, err := New(cfg)
	if err != nil {
		t.Fatalf("module construction failed: %v", err)
	}
	if module.Importer() != nil {
		t.Fatalf("expected nil importer when markdown is disabled")
	}
	if module.Commands().ImportPost != nil {
		t.Fatalf("expected nil import command when markdown is disabled")
	}
}

func TestModuleCommandsDriveServices(t *testing.T) {
	module := newModule(t)
	ctx := context.Background()

	post, err := module.Blogs().Create(ctx, blogs.CreateRequest{Title: "Command Post"})
	if err != nil {
		t.Fatalf("blog create failed: %v", err)
	}

	cmds := module.Commands()
	if err := cmds.PublishPost.Execute(ctx, blogscmd.PublishPostCommand{PostID: post.ID}); err != nil {
		t.Fatalf("publish command failed: %v", err)
	}

	published, err := module.Blogs().Get(ctx, post.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if published.Status != domain.StatusPublished {
		t.Fatalf("expected published status, got %q", published.Status)
	}
	if cmds.ImportPost == nil {
		t.Fatal("expected import command when markdown is enabled")
	}
}

func TestNewRejectsInvalidLoggingLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"

	if _, err := New(cfg); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}

func TestNewRejectsSerializerWithoutCacheService(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cache.KeySerializer = cache.NewDefaultKeySerializer()

	if _, err := New(cfg); !errors.Is(err, ErrCacheRequiresBackend) {
		t.Fatalf("expected ErrCacheRequiresBackend, got %v", err)
	}
}
