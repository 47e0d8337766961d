// Package pagebuilder assembles the block-based document toolkit: page and
// blog services over pluggable stores, bilingual content validation, and a
// deterministic render tree generator.
package pagebuilder

import (
	"github.com/goliatone/go-pagebuilder/internal/blogs"
	"github.com/goliatone/go-pagebuilder/internal/commands"
	blogscmd "github.com/goliatone/go-pagebuilder/internal/commands/blogs"
	markdowncmd "github.com/goliatone/go-pagebuilder/internal/commands/markdown"
	pagescmd "github.com/goliatone/go-pagebuilder/internal/commands/pages"
	"github.com/goliatone/go-pagebuilder/internal/logging"
	"github.com/goliatone/go-pagebuilder/internal/logging/gologger"
	"github.com/goliatone/go-pagebuilder/internal/markdown"
	"github.com/goliatone/go-pagebuilder/internal/pages"
	"github.com/goliatone/go-pagebuilder/internal/render"
	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
)

// PageService describes page management capabilities.
type PageService = pages.Service

// BlogService describes blog post management capabilities.
type BlogService = blogs.Service

// Module wires repositories, services, and the renderer behind a single
// constructor.
type Module struct {
	provider interfaces.LoggerProvider
	pages    pages.Service
	blogs    blogs.Service
	renderer *render.Renderer
	importer *markdown.Importer
}

// New constructs the module from the supplied configuration. A nil DB wires
// the in-memory repositories.
func New(cfg Config) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	provider := cfg.Logging.Provider
	if provider == nil {
		built, err := gologger.NewProvider(gologger.Config{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			return nil, err
		}
		provider = built
	}

	var (
		pageRepo pages.Repository
		blogRepo blogs.Repository
	)
	if cfg.DB != nil {
		pageRepo = pages.NewBunPageRepositoryWithCache(cfg.DB, cfg.Cache.Service, cfg.Cache.KeySerializer)
		blogRepo = blogs.NewBunBlogRepositoryWithCache(cfg.DB, cfg.Cache.Service, cfg.Cache.KeySerializer)
	} else {
		pageRepo = pages.NewMemoryRepository()
		blogRepo = blogs.NewMemoryRepository()
	}

	pageService := pages.NewService(pageRepo, pages.WithLogger(logging.PagesLogger(provider)))
	blogService := blogs.NewService(blogRepo, blogs.WithLogger(logging.BlogsLogger(provider)))

	rendererOptions := []render.Option{}
	if cfg.Media.Resolver != nil {
		rendererOptions = append(rendererOptions, render.WithMediaResolver(cfg.Media.Resolver))
	}

	m := &Module{
		provider: provider,
		pages:    pageService,
		blogs:    blogService,
		renderer: render.New(rendererOptions...),
	}

	if cfg.Markdown.Enabled {
		m.importer = markdown.NewImporter(markdown.ImporterConfig{
			Blogs:  blogService,
			Logger: logging.MarkdownLogger(provider),
		})
	}

	return m, nil
}

// Pages exposes the page service.
func (m *Module) Pages() PageService { return m.pages }

// Blogs exposes the blog service.
func (m *Module) Blogs() BlogService { return m.blogs }

// Renderer exposes the shared render tree generator.
func (m *Module) Renderer() *render.Renderer { return m.renderer }

// Importer exposes the Markdown import pipeline, or nil when disabled.
func (m *Module) Importer() *markdown.Importer { return m.importer }

// Commands bundles the go-command handlers backed by the module's services.
type Commands struct {
	PublishPost   *blogscmd.PublishPostHandler
	UnpublishPost *blogscmd.UnpublishPostHandler
	PublishPage   *pagescmd.PublishPageHandler
	UnpublishPage *pagescmd.UnpublishPageHandler
	ImportPost    *markdowncmd.ImportPostHandler
}

// Commands constructs the command handlers wired to this module's services
// and loggers. ImportPost is nil when the Markdown importer is disabled.
func (m *Module) Commands() Commands {
	c := Commands{
		PublishPost:   blogscmd.NewPublishPostHandler(m.blogs, commands.CommandLogger(m.provider, "blogs")),
		UnpublishPost: blogscmd.NewUnpublishPostHandler(m.blogs, commands.CommandLogger(m.provider, "blogs")),
		PublishPage:   pagescmd.NewPublishPageHandler(m.pages, commands.CommandLogger(m.provider, "pages")),
		UnpublishPage: pagescmd.NewUnpublishPageHandler(m.pages, commands.CommandLogger(m.provider, "pages")),
	}
	if m.importer != nil {
		c.ImportPost = markdowncmd.NewImportPostHandler(m.importer, commands.CommandLogger(m.provider, "markdown"))
	}
	return c
}

// Logger returns a module-scoped logger from the configured provider.
func (m *Module) Logger(name string) interfaces.Logger {
	return logging.ModuleLogger(m.provider, name)
}
