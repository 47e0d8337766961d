package markdown

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-pagebuilder/internal/blocks"
	"github.com/goliatone/go-pagebuilder/internal/blogs"
	"github.com/goliatone/go-pagebuilder/internal/content"
	"github.com/goliatone/go-pagebuilder/internal/domain"
	"github.com/goliatone/go-pagebuilder/internal/identity"
	"github.com/goliatone/go-pagebuilder/internal/logging"
	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
)

var (
	ErrBlogServiceRequired = errors.New("markdown: blog service is required")
	ErrTitleMissing        = errors.New("markdown: document has no title")
	ErrBodyEmpty           = errors.New("markdown: document body produced no blocks")
)

// ImporterConfig encapsulates dependencies required to persist imported
// documents.
type ImporterConfig struct {
	Blogs  blogs.Service
	Logger interfaces.Logger
}

// Importer converts authored Markdown documents into stored blog posts. The
// frontmatter drives post metadata; the body becomes the block list for both
// locales until a translation replaces one side.
type Importer struct {
	blogs  blogs.Service
	parser *Parser
	logger interfaces.Logger
}

// NewImporter builds an Importer from the supplied configuration.
func NewImporter(cfg ImporterConfig) *Importer {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Importer{
		blogs:  cfg.Blogs,
		parser: NewParser(),
		logger: logger,
	}
}

// ImportPost parses a single document and persists it through the blog
// service. The title falls back to the first heading in the body when the
// frontmatter omits one.
func (i *Importer) ImportPost(ctx context.Context, source []byte) (*blogs.BlogPost, error) {
	if i.blogs == nil {
		return nil, ErrBlogServiceRequired
	}

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	list, err := i.parser.ParseBlocks(body)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrBodyEmpty
	}

	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = firstHeading(list)
	}
	if title == "" {
		return nil, ErrTitleMissing
	}

	payload := content.LocalizedContent{
		Title:   title,
		Excerpt: strings.TrimSpace(meta.Summary),
		Blocks:  list,
	}

	// Imported documents carry a slug-derived identity so re-importing the
	// same source addresses the same record instead of minting a fresh ID.
	// Titles that normalize to nothing keep the service's derived slug and
	// random identity.
	slug := strings.TrimSpace(meta.Slug)
	if slug == "" {
		slug = content.NormalizeSlug(title)
	}

	req := blogs.CreateRequest{
		Title:      title,
		Slug:       slug,
		Status:     meta.Status,
		CoverImage: meta.CoverImage,
		Tags:       meta.Tags,
		Author:     meta.Author,
		EN:         &payload,
		AR:         &payload,
	}
	if slug != "" {
		req.ID = identity.BlogPostUUID(slug)
	}

	created, err := i.blogs.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	if meta.Date != nil && created.Status == domain.StatusPublished {
		at := meta.Date.UTC()
		updated, err := i.blogs.Publish(ctx, created.ID, &at)
		if err != nil {
			return nil, err
		}
		created = updated
	}

	i.logger.Info("imported blog post", "slug", created.Slug, "blocks", len(list))
	return created, nil
}

// ImportPosts imports a batch of documents, collecting per-document failures
// without aborting the run.
func (i *Importer) ImportPosts(ctx context.Context, sources [][]byte) ([]*blogs.BlogPost, []error) {
	var (
		posts []*blogs.BlogPost
		errs  []error
	)
	for _, source := range sources {
		post, err := i.ImportPost(ctx, source)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		posts = append(posts, post)
	}
	return posts, errs
}

func firstHeading(list blocks.Blocks) string {
	for _, block := range list {
		if heading, ok := block.(blocks.Heading); ok {
			return strings.TrimSpace(heading.Text.EN)
		}
	}
	return ""
}
