package blogs

import (
	"github.com/goliatone/go-pagebuilder/internal/content"
	"github.com/goliatone/go-pagebuilder/internal/domain"
	"github.com/goliatone/go-pagebuilder/internal/validation"
)

// Validate checks the whole document: slug format, status enum, both locale
// payloads, and finally the publish cross-field rule. Every violation is
// accumulated; the cross-field check runs only once per-field validation
// succeeds, so a half-broken document reports its field errors first.
// Slug uniqueness is the store's responsibility and is not checked here.
func Validate(post *BlogPost) error {
	collector := &validation.Collector{}

	if !content.IsValidBlogSlug(post.Slug) {
		collector.Add("slug", validation.CodeSlugFormatInvalid,
			"slug must be lowercase alphanumerics separated by single hyphens")
	}
	if !post.Status.IsValid() {
		collector.Add("status", validation.CodeFieldConstraint, "status must be draft or published")
	}

	collector.Merge("en", content.FlatIssues(post.EN))
	collector.Merge("ar", content.FlatIssues(post.AR))

	if collector.Len() == 0 {
		if post.Status == domain.StatusPublished && post.PublishedAt == nil {
			collector.Add("publishedAt", validation.CodeMissingPublishedDate,
				"published posts require a publish date")
		}
	}

	return collector.Err()
}
