package pages

import (
	"github.com/goliatone/go-pagebuilder/internal/content"
	"github.com/goliatone/go-pagebuilder/internal/validation"
)

// Validate checks the whole document: path format, template and status
// enums, and both locale section trees. Every violation is accumulated so a
// single pass reports everything. Path uniqueness is the store's
// responsibility and is not checked here.
func Validate(page *Page) error {
	collector := &validation.Collector{}

	if !content.IsValidPagePath(page.Path) {
		collector.Add("path", validation.CodeSlugFormatInvalid,
			"path must start with / and contain only lowercase alphanumerics, hyphens and slashes")
	}
	if !page.Template.IsValid() {
		collector.Add("template", validation.CodeFieldConstraint, "unknown template")
	}
	if !page.Status.IsValid() {
		collector.Add("status", validation.CodeFieldConstraint, "status must be draft or published")
	}

	collector.Merge("en", content.GridIssues(page.EN))
	collector.Merge("ar", content.GridIssues(page.AR))

	return collector.Err()
}
