// Package content re-exports the localized document payload model and slug
// helpers.
package content

import (
	"github.com/goliatone/go-pagebuilder/internal/content"
	"github.com/goliatone/go-pagebuilder/internal/domain"
)

type (
	SEO              = content.SEO
	LocalizedContent = content.LocalizedContent
	LocaleContent    = content.LocaleContent
)

const (
	TitleMaxLen          = content.TitleMaxLen
	ExcerptMaxLen        = content.ExcerptMaxLen
	SEOTitleMaxLen       = content.SEOTitleMaxLen
	SEODescriptionMaxLen = content.SEODescriptionMaxLen
)

// NormalizeSlug lowercases a title and reduces it to hyphen-separated
// alphanumerics.
func NormalizeSlug(value string) string { return content.NormalizeSlug(value) }

// GenerateSlug derives a slug from a title and de-duplicates it against the
// provided set with numeric suffixes.
func GenerateSlug(title string, existing map[string]struct{}) string {
	return content.GenerateSlug(title, existing)
}

// IsValidBlogSlug reports whether the value is a well-formed blog slug.
func IsValidBlogSlug(value string) bool { return content.IsValidBlogSlug(value) }

// IsValidPagePath reports whether the value is a well-formed rooted page
// path.
func IsValidPagePath(value string) bool { return content.IsValidPagePath(value) }

// ResolveFlat picks the requested locale's flat content, borrowing the other
// locale's blocks when the requested side is empty.
func ResolveFlat(locale domain.Locale, en, ar LocalizedContent) LocalizedContent {
	return content.ResolveFlat(locale, en, ar)
}

// ResolveGrid picks the requested locale's grid content, borrowing the other
// locale's sections when the requested side is empty.
func ResolveGrid(locale domain.Locale, en, ar LocaleContent) LocaleContent {
	return content.ResolveGrid(locale, en, ar)
}
