package content

import (
	"fmt"
	"regexp"
	"strings"

	slug "github.com/goliatone/go-slug"
)

var (
	blogSlugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	pagePathPattern = regexp.MustCompile(`^/[a-z0-9-/]*$`)

	slugStrip   = regexp.MustCompile(`[^a-z0-9\s-]+`)
	slugHyphens = regexp.MustCompile(`[\s-]+`)
	defaultSlug = "untitled"
	slugTrimSet = "-"
)

// NormalizeSlug lowercases, strips characters outside [a-z0-9 -], and
// collapses whitespace and hyphen runs to single hyphens. The first pass runs
// through go-slug's normalizer so transliteration rules stay aligned with the
// rest of the stack; the second pass enforces this module's stricter charset.
func NormalizeSlug(value string) string {
	normalized, err := slug.Normalize(value)
	if err != nil {
		normalized = value
	}
	normalized = strings.ToLower(normalized)
	normalized = slugStrip.ReplaceAllString(normalized, "")
	normalized = slugHyphens.ReplaceAllString(normalized, "-")
	return strings.Trim(normalized, slugTrimSet)
}

// GenerateSlug derives a unique slug from a title against an existing slug
// set. Empty titles fall back to "untitled"; collisions append -2, -3, …
// taking the lowest free integer. Comparison is exact-string: uniqueness is
// case-sensitive because stored slugs are already lowercase. The function is
// pure and terminates within len(existing)+1 probes.
func GenerateSlug(title string, existing map[string]struct{}) string {
	candidate := NormalizeSlug(title)
	if candidate == "" {
		candidate = defaultSlug
	}
	if _, taken := existing[candidate]; !taken {
		return candidate
	}
	// len(existing) slugs cannot occupy the base candidate plus len(existing)+1
	// numbered probes, so the loop always returns.
	for i := 2; ; i++ {
		suffixed := fmt.Sprintf("%s-%d", candidate, i)
		if _, taken := existing[suffixed]; !taken {
			return suffixed
		}
	}
}

// IsValidBlogSlug reports whether the slug is hyphen-delimited lowercase
// alphanumerics.
func IsValidBlogSlug(value string) bool {
	return blogSlugPattern.MatchString(value)
}

// IsValidPagePath reports whether the path is a rooted lowercase slug path.
func IsValidPagePath(value string) bool {
	return pagePathPattern.MatchString(value)
}
