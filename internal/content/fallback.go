package content

import "github.com/goliatone/go-pagebuilder/internal/domain"

// Locale fallback policy: when the requested locale carries no blocks or
// sections, rendering borrows the other locale's structure while keeping the
// requested locale's own title and SEO metadata. The decision is made once
// per render call, never per block.

// ResolveFlat picks the flat content to render for the requested locale.
func ResolveFlat(locale domain.Locale, en, ar LocalizedContent) LocalizedContent {
	selected, other := en, ar
	if locale == domain.LocaleAR {
		selected, other = ar, en
	}
	if selected.IsEmpty() && !other.IsEmpty() {
		selected.Blocks = other.Blocks
	}
	return selected
}

// ResolveGrid picks the grid content to render for the requested locale.
func ResolveGrid(locale domain.Locale, en, ar LocaleContent) LocaleContent {
	selected, other := en, ar
	if locale == domain.LocaleAR {
		selected, other = ar, en
	}
	if selected.IsEmpty() && !other.IsEmpty() {
		selected.Sections = other.Sections
	}
	return selected
}
