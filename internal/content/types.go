// Package content models per-locale document payloads in both shapes the
// builder supports: the flat block list used by blog posts and legacy pages,
// and the section grid produced by the page builder. It also owns the
// aggregate validators and the slug generator.
package content

import (
	"github.com/goliatone/go-pagebuilder/internal/blocks"
	"github.com/goliatone/go-pagebuilder/internal/layout"
)

// Field length limits enforced at validation time.
const (
	TitleMaxLen          = 100
	ExcerptMaxLen        = 200
	SEOTitleMaxLen       = 60
	SEODescriptionMaxLen = 160
)

// SEO carries optional search metadata.
type SEO struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// LocalizedContent is the flat variant: an ordered block list under a title.
type LocalizedContent struct {
	Title   string        `json:"title"`
	Excerpt string        `json:"excerpt,omitempty"`
	Blocks  blocks.Blocks `json:"blocks"`
	SEO     *SEO          `json:"seo,omitempty"`
}

// IsEmpty reports whether the locale has no authored blocks, which triggers
// the cross-locale fallback at render time.
func (c LocalizedContent) IsEmpty() bool {
	return len(c.Blocks) == 0
}

// Clone returns a deep copy sharing no block storage with the receiver.
func (c LocalizedContent) Clone() LocalizedContent {
	out := c
	out.Blocks = c.Blocks.Clone()
	if c.SEO != nil {
		seo := *c.SEO
		out.SEO = &seo
	}
	return out
}

// LocaleContent is the grid variant: ordered sections of rows and columns.
type LocaleContent struct {
	Title    string           `json:"title"`
	SEO      *SEO             `json:"seo,omitempty"`
	Sections []layout.Section `json:"sections"`
}

// IsEmpty reports whether the locale has no authored sections.
func (c LocaleContent) IsEmpty() bool {
	return len(c.Sections) == 0
}

// Clone returns a deep copy of the section tree.
func (c LocaleContent) Clone() LocaleContent {
	out := c
	if c.SEO != nil {
		seo := *c.SEO
		out.SEO = &seo
	}
	if c.Sections != nil {
		out.Sections = make([]layout.Section, len(c.Sections))
		for i, section := range c.Sections {
			out.Sections[i] = section.Clone()
		}
	}
	return out
}

// PlaceholderFlat returns the default flat content a freshly created document
// starts with: a single placeholder paragraph.
func PlaceholderFlat(title, placeholder string) LocalizedContent {
	return LocalizedContent{
		Title: title,
		Blocks: blocks.Blocks{
			blocks.Paragraph{Text: blocks.LocalizedText{EN: placeholder, AR: placeholder}},
		},
	}
}

// PlaceholderGrid returns the default grid content for a new page: one
// section holding a single placeholder paragraph.
func PlaceholderGrid(title, placeholder string) LocaleContent {
	return LocaleContent{
		Title: title,
		Sections: []layout.Section{
			{
				Key: "main",
				Blocks: blocks.Blocks{
					blocks.Paragraph{Text: blocks.LocalizedText{EN: placeholder, AR: placeholder}},
				},
			},
		},
	}
}
