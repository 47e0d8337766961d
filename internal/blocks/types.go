// Package blocks defines the closed set of content block variants shared by
// the flat (blog/legacy page) and grid (page builder) document models, plus
// the lenient decoder and the accumulating validator for raw block payloads.
package blocks

import (
	"encoding/json"

	"github.com/goliatone/go-pagebuilder/internal/domain"
)

// Block is the closed union of content units. The shape of a block is fully
// determined by its type tag; renderer dispatch and validation both rely on
// that invariant.
type Block interface {
	// BlockType returns the type tag (e.g. "heading", "paragraph").
	BlockType() string
}

// Type tags for every supported variant.
const (
	TypeHeading     = "heading"
	TypeParagraph   = "paragraph"
	TypeImage       = "image"
	TypeVideo       = "video"
	TypeLink        = "link"
	TypeList        = "list"
	TypeQuote       = "quote"
	TypeDivider     = "divider"
	TypeButton      = "button"
	TypeIconFeature = "icon-feature"
	TypeEmbed       = "embed"
)

// KnownTypes lists every supported type tag in dispatch order.
func KnownTypes() []string {
	return []string{
		TypeHeading, TypeParagraph, TypeImage, TypeVideo, TypeLink,
		TypeList, TypeQuote, TypeDivider, TypeButton, TypeIconFeature,
		TypeEmbed,
	}
}

// IsKnownType reports whether tag names a supported block variant.
func IsKnownType(tag string) bool {
	switch tag {
	case TypeHeading, TypeParagraph, TypeImage, TypeVideo, TypeLink,
		TypeList, TypeQuote, TypeDivider, TypeButton, TypeIconFeature,
		TypeEmbed:
		return true
	default:
		return false
	}
}

// IsGridOnly reports whether the variant is reserved for the page builder's
// grid layout. Flat content (blog posts, legacy pages) rejects these at
// validation time.
func IsGridOnly(tag string) bool {
	switch tag {
	case TypeButton, TypeIconFeature, TypeEmbed:
		return true
	default:
		return false
	}
}

// LocalizedText carries a per-locale text pair. Flat documents usually fill
// one side per locale tree; grid blocks carry both and the renderer selects
// by locale.
type LocalizedText struct {
	EN string `json:"en,omitempty"`
	AR string `json:"ar,omitempty"`
}

// Value selects the text for the requested locale. A blank side stays blank:
// cross-locale fallback is decided once per render call at the content level,
// never per field, so one render pass cannot mix languages.
func (t LocalizedText) Value(locale domain.Locale) string {
	if locale == domain.LocaleAR {
		return t.AR
	}
	return t.EN
}

// IsEmpty reports whether neither locale carries text.
func (t LocalizedText) IsEmpty() bool {
	return t.EN == "" && t.AR == ""
}

// UnmarshalJSON accepts either a per-locale object or a plain string. A plain
// string applies to both locales so legacy flat payloads round-trip cleanly.
func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		t.EN = plain
		t.AR = plain
		return nil
	}
	type alias LocalizedText
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*t = LocalizedText(decoded)
	return nil
}

// HeadingStyle bounds for heading levels. The reference validators disagreed
// between 1-4 and 2-3; the permissive range is canonical here.
const (
	HeadingLevelMin = 1
	HeadingLevelMax = 4
)

// Heading renders as h1-h4.
type Heading struct {
	Level int           `json:"level"`
	Text  LocalizedText `json:"text"`
}

func (Heading) BlockType() string { return TypeHeading }

// Paragraph renders as a p element.
type Paragraph struct {
	Text LocalizedText `json:"text"`
}

func (Paragraph) BlockType() string { return TypeParagraph }

// Image references an uploaded asset by public identifier.
type Image struct {
	PublicID string        `json:"publicId"`
	Alt      LocalizedText `json:"alt,omitempty"`
	Caption  LocalizedText `json:"caption,omitempty"`
}

func (Image) BlockType() string { return TypeImage }

// Video references an uploaded video and optional poster frame.
type Video struct {
	PublicID string        `json:"publicId"`
	Caption  LocalizedText `json:"caption,omitempty"`
	PosterID string        `json:"posterId,omitempty"`
}

func (Video) BlockType() string { return TypeVideo }

// Link is an inline-level anchor promoted to its own block.
type Link struct {
	Href  string        `json:"href"`
	Label LocalizedText `json:"label"`
}

func (Link) BlockType() string { return TypeLink }

// List renders as ol/ul depending on Ordered.
type List struct {
	Ordered bool     `json:"ordered,omitempty"`
	Items   []string `json:"items"`
}

func (List) BlockType() string { return TypeList }

// Quote renders as a blockquote with an optional cite.
type Quote struct {
	Text LocalizedText `json:"text"`
	Cite string        `json:"cite,omitempty"`
}

func (Quote) BlockType() string { return TypeQuote }

// Divider renders as a horizontal rule and carries no fields.
type Divider struct{}

func (Divider) BlockType() string { return TypeDivider }

// ButtonStyle enumerates the supported button treatments.
type ButtonStyle string

const (
	ButtonPrimary   ButtonStyle = "primary"
	ButtonSecondary ButtonStyle = "secondary"
)

// Button is a grid-only call-to-action block.
type Button struct {
	Label LocalizedText `json:"label"`
	Href  string        `json:"href"`
	Style ButtonStyle   `json:"style,omitempty"`
}

func (Button) BlockType() string { return TypeButton }

// IconFeature is a grid-only icon/title/text feature card.
type IconFeature struct {
	Title LocalizedText `json:"title"`
	Text  LocalizedText `json:"text,omitempty"`
	Icon  string        `json:"icon,omitempty"`
}

func (IconFeature) BlockType() string { return TypeIconFeature }

// EmbedProvider enumerates supported embed sources.
type EmbedProvider string

const (
	EmbedYouTube EmbedProvider = "youtube"
	EmbedVimeo   EmbedProvider = "vimeo"
	EmbedMap     EmbedProvider = "map"
	EmbedIframe  EmbedProvider = "iframe"
)

// Embed is a grid-only third-party embed. Non-map providers need at least one
// of URL or HTML.
type Embed struct {
	Provider EmbedProvider `json:"provider"`
	URL      string        `json:"url,omitempty"`
	HTML     string        `json:"html,omitempty"`
}

func (Embed) BlockType() string { return TypeEmbed }
