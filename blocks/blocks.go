// Package blocks re-exports the block content model.
package blocks

import (
	"encoding/json"

	"github.com/goliatone/go-pagebuilder/internal/blocks"
)

type (
	Block         = blocks.Block
	Blocks        = blocks.Blocks
	LocalizedText = blocks.LocalizedText
	Heading       = blocks.Heading
	Paragraph     = blocks.Paragraph
	Image         = blocks.Image
	Video         = blocks.Video
	Link          = blocks.Link
	List          = blocks.List
	Quote         = blocks.Quote
	Divider       = blocks.Divider
	Button        = blocks.Button
	ButtonStyle   = blocks.ButtonStyle
	IconFeature   = blocks.IconFeature
	Embed         = blocks.Embed
	EmbedProvider = blocks.EmbedProvider
)

const (
	TypeHeading     = blocks.TypeHeading
	TypeParagraph   = blocks.TypeParagraph
	TypeImage       = blocks.TypeImage
	TypeVideo       = blocks.TypeVideo
	TypeLink        = blocks.TypeLink
	TypeList        = blocks.TypeList
	TypeQuote       = blocks.TypeQuote
	TypeDivider     = blocks.TypeDivider
	TypeButton      = blocks.TypeButton
	TypeIconFeature = blocks.TypeIconFeature
	TypeEmbed       = blocks.TypeEmbed

	HeadingLevelMin = blocks.HeadingLevelMin
	HeadingLevelMax = blocks.HeadingLevelMax

	ButtonPrimary   = blocks.ButtonPrimary
	ButtonSecondary = blocks.ButtonSecondary

	EmbedYouTube = blocks.EmbedYouTube
	EmbedVimeo   = blocks.EmbedVimeo
	EmbedMap     = blocks.EmbedMap
	EmbedIframe  = blocks.EmbedIframe
)

// KnownTypes lists every recognised block type tag.
func KnownTypes() []string { return blocks.KnownTypes() }

// IsKnownType reports whether the tag names a block variant.
func IsKnownType(tag string) bool { return blocks.IsKnownType(tag) }

// IsGridOnly reports whether the block type is restricted to grid layouts.
func IsGridOnly(tag string) bool { return blocks.IsGridOnly(tag) }

// Decode parses a raw JSON block envelope into its typed variant.
func Decode(raw json.RawMessage) (Block, bool) { return blocks.Decode(raw) }

// FromMap converts an already-decoded envelope into its typed variant.
func FromMap(raw map[string]any) (Block, bool) { return blocks.FromMap(raw) }

// MarshalBlock serialises a block with its type tag included.
func MarshalBlock(block Block) ([]byte, error) { return blocks.MarshalBlock(block) }

// Validate checks a raw block envelope and returns the typed block when the
// payload is valid.
func Validate(raw map[string]any) (Block, error) { return blocks.Validate(raw) }
