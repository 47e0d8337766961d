package render

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-pagebuilder/internal/blocks"
	"github.com/goliatone/go-pagebuilder/internal/content"
	"github.com/goliatone/go-pagebuilder/internal/domain"
	"github.com/goliatone/go-pagebuilder/internal/layout"
	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
)

// RenderFlat renders the flat variant for one locale: one top-level node per
// block, in block order. Locale fallback is resolved by the caller (or via
// RenderFlatLocales) so this stays a pure function of its arguments.
func (r *Renderer) RenderFlat(locale domain.Locale, c content.LocalizedContent) []*Node {
	return r.renderBlocks(locale, c.Blocks)
}

// RenderFlatLocales applies the locale fallback policy across both locales
// and renders the winner.
func (r *Renderer) RenderFlatLocales(locale domain.Locale, en, ar content.LocalizedContent) []*Node {
	return r.RenderFlat(locale, content.ResolveFlat(locale, en, ar))
}

// RenderGrid renders the grid variant for one locale: one section node per
// section that has content, walking rows, columns, and blocks in order.
func (r *Renderer) RenderGrid(locale domain.Locale, c content.LocaleContent) []*Node {
	out := make([]*Node, 0, len(c.Sections))
	for _, section := range c.Sections {
		if node := r.renderSection(locale, section); node != nil {
			out = append(out, node)
		}
	}
	return out
}

// RenderGridLocales applies the locale fallback policy and renders the winner.
func (r *Renderer) RenderGridLocales(locale domain.Locale, en, ar content.LocaleContent) []*Node {
	return r.RenderGrid(locale, content.ResolveGrid(locale, en, ar))
}

// RenderRaw renders a list of raw block payloads, skipping anything that does
// not decode. Editor previews hand unsaved state to this path.
func (r *Renderer) RenderRaw(locale domain.Locale, raws []map[string]any) []*Node {
	out := make([]*Node, 0, len(raws))
	for _, raw := range raws {
		block, ok := blocks.FromMap(raw)
		if !ok {
			continue
		}
		if node := r.RenderBlock(locale, block); node != nil {
			out = append(out, node)
		}
	}
	return out
}

func (r *Renderer) renderBlocks(locale domain.Locale, list blocks.Blocks) []*Node {
	out := make([]*Node, 0, len(list))
	for _, block := range list {
		if node := r.RenderBlock(locale, block); node != nil {
			out = append(out, node)
		}
	}
	return out
}

func (r *Renderer) renderSection(locale domain.Locale, section layout.Section) *Node {
	var children []*Node
	switch {
	case len(section.Rows) > 0:
		// Rows shadow Blocks when both are present.
		for _, row := range section.Rows {
			children = append(children, r.renderRow(locale, row))
		}
	case len(section.Blocks) > 0:
		children = r.renderBlocks(locale, section.Blocks)
	default:
		return nil
	}

	node := Element("section").WithClasses(layout.SectionClasses(section.Style)...)
	if section.Style != nil && section.Style.DividerTop {
		node.Append(Element("hr").WithClasses("divider", "divider-top"))
	}
	node.Append(children...)
	if section.Style != nil && section.Style.DividerBottom {
		node.Append(Element("hr").WithClasses("divider", "divider-bottom"))
	}
	return node
}

func (r *Renderer) renderRow(locale domain.Locale, row layout.Row) *Node {
	classes := append([]string{"grid"}, layout.GapClasses(row.Gap)...)
	node := Element("div").WithClasses(classes...)
	for _, column := range row.Columns {
		node.Append(r.renderColumn(locale, column))
	}
	return node
}

func (r *Renderer) renderColumn(locale domain.Locale, column layout.GridCol) *Node {
	classes := layout.SpanClasses(column.Span)
	if class := layout.AlignClass(column.Align); class != "" {
		classes = append(classes, class)
	}
	if class := layout.VAlignClass(column.VAlign); class != "" {
		classes = append(classes, class)
	}
	classes = append(classes, layout.VisibilityClasses(column.Visibility)...)

	node := Element("div").WithClasses(classes...)
	node.Append(r.renderBlocks(locale, column.Blocks)...)
	return node
}

// RenderBlock dispatches one block to its node. The return is nil for blocks
// that render nothing: unknown variants, images and videos without a public
// identifier, and embeds with no usable source. Rendering never fails.
func (r *Renderer) RenderBlock(locale domain.Locale, block blocks.Block) *Node {
	switch b := block.(type) {
	case blocks.Heading:
		return Element(headingTag(b.Level)).Append(Text(b.Text.Value(locale)))
	case blocks.Paragraph:
		return Element("p").Append(Text(b.Text.Value(locale)))
	case blocks.Image:
		return r.renderImage(locale, b)
	case blocks.Video:
		return r.renderVideo(locale, b)
	case blocks.Link:
		return Element("a").WithAttr("href", b.Href).Append(Text(b.Label.Value(locale)))
	case blocks.List:
		return renderList(b)
	case blocks.Quote:
		node := Element("blockquote").Append(Element("p").Append(Text(b.Text.Value(locale))))
		if strings.TrimSpace(b.Cite) != "" {
			node.Append(Element("cite").Append(Text(b.Cite)))
		}
		return node
	case blocks.Divider:
		return Element("hr")
	case blocks.Button:
		style := b.Style
		if style != blocks.ButtonSecondary {
			style = blocks.ButtonPrimary
		}
		return Element("a").
			WithAttr("href", b.Href).
			WithClasses("btn", "btn-"+string(style)).
			Append(Text(b.Label.Value(locale)))
	case blocks.IconFeature:
		return renderIconFeature(locale, b)
	case blocks.Embed:
		return renderEmbed(b)
	default:
		// Unknown variants are skipped; drafts may carry anything.
		return nil
	}
}

func headingTag(level int) string {
	if level < blocks.HeadingLevelMin || level > blocks.HeadingLevelMax {
		level = 2
	}
	return fmt.Sprintf("h%d", level)
}

func (r *Renderer) renderImage(locale domain.Locale, b blocks.Image) *Node {
	// Empty publicId means "not yet configured", not an error: the save-time
	// validator rejects it, the preview path renders nothing.
	if strings.TrimSpace(b.PublicID) == "" {
		return nil
	}
	img := Element("img").
		WithAttr("src", r.mediaURL(b.PublicID, interfaces.MediaKindImage)).
		WithAttr("alt", b.Alt.Value(locale))
	node := Element("figure").Append(img)
	if caption := b.Caption.Value(locale); caption != "" {
		node.Append(Element("figcaption").Append(Text(caption)))
	}
	return node
}

func (r *Renderer) renderVideo(locale domain.Locale, b blocks.Video) *Node {
	if strings.TrimSpace(b.PublicID) == "" {
		return nil
	}
	video := Element("video").
		WithAttr("src", r.mediaURL(b.PublicID, interfaces.MediaKindVideo)).
		WithAttr("controls", "controls")
	if strings.TrimSpace(b.PosterID) != "" {
		video.WithAttr("poster", r.mediaURL(b.PosterID, interfaces.MediaKindImage))
	}
	if caption := b.Caption.Value(locale); caption != "" {
		return Element("figure").Append(video, Element("figcaption").Append(Text(caption)))
	}
	return video
}

func renderList(b blocks.List) *Node {
	tag := "ul"
	if b.Ordered {
		tag = "ol"
	}
	node := Element(tag)
	for _, item := range b.Items {
		node.Append(Element("li").Append(Text(item)))
	}
	return node
}

func renderIconFeature(locale domain.Locale, b blocks.IconFeature) *Node {
	node := Element("div").WithClasses("icon-feature")
	if strings.TrimSpace(b.Icon) != "" {
		node.Append(Element("span").WithClasses("icon", "icon-"+b.Icon))
	}
	node.Append(Element("h3").Append(Text(b.Title.Value(locale))))
	if text := b.Text.Value(locale); text != "" {
		node.Append(Element("p").Append(Text(text)))
	}
	return node
}

func renderEmbed(b blocks.Embed) *Node {
	url := strings.TrimSpace(b.URL)
	html := strings.TrimSpace(b.HTML)
	switch {
	case url != "":
		return Element("iframe").
			WithAttr("src", EmbedURL(b.Provider, url)).
			WithAttr("allowfullscreen", "allowfullscreen").
			WithClasses("embed", "embed-"+string(b.Provider))
	case html != "":
		return Element("div").WithClasses("embed", "embed-"+string(b.Provider)).Append(Text(html))
	default:
		return nil
	}
}
