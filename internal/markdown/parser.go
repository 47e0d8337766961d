// Package markdown converts authored Markdown documents with YAML
// frontmatter into block content ready for the blog store.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-pagebuilder/internal/blocks"
)

// Parser converts a Markdown body into the flat block list used by blog
// posts. The parser is stateless so a single instance can be shared.
type Parser struct {
	engine goldmark.Markdown
}

// NewParser constructs a parser with GFM extensions enabled.
func NewParser() *Parser {
	return &Parser{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

// ParseBlocks maps top-level Markdown nodes onto block variants. Constructs
// with no block equivalent degrade to paragraphs; nodes that produce no text
// are dropped.
func (p *Parser) ParseBlocks(source []byte) (blocks.Blocks, error) {
	doc := p.engine.Parser().Parse(text.NewReader(source))

	var out blocks.Blocks
	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		if block := p.convertNode(node, source); block != nil {
			out = append(out, block)
		}
	}
	return out, nil
}

func (p *Parser) convertNode(node ast.Node, source []byte) blocks.Block {
	switch n := node.(type) {
	case *ast.Heading:
		value := nodeText(n, source)
		if value == "" {
			return nil
		}
		return blocks.Heading{
			Level: clampHeadingLevel(n.Level),
			Text:  localized(value),
		}
	case *ast.Paragraph:
		if image, ok := soleImage(n, source); ok {
			return blocks.Image{
				PublicID: string(image.Destination),
				Alt:      localized(nodeText(image, source)),
			}
		}
		if link, ok := soleLink(n, source); ok {
			return link
		}
		value := nodeText(n, source)
		if value == "" {
			return nil
		}
		return blocks.Paragraph{Text: localized(value)}
	case *ast.List:
		items := listItems(n, source)
		if len(items) == 0 {
			return nil
		}
		return blocks.List{Ordered: n.IsOrdered(), Items: items}
	case *ast.Blockquote:
		value := nodeText(n, source)
		if value == "" {
			return nil
		}
		return blocks.Quote{Text: localized(value)}
	case *ast.ThematicBreak:
		return blocks.Divider{}
	case *ast.FencedCodeBlock:
		value := linesText(n, source)
		if value == "" {
			return nil
		}
		return blocks.Paragraph{Text: localized(value)}
	case *ast.CodeBlock:
		value := linesText(n, source)
		if value == "" {
			return nil
		}
		return blocks.Paragraph{Text: localized(value)}
	case *ast.HTMLBlock:
		// Raw HTML has no flat block equivalent and is dropped on import.
		return nil
	default:
		value := nodeText(node, source)
		if value == "" {
			return nil
		}
		return blocks.Paragraph{Text: localized(value)}
	}
}

// soleImage reports a paragraph whose only meaningful child is an image.
func soleImage(paragraph *ast.Paragraph, source []byte) (*ast.Image, bool) {
	var image *ast.Image
	for child := paragraph.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Image:
			if image != nil {
				return nil, false
			}
			image = n
		case *ast.Text:
			if len(strings.TrimSpace(string(n.Segment.Value(source)))) > 0 {
				return nil, false
			}
		default:
			return nil, false
		}
	}
	return image, image != nil
}

// soleLink reports a paragraph whose only child is a link, mapped to a link
// block.
func soleLink(paragraph *ast.Paragraph, source []byte) (blocks.Block, bool) {
	child := paragraph.FirstChild()
	if child == nil || child.NextSibling() != nil {
		return nil, false
	}
	link, ok := child.(*ast.Link)
	if !ok {
		return nil, false
	}
	label := nodeText(link, source)
	if label == "" {
		label = string(link.Destination)
	}
	return blocks.Link{
		Href:  string(link.Destination),
		Label: localized(label),
	}, true
}

func listItems(list *ast.List, source []byte) []string {
	var items []string
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		value := nodeText(item, source)
		if value == "" {
			continue
		}
		items = append(items, value)
	}
	return items
}

// nodeText flattens the inline text content beneath a node.
func nodeText(node ast.Node, source []byte) string {
	var sb strings.Builder
	collectText(node, source, &sb)
	return strings.TrimSpace(sb.String())
}

func collectText(node ast.Node, source []byte, sb *strings.Builder) {
	switch n := node.(type) {
	case *ast.Text:
		sb.Write(n.Segment.Value(source))
		if n.SoftLineBreak() || n.HardLineBreak() {
			sb.WriteByte(' ')
		}
		return
	case *ast.String:
		sb.Write(n.Value)
		return
	case *ast.AutoLink:
		sb.Write(n.URL(source))
		return
	}
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		collectText(child, source, sb)
		if _, isBlock := child.(*ast.Paragraph); isBlock && child.NextSibling() != nil {
			sb.WriteByte(' ')
		}
	}
}

func linesText(node ast.Node, source []byte) string {
	lines := node.Lines()
	var sb strings.Builder
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		sb.Write(segment.Value(source))
	}
	return strings.TrimSpace(sb.String())
}

func clampHeadingLevel(level int) int {
	if level < blocks.HeadingLevelMin {
		return blocks.HeadingLevelMin
	}
	if level > blocks.HeadingLevelMax {
		return blocks.HeadingLevelMax
	}
	return level
}

func localized(value string) blocks.LocalizedText {
	return blocks.LocalizedText{EN: value, AR: value}
}
