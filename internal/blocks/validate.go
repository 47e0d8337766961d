package blocks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-pagebuilder/internal/validation"
)

var hrefPattern = regexp.MustCompile(`^(https?://|/)[A-Za-z0-9\-._~:/?#\[\]@!$&'()*+,;=%]*$`)

// Validate checks a raw block payload and returns the typed block when every
// constraint holds. All field errors are accumulated before returning so an
// editing UI can highlight every bad field at once. Unknown extra fields are
// ignored for forward compatibility.
func Validate(raw map[string]any) (Block, error) {
	collector := &validation.Collector{}

	tag := typeTag(raw)
	if tag == "" {
		collector.Add("type", validation.CodeUnknownBlockType, "block type is required")
		return nil, collector.Err()
	}
	if !IsKnownType(tag) {
		collector.Add("type", validation.CodeUnknownBlockType, fmt.Sprintf("unknown block type %q", tag))
		return nil, collector.Err()
	}

	if schema := schemaFor(tag); schema != nil {
		for _, issue := range validation.ValidatePayload(schema, raw) {
			collector.Add(issue.Path, issue.Code, issue.Message)
		}
	}

	block, ok := FromMap(raw)
	if !ok {
		collector.Add("", validation.CodeFieldConstraint, fmt.Sprintf("malformed %s block", tag))
		return nil, collector.Err()
	}

	for _, issue := range Issues(block) {
		collector.Add(issue.Path, issue.Code, issue.Message)
	}

	if err := collector.Err(); err != nil {
		return nil, err
	}
	return block, nil
}

// Issues runs the per-variant constraint pass over an already-decoded block.
// Content and document validators reuse it when walking typed trees.
func Issues(block Block) []validation.Issue {
	collector := &validation.Collector{}
	switch b := block.(type) {
	case Heading:
		if b.Level < HeadingLevelMin || b.Level > HeadingLevelMax {
			collector.Add("level", validation.CodeFieldConstraint,
				fmt.Sprintf("level must be between %d and %d", HeadingLevelMin, HeadingLevelMax))
		}
		if b.Text.IsEmpty() {
			collector.Add("text", validation.CodeFieldConstraint, "text must not be empty")
		}
	case Paragraph:
		if b.Text.IsEmpty() {
			collector.Add("text", validation.CodeFieldConstraint, "text must not be empty")
		}
	case Image:
		if strings.TrimSpace(b.PublicID) == "" {
			collector.Add("publicId", validation.CodeFieldConstraint, "publicId must not be empty")
		}
	case Video:
		if strings.TrimSpace(b.PublicID) == "" {
			collector.Add("publicId", validation.CodeFieldConstraint, "publicId must not be empty")
		}
	case Link:
		if !hrefPattern.MatchString(b.Href) {
			collector.Add("href", validation.CodeFieldConstraint, "href must be an absolute http(s) URL or a site-relative path")
		}
	case List:
		if len(b.Items) == 0 {
			collector.Add("items", validation.CodeFieldConstraint, "at least one item is required")
		}
		for i, item := range b.Items {
			if strings.TrimSpace(item) == "" {
				collector.Add(validation.IndexPath("items", i), validation.CodeFieldConstraint, "item must not be empty")
			}
		}
	case Quote:
		if b.Text.IsEmpty() {
			collector.Add("text", validation.CodeFieldConstraint, "text must not be empty")
		}
	case Divider:
		// No fields.
	case Button:
		if b.Label.IsEmpty() {
			collector.Add("label", validation.CodeFieldConstraint, "label must not be empty")
		}
		if strings.TrimSpace(b.Href) == "" {
			collector.Add("href", validation.CodeFieldConstraint, "href must not be empty")
		}
		if b.Style != "" && b.Style != ButtonPrimary && b.Style != ButtonSecondary {
			collector.Add("style", validation.CodeFieldConstraint, "style must be primary or secondary")
		}
	case IconFeature:
		if b.Title.IsEmpty() {
			collector.Add("title", validation.CodeFieldConstraint, "title must not be empty")
		}
	case Embed:
		switch b.Provider {
		case EmbedYouTube, EmbedVimeo, EmbedIframe:
			if strings.TrimSpace(b.URL) == "" && strings.TrimSpace(b.HTML) == "" {
				collector.Add("url", validation.CodeFieldConstraint, "url or html is required")
			}
		case EmbedMap:
			// Map embeds may be configured later.
		default:
			collector.Add("provider", validation.CodeFieldConstraint, "provider must be youtube, vimeo, map, or iframe")
		}
	default:
		collector.Add("type", validation.CodeUnknownBlockType, fmt.Sprintf("unknown block type %q", block.BlockType()))
	}
	return collector.Issues()
}

func typeTag(raw map[string]any) string {
	value, ok := raw["type"]
	if !ok {
		return ""
	}
	tag, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(tag)
}
