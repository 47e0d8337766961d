package blocks

import (
	"errors"
	"testing"

	"github.com/goliatone/go-pagebuilder/internal/validation"
)

func issueAt(issues []validation.Issue, path string) *validation.Issue {
	for i := range issues {
		if issues[i].Path == path {
			return &issues[i]
		}
	}
	return nil
}

func TestValidateUnknownTypeCode(t *testing.T) {
	_, err := Validate(map[string]any{"type": "carousel"})
	if err == nil {
		t.Fatalf("expected error")
	}
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %T", err)
	}
	issue := issueAt(verr.Issues, "type")
	if issue == nil || issue.Code != validation.CodeUnknownBlockType {
		t.Fatalf("expected unknown_block_type at type, got %+v", verr.Issues)
	}
}

func TestValidateMissingTypeTag(t *testing.T) {
	_, err := Validate(map[string]any{"text": "hi"})
	if err == nil {
		t.Fatalf("expected error for missing type")
	}
}

func TestValidateAccumulatesFieldIssues(t *testing.T) {
	_, err := Validate(map[string]any{
		"type":  "heading",
		"level": 9,
	})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if issueAt(verr.Issues, "level") == nil {
		t.Fatalf("expected level issue, got %+v", verr.Issues)
	}
	if issueAt(verr.Issues, "text") == nil {
		t.Fatalf("expected text issue, got %+v", verr.Issues)
	}
}

func TestValidateAcceptsWellFormedBlock(t *testing.T) {
	block, err := Validate(map[string]any{
		"type":  "heading",
		"level": 2,
		"text":  map[string]any{"en": "Hello", "ar": "مرحبا"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if block.(Heading).Level != 2 {
		t.Fatalf("unexpected block %+v", block)
	}
}

func TestIssuesHeadingLevelBounds(t *testing.T) {
	for _, level := range []int{0, 5, -1} {
		issues := Issues(Heading{Level: level, Text: LocalizedText{EN: "x"}})
		if issueAt(issues, "level") == nil {
			t.Fatalf("expected level %d to be rejected", level)
		}
	}
	for level := HeadingLevelMin; level <= HeadingLevelMax; level++ {
		issues := Issues(Heading{Level: level, Text: LocalizedText{EN: "x"}})
		if len(issues) != 0 {
			t.Fatalf("expected level %d to pass, got %+v", level, issues)
		}
	}
}

func TestIssuesLinkHrefPattern(t *testing.T) {
	valid := []string{"https://example.com/a", "http://example.com", "/about"}
	for _, href := range valid {
		issues := Issues(Link{Href: href, Label: LocalizedText{EN: "x"}})
		if issueAt(issues, "href") != nil {
			t.Fatalf("expected %q to be accepted", href)
		}
	}
	invalid := []string{"", "javascript:alert(1)", "ftp://example.com", "about"}
	for _, href := range invalid {
		issues := Issues(Link{Href: href, Label: LocalizedText{EN: "x"}})
		if issueAt(issues, "href") == nil {
			t.Fatalf("expected %q to be rejected", href)
		}
	}
}

func TestIssuesListNeedsItems(t *testing.T) {
	issues := Issues(List{})
	if issueAt(issues, "items") == nil {
		t.Fatalf("expected items issue, got %+v", issues)
	}
	issues = Issues(List{Items: []string{"ok", " "}})
	if issueAt(issues, "items[1]") == nil {
		t.Fatalf("expected blank item issue, got %+v", issues)
	}
}

func TestIssuesButtonConstraints(t *testing.T) {
	issues := Issues(Button{Style: "tertiary"})
	if issueAt(issues, "label") == nil || issueAt(issues, "href") == nil || issueAt(issues, "style") == nil {
		t.Fatalf("expected label, href, and style issues, got %+v", issues)
	}
}

func TestIssuesEmbedRules(t *testing.T) {
	if issues := Issues(Embed{Provider: EmbedYouTube}); issueAt(issues, "url") == nil {
		t.Fatalf("expected youtube embed to need a source")
	}
	if issues := Issues(Embed{Provider: EmbedMap}); len(issues) != 0 {
		t.Fatalf("expected map embed to validate empty, got %+v", issues)
	}
	if issues := Issues(Embed{Provider: "tiktok", URL: "https://x"}); issueAt(issues, "provider") == nil {
		t.Fatalf("expected unknown provider to be rejected")
	}
	if issues := Issues(Embed{Provider: EmbedIframe, HTML: "<iframe></iframe>"}); len(issues) != 0 {
		t.Fatalf("expected iframe with html to pass, got %+v", issues)
	}
}

func TestIssuesDividerHasNone(t *testing.T) {
	if issues := Issues(Divider{}); len(issues) != 0 {
		t.Fatalf("expected no issues, got %+v", issues)
	}
}
