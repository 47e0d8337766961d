package content

import (
	"strings"
	"testing"

	"github.com/goliatone/go-pagebuilder/internal/blocks"
	"github.com/goliatone/go-pagebuilder/internal/layout"
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

func TestFlatIssuesRequiresTitleAndBlocks(t *testing.T) {
	issues := FlatIssues(LocalizedContent{})
	if issueAt(issues, "title") == nil {
		t.Fatalf("expected title issue, got %v", issues)
	}
	if issueAt(issues, "blocks") == nil {
		t.Fatalf("expected blocks issue, got %v", issues)
	}
}

func TestFlatIssuesAccumulatesAcrossBlocks(t *testing.T) {
	c := LocalizedContent{
		Title: "Post",
		Blocks: blocks.Blocks{
			blocks.Heading{Level: 9, Text: blocks.LocalizedText{EN: "h"}},
			blocks.Paragraph{},
		},
	}
	issues := FlatIssues(c)
	if issueAt(issues, "blocks[0].level") == nil {
		t.Fatalf("expected heading level issue, got %v", issues)
	}
	if issueAt(issues, "blocks[1].text") == nil {
		t.Fatalf("expected paragraph text issue, got %v", issues)
	}
}

func TestFlatIssuesRejectsGridOnlyBlocks(t *testing.T) {
	c := LocalizedContent{
		Title: "Post",
		Blocks: blocks.Blocks{
			blocks.Button{Label: blocks.LocalizedText{EN: "Go"}, Href: "/x"},
		},
	}
	issues := FlatIssues(c)
	issue := issueAt(issues, "blocks[0].type")
	if issue == nil {
		t.Fatalf("expected grid-only rejection, got %v", issues)
	}
	if issue.Code != validation.CodeFieldConstraint {
		t.Fatalf("unexpected code %q", issue.Code)
	}
}

func TestFlatIssuesTitleAndSEOLengths(t *testing.T) {
	c := LocalizedContent{
		Title:  strings.Repeat("a", TitleMaxLen+1),
		Blocks: blocks.Blocks{blocks.Paragraph{Text: blocks.LocalizedText{EN: "x"}}},
		SEO:    &SEO{Title: strings.Repeat("b", SEOTitleMaxLen+1)},
	}
	issues := FlatIssues(c)
	if issueAt(issues, "title") == nil {
		t.Fatalf("expected title length issue, got %v", issues)
	}
	if issueAt(issues, "seo.title") == nil {
		t.Fatalf("expected seo title issue, got %v", issues)
	}
}

func TestFlatIssuesCountsCharactersNotBytes(t *testing.T) {
	// 60 Arabic characters occupy ~120 bytes in UTF-8 and must still fit the
	// 100-character title limit.
	c := LocalizedContent{
		Title:  strings.Repeat("م", 60),
		Blocks: blocks.Blocks{blocks.Paragraph{Text: blocks.LocalizedText{AR: "نص"}}},
		SEO:    &SEO{Title: strings.Repeat("م", SEOTitleMaxLen)},
	}
	if issues := FlatIssues(c); len(issues) != 0 {
		t.Fatalf("expected Arabic title within limit, got %v", issues)
	}

	c.Title = strings.Repeat("م", TitleMaxLen+1)
	if issueAt(FlatIssues(c), "title") == nil {
		t.Fatal("expected title issue once the character limit is exceeded")
	}
}

func TestGridIssuesAddressesNestedPaths(t *testing.T) {
	c := LocaleContent{
		Title: "Page",
		Sections: []layout.Section{
			{
				Key: "hero",
				Rows: []layout.Row{
					{
						Columns: []layout.GridCol{
							{
								Span: layout.Responsive[int]{layout.BreakpointBase: 13},
								Blocks: blocks.Blocks{
									blocks.Paragraph{},
								},
							},
						},
					},
				},
			},
		},
	}
	issues := GridIssues(c)
	if issueAt(issues, "sections[0].rows[0].columns[0].span.base") == nil {
		t.Fatalf("expected span issue, got %v", issues)
	}
	if issueAt(issues, "sections[0].rows[0].columns[0].blocks[0].text") == nil {
		t.Fatalf("expected nested block issue, got %v", issues)
	}
}
