package content

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-pagebuilder/internal/blocks"
	"github.com/goliatone/go-pagebuilder/internal/layout"
	"github.com/goliatone/go-pagebuilder/internal/validation"
)

// FlatIssues validates the flat variant: title and excerpt lengths, SEO field
// lengths, and every block in order. Grid-only block variants are rejected
// here because blog posts and legacy pages never render them.
func FlatIssues(content LocalizedContent) []validation.Issue {
	collector := &validation.Collector{}

	validateTitle(collector, content.Title)
	if utf8.RuneCountInString(content.Excerpt) > ExcerptMaxLen {
		collector.Add("excerpt", validation.CodeFieldConstraint,
			fmt.Sprintf("excerpt must be at most %d characters", ExcerptMaxLen))
	}
	validateSEO(collector, content.SEO)

	if len(content.Blocks) == 0 {
		collector.Add("blocks", validation.CodeFieldConstraint, "at least one block is required")
	}
	for i, block := range content.Blocks {
		path := validation.IndexPath("blocks", i)
		if blocks.IsGridOnly(block.BlockType()) {
			collector.Add(validation.JoinPath(path, "type"), validation.CodeFieldConstraint,
				fmt.Sprintf("%s blocks are only available in the page builder", block.BlockType()))
			continue
		}
		collector.Merge(path, blocks.Issues(block))
	}

	return collector.Issues()
}

// GridIssues validates the grid variant: title, SEO, and every section with
// its nested rows, columns, and blocks.
func GridIssues(content LocaleContent) []validation.Issue {
	collector := &validation.Collector{}

	validateTitle(collector, content.Title)
	validateSEO(collector, content.SEO)

	for i, section := range content.Sections {
		collector.Merge(validation.IndexPath("sections", i), layout.SectionIssues(section))
	}

	return collector.Issues()
}

func validateTitle(collector *validation.Collector, title string) {
	if strings.TrimSpace(title) == "" {
		collector.Add("title", validation.CodeFieldConstraint, "title is required")
		return
	}
	// Limits are character counts, not byte counts. Arabic text is roughly
	// two bytes per character in UTF-8.
	if utf8.RuneCountInString(title) > TitleMaxLen {
		collector.Add("title", validation.CodeFieldConstraint,
			fmt.Sprintf("title must be at most %d characters", TitleMaxLen))
	}
}

func validateSEO(collector *validation.Collector, seo *SEO) {
	if seo == nil {
		return
	}
	if utf8.RuneCountInString(seo.Title) > SEOTitleMaxLen {
		collector.Add("seo.title", validation.CodeFieldConstraint,
			fmt.Sprintf("seo title must be at most %d characters", SEOTitleMaxLen))
	}
	if utf8.RuneCountInString(seo.Description) > SEODescriptionMaxLen {
		collector.Add("seo.description", validation.CodeFieldConstraint,
			fmt.Sprintf("seo description must be at most %d characters", SEODescriptionMaxLen))
	}
}
