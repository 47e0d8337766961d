package layout

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-pagebuilder/internal/blocks"
	"github.com/goliatone/go-pagebuilder/internal/validation"
)

// SectionIssues validates a section's structure, style enums, and every
// nested row, column, and block. Paths are relative to the section so callers
// can prefix them with their own position (e.g. "sections[2]").
func SectionIssues(section Section) []validation.Issue {
	collector := &validation.Collector{}

	if strings.TrimSpace(section.Key) == "" {
		collector.Add("key", validation.CodeFieldConstraint, "key is required")
	}
	if section.Style != nil {
		collector.Merge("style", styleIssues(section.Style))
	}

	for i, row := range section.Rows {
		collector.Merge(validation.IndexPath("rows", i), rowIssues(row))
	}

	// Rows shadow Blocks at render time, but stored flat blocks are still
	// validated so stale content cannot hide broken data.
	for i, block := range section.Blocks {
		collector.Merge(validation.IndexPath("blocks", i), blocks.Issues(block))
	}

	return collector.Issues()
}

func rowIssues(row Row) []validation.Issue {
	collector := &validation.Collector{}

	if len(row.Columns) == 0 {
		collector.Add("columns", validation.CodeFieldConstraint, "at least one column is required")
	}
	if len(row.Columns) > MaxRowColumns {
		collector.Add("columns", validation.CodeFieldConstraint,
			fmt.Sprintf("a row supports at most %d columns", MaxRowColumns))
	}
	collector.Merge("gap", spacingIssues(row.Gap))

	for i, column := range row.Columns {
		collector.Merge(validation.IndexPath("columns", i), columnIssues(column))
	}

	return collector.Issues()
}

func columnIssues(column GridCol) []validation.Issue {
	collector := &validation.Collector{}

	for bp, units := range column.Span {
		if !bp.IsValid() {
			collector.Add("span", validation.CodeFieldConstraint, fmt.Sprintf("unknown breakpoint %q", bp))
			continue
		}
		if units < 1 || units > GridUnits {
			collector.Add("span."+string(bp), validation.CodeFieldConstraint,
				fmt.Sprintf("span must be between 1 and %d", GridUnits))
		}
	}
	if column.Align != "" && AlignClass(column.Align) == "" {
		collector.Add("align", validation.CodeFieldConstraint, "align must be left, center, or right")
	}
	if column.VAlign != "" && VAlignClass(column.VAlign) == "" {
		collector.Add("vAlign", validation.CodeFieldConstraint, "vAlign must be start, center, or end")
	}
	for bp, visibility := range column.Visibility {
		if !bp.IsValid() {
			collector.Add("visibility", validation.CodeFieldConstraint, fmt.Sprintf("unknown breakpoint %q", bp))
			continue
		}
		if visibility != VisibilityShow && visibility != VisibilityHide {
			collector.Add("visibility."+string(bp), validation.CodeFieldConstraint, "visibility must be show or hide")
		}
	}

	for i, block := range column.Blocks {
		collector.Merge(validation.IndexPath("blocks", i), blocks.Issues(block))
	}

	return collector.Issues()
}

func styleIssues(style *SectionStyle) []validation.Issue {
	collector := &validation.Collector{}

	if style.Background != "" {
		switch style.Background {
		case BackgroundWhite, BackgroundCream, BackgroundGreen, BackgroundGold, BackgroundDark:
		default:
			collector.Add("background", validation.CodeFieldConstraint,
				"background must be white, cream, green, gold, or dark")
		}
	}
	if style.Container != "" {
		switch style.Container {
		case ContainerNarrow, ContainerNormal, ContainerWide, ContainerFull:
		default:
			collector.Add("container", validation.CodeFieldConstraint,
				"container must be narrow, normal, wide, or full")
		}
	}
	collector.Merge("paddingTop", spacingIssues(style.PaddingTop))
	collector.Merge("paddingBottom", spacingIssues(style.PaddingBottom))

	return collector.Issues()
}

func spacingIssues(values Responsive[Spacing]) []validation.Issue {
	collector := &validation.Collector{}
	for bp, spacing := range values {
		if !bp.IsValid() {
			collector.Add("", validation.CodeFieldConstraint, fmt.Sprintf("unknown breakpoint %q", bp))
			continue
		}
		if !spacing.IsValid() {
			collector.Add(string(bp), validation.CodeFieldConstraint,
				"spacing must be none, xs, sm, md, lg, or xl")
		}
	}
	return collector.Issues()
}
