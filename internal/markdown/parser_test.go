package markdown

import (
	"testing"

	"github.com/goliatone/go-pagebuilder/internal/blocks"
)

func parse(t *testing.T, source string) blocks.Blocks {
	t.Helper()
	list, err := NewParser().ParseBlocks([]byte(source))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return list
}

func TestParseBlocksMapsHeadingsAndParagraphs(t *testing.T) {
	list := parse(t, "## Getting Started\n\nFirst paragraph.\n\nSecond paragraph.\n")

	if len(list) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(list))
	}
	heading, ok := list[0].(blocks.Heading)
	if !ok {
		t.Fatalf("expected heading, got %T", list[0])
	}
	if heading.Level != 2 || heading.Text.EN != "Getting Started" {
		t.Fatalf("unexpected heading %+v", heading)
	}
	paragraph, ok := list[1].(blocks.Paragraph)
	if !ok || paragraph.Text.EN != "First paragraph." {
		t.Fatalf("unexpected paragraph %+v", list[1])
	}
}

func TestParseBlocksClampsDeepHeadings(t *testing.T) {
	list := parse(t, "###### Tiny Heading\n")

	heading := list[0].(blocks.Heading)
	if heading.Level != blocks.HeadingLevelMax {
		t.Fatalf("expected clamped level %d, got %d", blocks.HeadingLevelMax, heading.Level)
	}
}

func TestParseBlocksMapsLists(t *testing.T) {
	list := parse(t, "1. first\n2. second\n\n- alpha\n- beta\n")

	if len(list) != 2 {
		t.Fatalf("expected 2 list blocks, got %d", len(list))
	}
	ordered := list[0].(blocks.List)
	if !ordered.Ordered || len(ordered.Items) != 2 || ordered.Items[1] != "second" {
		t.Fatalf("unexpected ordered list %+v", ordered)
	}
	bullets := list[1].(blocks.List)
	if bullets.Ordered || bullets.Items[0] != "alpha" {
		t.Fatalf("unexpected bullet list %+v", bullets)
	}
}

func TestParseBlocksMapsQuoteAndDivider(t *testing.T) {
	list := parse(t, "> Quoted wisdom.\n\n---\n")

	quote, ok := list[0].(blocks.Quote)
	if !ok || quote.Text.EN != "Quoted wisdom." {
		t.Fatalf("unexpected quote %+v", list[0])
	}
	if _, ok := list[1].(blocks.Divider); !ok {
		t.Fatalf("expected divider, got %T", list[1])
	}
}

func TestParseBlocksMapsStandaloneImage(t *testing.T) {
	list := parse(t, "![A forest](posts/forest)\n")

	image, ok := list[0].(blocks.Image)
	if !ok {
		t.Fatalf("expected image, got %T", list[0])
	}
	if image.PublicID != "posts/forest" || image.Alt.EN != "A forest" {
		t.Fatalf("unexpected image %+v", image)
	}
}

func TestParseBlocksMapsStandaloneLink(t *testing.T) {
	list := parse(t, "[Read the report](https://example.com/report)\n")

	link, ok := list[0].(blocks.Link)
	if !ok {
		t.Fatalf("expected link, got %T", list[0])
	}
	if link.Href != "https://example.com/report" || link.Label.EN != "Read the report" {
		t.Fatalf("unexpected link %+v", link)
	}
}

func TestParseBlocksKeepsInlineLinksAsParagraphText(t *testing.T) {
	list := parse(t, "See [the report](https://example.com) for details.\n")

	paragraph, ok := list[0].(blocks.Paragraph)
	if !ok {
		t.Fatalf("expected paragraph, got %T", list[0])
	}
	if paragraph.Text.EN != "See the report for details." {
		t.Fatalf("unexpected text %q", paragraph.Text.EN)
	}
}

func TestParseBlocksDowngradesCodeToParagraph(t *testing.T) {
	list := parse(t, "```\nfmt.Println(\"hi\")\n```\n")

	paragraph, ok := list[0].(blocks.Paragraph)
	if !ok {
		t.Fatalf("expected paragraph, got %T", list[0])
	}
	if paragraph.Text.EN != "fmt.Println(\"hi\")" {
		t.Fatalf("unexpected text %q", paragraph.Text.EN)
	}
}

func TestParseBlocksDropsRawHTML(t *testing.T) {
	list := parse(t, "<div>widget</div>\n\nAfter the widget.\n")

	if len(list) != 1 {
		t.Fatalf("expected only the paragraph, got %d blocks", len(list))
	}
	if _, ok := list[0].(blocks.Paragraph); !ok {
		t.Fatalf("expected paragraph, got %T", list[0])
	}
}

func TestParseBlocksFillsBothLocalesWithSameText(t *testing.T) {
	list := parse(t, "Shared body text.\n")

	paragraph := list[0].(blocks.Paragraph)
	if paragraph.Text.EN != paragraph.Text.AR {
		t.Fatalf("expected identical locale text, got %q and %q", paragraph.Text.EN, paragraph.Text.AR)
	}
}

func TestParseFrontMatterExtractsMeta(t *testing.T) {
	source := []byte(`---
title: Launch Notes
slug: launch-notes
summary: What shipped this week.
status: published
tags: [news, product]
author: amal
date: 2026-01-15T00:00:00Z
featured: true
---
Body text.
`)

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if meta.Title != "Launch Notes" || meta.Slug != "launch-notes" {
		t.Fatalf("unexpected meta %+v", meta)
	}
	if len(meta.Tags) != 2 || meta.Tags[0] != "news" {
		t.Fatalf("unexpected tags %v", meta.Tags)
	}
	if meta.Date == nil || meta.Date.Year() != 2026 {
		t.Fatalf("unexpected date %v", meta.Date)
	}
	if meta.Custom["featured"] != true {
		t.Fatalf("expected unknown keys in Custom, got %v", meta.Custom)
	}
	if string(body) != "Body text.\n" {
		t.Fatalf("unexpected body %q", string(body))
	}
}

func TestParseFrontMatterHandlesMissingBlock(t *testing.T) {
	meta, body, err := ParseFrontMatter([]byte("Just a body.\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if meta.Title != "" {
		t.Fatalf("expected empty meta, got %+v", meta)
	}
	if string(body) != "Just a body.\n" {
		t.Fatalf("unexpected body %q", string(body))
	}
}
