// Package blogs manages blog post documents: flat per-locale block content
// under a hyphenated slug, with a draft/published lifecycle.
package blogs

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-pagebuilder/internal/content"
	"github.com/goliatone/go-pagebuilder/internal/domain"
)

// BlogPost is the persisted blog document. Locale payloads are stored as
// JSON columns; the typed structs round-trip through them.
type BlogPost struct {
	bun.BaseModel `bun:"table:blog_posts,alias:bp"`

	ID          uuid.UUID                `bun:",pk,type:uuid" json:"id"`
	Slug        string                   `bun:"slug,notnull,unique" json:"slug"`
	Status      domain.Status            `bun:"status,notnull,default:'draft'" json:"status"`
	CoverImage  string                   `bun:"cover_image" json:"coverImage,omitempty"`
	Tags        []string                 `bun:"tags,type:jsonb" json:"tags,omitempty"`
	Author      string                   `bun:"author" json:"author,omitempty"`
	PublishedAt *time.Time               `bun:"published_at,nullzero" json:"publishedAt,omitempty"`
	EN          content.LocalizedContent `bun:"en,type:jsonb,notnull" json:"en"`
	AR          content.LocalizedContent `bun:"ar,type:jsonb,notnull" json:"ar"`
	CreatedAt   time.Time                `bun:"created_at,nullzero,default:current_timestamp" json:"createdAt"`
	UpdatedAt   time.Time                `bun:"updated_at,nullzero,default:current_timestamp" json:"updatedAt"`
}

// Locale returns the flat content stored for the given locale.
func (p *BlogPost) Locale(locale domain.Locale) content.LocalizedContent {
	if locale == domain.LocaleAR {
		return p.AR
	}
	return p.EN
}

// NormalizeTags lowercases, trims, de-duplicates, and sorts a tag list so
// stored tag sets compare deterministically.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		cleaned := strings.ToLower(strings.TrimSpace(tag))
		if cleaned == "" {
			continue
		}
		if _, ok := seen[cleaned]; ok {
			continue
		}
		seen[cleaned] = struct{}{}
		out = append(out, cleaned)
	}
	sort.Strings(out)
	if len(out) == 0 {
		return nil
	}
	return out
}

func clonePost(post *BlogPost) *BlogPost {
	if post == nil {
		return nil
	}
	cloned := *post
	if post.PublishedAt != nil {
		at := *post.PublishedAt
		cloned.PublishedAt = &at
	}
	if post.Tags != nil {
		cloned.Tags = append([]string(nil), post.Tags...)
	}
	cloned.EN = post.EN.Clone()
	cloned.AR = post.AR.Clone()
	return &cloned
}
