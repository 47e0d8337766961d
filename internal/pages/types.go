// Package pages manages site pages: grid-based per-locale section layouts
// addressed by a rooted path, rendered through one of the registered
// templates.
package pages

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-pagebuilder/internal/content"
	"github.com/goliatone/go-pagebuilder/internal/domain"
)

// Page is the persisted page document. Locale payloads hold the full section
// tree and are stored as JSON columns.
type Page struct {
	bun.BaseModel `bun:"table:pages,alias:pg"`

	ID        uuid.UUID             `bun:",pk,type:uuid" json:"id"`
	Path      string                `bun:"path,notnull,unique" json:"path"`
	Template  domain.Template       `bun:"template,notnull,default:'default'" json:"template"`
	Status    domain.Status         `bun:"status,notnull,default:'draft'" json:"status"`
	EN        content.LocaleContent `bun:"en,type:jsonb,notnull" json:"en"`
	AR        content.LocaleContent `bun:"ar,type:jsonb,notnull" json:"ar"`
	CreatedAt time.Time             `bun:"created_at,nullzero,default:current_timestamp" json:"createdAt"`
	UpdatedAt time.Time             `bun:"updated_at,nullzero,default:current_timestamp" json:"updatedAt"`
}

// Locale returns the grid content stored for the given locale.
func (p *Page) Locale(locale domain.Locale) content.LocaleContent {
	if locale == domain.LocaleAR {
		return p.AR
	}
	return p.EN
}

func clonePage(page *Page) *Page {
	if page == nil {
		return nil
	}
	cloned := *page
	cloned.EN = page.EN.Clone()
	cloned.AR = page.AR.Clone()
	return &cloned
}
