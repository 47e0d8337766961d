// Package domain re-exports the shared enumerations.
package domain

import "github.com/goliatone/go-pagebuilder/internal/domain"

type (
	Status   = domain.Status
	Locale   = domain.Locale
	Template = domain.Template
)

const (
	StatusDraft     = domain.StatusDraft
	StatusPublished = domain.StatusPublished

	LocaleEN = domain.LocaleEN
	LocaleAR = domain.LocaleAR

	TemplateDefault = domain.TemplateDefault
	TemplateLanding = domain.TemplateLanding
	TemplateBlank   = domain.TemplateBlank
)

// NormalizeStatus maps free-form input onto the status enum, defaulting to
// draft.
func NormalizeStatus(input string) Status { return domain.NormalizeStatus(input) }

// Locales lists the supported locales.
func Locales() []Locale { return domain.Locales() }
