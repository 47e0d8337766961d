package domain

import "strings"

// Status represents lifecycle states for builder documents
type Status string

const (
	// StatusDraft indicates content still under preparation
	StatusDraft Status = "draft"
	// StatusPublished identifies content available to consumers
	StatusPublished Status = "published"
)

// IsValid reports whether the status is one of the supported lifecycle states.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished:
		return true
	default:
		return false
	}
}

// NormalizeStatus coerces arbitrary status strings into a known state,
// defaulting to draft for blank input.
func NormalizeStatus(input string) Status {
	if strings.TrimSpace(input) == "" {
		return StatusDraft
	}
	return Status(strings.ToLower(strings.TrimSpace(input)))
}

// Locale identifies one of the supported authoring languages.
type Locale string

const (
	// LocaleEN is the English locale.
	LocaleEN Locale = "en"
	// LocaleAR is the Arabic locale.
	LocaleAR Locale = "ar"
)

// IsValid reports whether the locale is supported.
func (l Locale) IsValid() bool {
	return l == LocaleEN || l == LocaleAR
}

// Other returns the opposite supported locale. Renderers fall back to it when
// the requested locale carries no blocks.
func (l Locale) Other() Locale {
	if l == LocaleAR {
		return LocaleEN
	}
	return LocaleAR
}

// Locales lists the supported locales in authoring order.
func Locales() []Locale {
	return []Locale{LocaleEN, LocaleAR}
}

// Template selects the page chrome used when a page is rendered.
type Template string

const (
	TemplateDefault Template = "default"
	TemplateLanding Template = "landing"
	TemplateBlank   Template = "blank"
)

// IsValid reports whether the template is one of the supported layouts.
func (t Template) IsValid() bool {
	switch t {
	case TemplateDefault, TemplateLanding, TemplateBlank:
		return true
	default:
		return false
	}
}
