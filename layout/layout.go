// Package layout re-exports the responsive grid model.
package layout

import "github.com/goliatone/go-pagebuilder/internal/layout"

type (
	Breakpoint   = layout.Breakpoint
	Spacing      = layout.Spacing
	Visibility   = layout.Visibility
	Align        = layout.Align
	VAlign       = layout.VAlign
	GridCol      = layout.GridCol
	Row          = layout.Row
	Background   = layout.Background
	Container    = layout.Container
	SectionStyle = layout.SectionStyle
	Section      = layout.Section
)

// Responsive maps breakpoints to values, mobile-first.
type Responsive[T any] = layout.Responsive[T]

const (
	BreakpointBase = layout.BreakpointBase
	BreakpointSM   = layout.BreakpointSM
	BreakpointMD   = layout.BreakpointMD
	BreakpointLG   = layout.BreakpointLG
	BreakpointXL   = layout.BreakpointXL

	SpacingNone = layout.SpacingNone
	SpacingXS   = layout.SpacingXS
	SpacingSM   = layout.SpacingSM
	SpacingMD   = layout.SpacingMD
	SpacingLG   = layout.SpacingLG
	SpacingXL   = layout.SpacingXL

	VisibilityShow = layout.VisibilityShow
	VisibilityHide = layout.VisibilityHide

	AlignLeft   = layout.AlignLeft
	AlignCenter = layout.AlignCenter
	AlignRight  = layout.AlignRight

	VAlignStart  = layout.VAlignStart
	VAlignCenter = layout.VAlignCenter
	VAlignEnd    = layout.VAlignEnd

	GridUnits     = layout.GridUnits
	MaxRowColumns = layout.MaxRowColumns
)

// Breakpoints lists all breakpoints in cascade order.
func Breakpoints() []Breakpoint { return layout.Breakpoints() }

// SpanClasses resolves a responsive span into its class token list.
func SpanClasses(span Responsive[int]) []string { return layout.SpanClasses(span) }

// GapClasses resolves a responsive gap into its class token list.
func GapClasses(gap Responsive[Spacing]) []string { return layout.GapClasses(gap) }

// SectionClasses resolves a section style into its class token list.
func SectionClasses(style *SectionStyle) []string { return layout.SectionClasses(style) }
