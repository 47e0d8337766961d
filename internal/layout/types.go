// Package layout models the page builder's three-level grid (Section → Row →
// GridCol) together with the responsive attribute system shared by sections,
// rows, and columns. Responsive values are mobile-first: base applies always
// and larger breakpoints override only when explicitly set.
package layout

import (
	"maps"

	"github.com/goliatone/go-pagebuilder/internal/blocks"
)

// Breakpoint names one of the responsive widths, smallest to largest.
type Breakpoint string

const (
	BreakpointBase Breakpoint = "base"
	BreakpointSM   Breakpoint = "sm"
	BreakpointMD   Breakpoint = "md"
	BreakpointLG   Breakpoint = "lg"
	BreakpointXL   Breakpoint = "xl"
)

// Breakpoints lists the supported breakpoints in cascade order.
func Breakpoints() []Breakpoint {
	return []Breakpoint{BreakpointBase, BreakpointSM, BreakpointMD, BreakpointLG, BreakpointXL}
}

// IsValid reports whether the breakpoint is supported.
func (b Breakpoint) IsValid() bool {
	switch b {
	case BreakpointBase, BreakpointSM, BreakpointMD, BreakpointLG, BreakpointXL:
		return true
	default:
		return false
	}
}

// Responsive maps breakpoints to values of T. Un-set breakpoints inherit the
// nearest smaller set value at consumption time; the resolver emits nothing
// for them, mirroring CSS media-query cascading.
type Responsive[T any] map[Breakpoint]T

// Spacing enumerates the spacing scale shared by gaps and padding.
type Spacing string

const (
	SpacingNone Spacing = "none"
	SpacingXS   Spacing = "xs"
	SpacingSM   Spacing = "sm"
	SpacingMD   Spacing = "md"
	SpacingLG   Spacing = "lg"
	SpacingXL   Spacing = "xl"
)

// IsValid reports whether the spacing value is on the scale.
func (s Spacing) IsValid() bool {
	switch s {
	case SpacingNone, SpacingXS, SpacingSM, SpacingMD, SpacingLG, SpacingXL:
		return true
	default:
		return false
	}
}

// Visibility toggles a column per breakpoint.
type Visibility string

const (
	VisibilityShow Visibility = "show"
	VisibilityHide Visibility = "hide"
)

// Align is the horizontal alignment of a column's content.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// VAlign is the vertical alignment of a column within its row.
type VAlign string

const (
	VAlignStart  VAlign = "start"
	VAlignCenter VAlign = "center"
	VAlignEnd    VAlign = "end"
)

// Grid bounds fixed by the schema.
const (
	GridUnits     = 12
	MaxRowColumns = 6
)

// GridCol is a single column terminating in an ordered block list.
type GridCol struct {
	Span       Responsive[int]        `json:"span,omitempty"`
	Align      Align                  `json:"align,omitempty"`
	VAlign     VAlign                 `json:"vAlign,omitempty"`
	Visibility Responsive[Visibility] `json:"visibility,omitempty"`
	Blocks     blocks.Blocks          `json:"blocks"`
}

// Row groups 1..6 columns with an optional responsive gap.
type Row struct {
	Gap     Responsive[Spacing] `json:"gap,omitempty"`
	Columns []GridCol           `json:"columns"`
}

// Background enumerates section background treatments.
type Background string

const (
	BackgroundWhite Background = "white"
	BackgroundCream Background = "cream"
	BackgroundGreen Background = "green"
	BackgroundGold  Background = "gold"
	BackgroundDark  Background = "dark"
)

// Container enumerates section content widths.
type Container string

const (
	ContainerNarrow Container = "narrow"
	ContainerNormal Container = "normal"
	ContainerWide   Container = "wide"
	ContainerFull   Container = "full"
)

// SectionStyle carries the declarative styling attributes of a section.
type SectionStyle struct {
	Background    Background          `json:"background,omitempty"`
	Container     Container           `json:"container,omitempty"`
	PaddingTop    Responsive[Spacing] `json:"paddingTop,omitempty"`
	PaddingBottom Responsive[Spacing] `json:"paddingBottom,omitempty"`
	DividerTop    bool                `json:"dividerTop,omitempty"`
	DividerBottom bool                `json:"dividerBottom,omitempty"`
}

// Section is a named slice of the page. It carries either Rows (grid layout)
// or Blocks (flat layout); when both are present Rows wins and Blocks is
// ignored, and when neither is present the section renders nothing.
type Section struct {
	Key    string        `json:"key"`
	Label  string        `json:"label,omitempty"`
	Style  *SectionStyle `json:"style,omitempty"`
	Rows   []Row         `json:"rows,omitempty"`
	Blocks blocks.Blocks `json:"blocks,omitempty"`
}

// Clone returns a deep copy of the section tree. Stores rely on it to hand
// out records that share no backing storage with their callers.
func (s Section) Clone() Section {
	out := s
	if s.Style != nil {
		style := *s.Style
		style.PaddingTop = cloneResponsive(s.Style.PaddingTop)
		style.PaddingBottom = cloneResponsive(s.Style.PaddingBottom)
		out.Style = &style
	}
	if s.Rows != nil {
		out.Rows = make([]Row, len(s.Rows))
		for i, row := range s.Rows {
			out.Rows[i] = row.Clone()
		}
	}
	out.Blocks = s.Blocks.Clone()
	return out
}

// Clone returns a deep copy of the row and its columns.
func (r Row) Clone() Row {
	out := r
	out.Gap = cloneResponsive(r.Gap)
	if r.Columns != nil {
		out.Columns = make([]GridCol, len(r.Columns))
		for i, column := range r.Columns {
			out.Columns[i] = column.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the column.
func (c GridCol) Clone() GridCol {
	out := c
	out.Span = cloneResponsive(c.Span)
	out.Visibility = cloneResponsive(c.Visibility)
	out.Blocks = c.Blocks.Clone()
	return out
}

func cloneResponsive[T any](src Responsive[T]) Responsive[T] {
	if src == nil {
		return nil
	}
	out := make(Responsive[T], len(src))
	maps.Copy(out, src)
	return out
}
