package layout

import "fmt"

// Class token resolution. Every responsive attribute resolves to an ordered
// token list: one unconditional base token (or the documented default when
// the attribute is absent) plus one breakpoint-prefixed token per explicit
// override. Breakpoints without an override emit nothing; the consuming
// layout system cascades them.

// SpanClasses resolves a column span. An entirely absent span defaults to the
// full grid width.
func SpanClasses(span Responsive[int]) []string {
	return resolve(span, fmt.Sprintf("col-span-%d", GridUnits), func(units int) string {
		return fmt.Sprintf("col-span-%d", units)
	})
}

// GapClasses resolves a row gap. Absent gaps emit no tokens.
func GapClasses(gap Responsive[Spacing]) []string {
	return resolveOptional(gap, func(s Spacing) string {
		return "gap-" + string(s)
	})
}

// PaddingClasses resolves a padding edge ("pt" or "pb").
func PaddingClasses(edge string, padding Responsive[Spacing]) []string {
	return resolveOptional(padding, func(s Spacing) string {
		return edge + "-" + string(s)
	})
}

// VisibilityClasses resolves column visibility toggles.
func VisibilityClasses(visibility Responsive[Visibility]) []string {
	return resolveOptional(visibility, func(v Visibility) string {
		if v == VisibilityHide {
			return "hidden"
		}
		return "block"
	})
}

// AlignClass returns the text alignment token, empty when unset.
func AlignClass(align Align) string {
	switch align {
	case AlignLeft, AlignCenter, AlignRight:
		return "text-" + string(align)
	default:
		return ""
	}
}

// VAlignClass returns the self-alignment token, empty when unset.
func VAlignClass(valign VAlign) string {
	switch valign {
	case VAlignStart, VAlignCenter, VAlignEnd:
		return "self-" + string(valign)
	default:
		return ""
	}
}

// SectionClasses resolves a section's style attributes into class tokens.
// Dividers are structural (rendered as rule nodes) and do not emit classes.
func SectionClasses(style *SectionStyle) []string {
	if style == nil {
		return nil
	}
	var out []string
	if style.Background != "" {
		out = append(out, "bg-"+string(style.Background))
	}
	if style.Container != "" {
		out = append(out, "container-"+string(style.Container))
	}
	out = append(out, PaddingClasses("pt", style.PaddingTop)...)
	out = append(out, PaddingClasses("pb", style.PaddingBottom)...)
	return out
}

// resolve emits the base token (value or fallback) followed by prefixed
// tokens for explicit overrides in cascade order.
func resolve[T any](values Responsive[T], fallback string, token func(T) string) []string {
	out := make([]string, 0, len(values)+1)
	if base, ok := values[BreakpointBase]; ok {
		out = append(out, token(base))
	} else {
		out = append(out, fallback)
	}
	for _, bp := range Breakpoints() {
		if bp == BreakpointBase {
			continue
		}
		if value, ok := values[bp]; ok {
			out = append(out, string(bp)+":"+token(value))
		}
	}
	return out
}

// resolveOptional is resolve without a default: fully absent attributes emit
// nothing at all.
func resolveOptional[T any](values Responsive[T], token func(T) string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	if base, ok := values[BreakpointBase]; ok {
		out = append(out, token(base))
	}
	for _, bp := range Breakpoints() {
		if bp == BreakpointBase {
			continue
		}
		if value, ok := values[bp]; ok {
			out = append(out, string(bp)+":"+token(value))
		}
	}
	return out
}
