package markup

import (
	"fmt"
	"strconv"
)

// SpacingAmount is the semantic spacing scale, mapped onto the spacing
// utility suffixes 0 through 5.
type SpacingAmount int

const (
	SpacingNone SpacingAmount = iota
	SpacingExtraSmall
	SpacingSmall
	SpacingMedium
	SpacingLarge
	SpacingExtraLarge
)

// String returns the amount's name.
func (s SpacingAmount) String() string {
	switch s {
	case SpacingNone:
		return "none"
	case SpacingExtraSmall:
		return "extra-small"
	case SpacingSmall:
		return "small"
	case SpacingMedium:
		return "medium"
	case SpacingLarge:
		return "large"
	case SpacingExtraLarge:
		return "extra-large"
	default:
		return "unknown"
	}
}

// suffix returns the utility-class suffix for the amount.
func (s SpacingAmount) suffix() string {
	if s < SpacingNone || s > SpacingExtraLarge {
		panic(fmt.Sprintf("markup: invalid spacing amount %d", int(s)))
	}
	return strconv.Itoa(int(s))
}

// spacerMode is the three-way sizing state a spacer is constructed
// into. It never changes after construction; mutators only move the
// axis.
type spacerMode int

const (
	spacerAutomatic spacerMode = iota
	spacerExact
	spacerSemantic
)

// spacerAxis selects which edge or dimension the sizing mode maps to.
type spacerAxis int

const (
	axisVertical spacerAxis = iota
	axisHorizontal
)

// SpacerElement pushes neighboring content apart along one axis. Its
// whole meaning lives in its attributes; the body is always empty.
type SpacerElement struct {
	attrs  Attrs
	mode   spacerMode
	axis   spacerAxis
	pixels int
	amount SpacingAmount
}

// Spacer builds a spacer. The argument fixes the sizing mode for the
// element's lifetime: none for automatic (fill the remaining space), an
// int for an exact pixel size, or a SpacingAmount for the semantic
// scale. Spacer() renders <div class="mt-auto"></div>.
func Spacer(size ...any) SpacerElement {
	spacer := SpacerElement{}
	if len(size) == 0 {
		return spacer
	}
	if len(size) > 1 {
		panic(fmt.Sprintf("markup: Spacer takes at most one size, got %d", len(size)))
	}

	switch v := size[0].(type) {
	case int:
		spacer.mode = spacerExact
		spacer.pixels = v
	case SpacingAmount:
		spacer.mode = spacerSemantic
		spacer.amount = v
	default:
		panic(fmt.Sprintf("markup: unsupported spacer size type %T", size[0]))
	}
	return spacer
}

// Horizontal returns a copy spacing along the inline axis.
func (s SpacerElement) Horizontal() SpacerElement {
	s.axis = axisHorizontal
	return s
}

// Vertical returns a copy spacing along the block axis.
func (s SpacerElement) Vertical() SpacerElement {
	s.axis = axisVertical
	return s
}

// Class returns a copy with the classes appended.
func (s SpacerElement) Class(classes ...string) SpacerElement {
	s.attrs = s.attrs.Class(classes...)
	return s
}

// Style returns a copy with the CSS declaration applied.
func (s SpacerElement) Style(property, value string) SpacerElement {
	s.attrs = s.attrs.Style(property, value)
	return s
}

// Attribute returns a copy with a custom attribute appended.
func (s SpacerElement) Attribute(key, value string) SpacerElement {
	s.attrs = s.attrs.Attribute(key, value)
	return s
}

// Attributes returns the element's attribute bag.
func (s SpacerElement) Attributes() Attrs { return s.attrs }

// Markup renders the spacer. A mode outside the three defined cases is
// a construction bug and panics rather than rendering nothing.
func (s SpacerElement) Markup() string {
	attrs := s.attrs
	switch s.mode {
	case spacerAutomatic:
		attrs = attrs.Class(s.axis.utilityClass("auto"))
	case spacerExact:
		attrs = attrs.Style(s.axis.dimension(), strconv.Itoa(s.pixels)+"px")
	case spacerSemantic:
		attrs = attrs.Class(s.axis.utilityClass(s.amount.suffix()))
	default:
		panic(fmt.Sprintf("markup: invalid spacer mode %d", int(s.mode)))
	}
	return "<div" + attrs.String() + "></div>"
}

// utilityClass maps the axis to its margin utility: top edge for the
// block axis, start edge for the inline axis.
func (a spacerAxis) utilityClass(suffix string) string {
	switch a {
	case axisVertical:
		return "mt-" + suffix
	case axisHorizontal:
		return "ms-" + suffix
	}
	panic(fmt.Sprintf("markup: invalid spacer axis %d", int(a)))
}

// dimension maps the axis to the CSS property an exact size sets.
func (a spacerAxis) dimension() string {
	switch a {
	case axisVertical:
		return "height"
	case axisHorizontal:
		return "width"
	}
	panic(fmt.Sprintf("markup: invalid spacer axis %d", int(a)))
}
