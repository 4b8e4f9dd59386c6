package markup

import (
	"fmt"
	"strings"
)

// Style is a single CSS declaration.
type Style struct {
	Property string
	Value    string
}

// Attr is a custom attribute. A flag attribute has no value and renders
// as the bare key, like disabled.
type Attr struct {
	Key   string
	Value string
	flag  bool
}

// Attrs is an element's attribute bag: CSS classes, inline styles, and
// custom attributes, serialized in that order.
//
// Classes are duplicate-suppressed, the first occurrence keeping its
// position. Setting a style whose property already exists replaces the
// value in place. Custom attributes keep insertion order and permit
// duplicates, e.g. repeated data- attributes.
//
// The zero value is an empty bag. All mutators copy the receiver and
// return the copy; a bag handed to one node is never mutated through
// another.
type Attrs struct {
	classes []string
	styles  []Style
	custom  []Attr
}

// Class returns a copy of the bag with the classes appended. Empty
// strings and classes the bag already holds are skipped.
func (a Attrs) Class(classes ...string) Attrs {
	out := a.clone()
	for _, class := range classes {
		if class == "" || out.hasClass(class) {
			continue
		}
		out.classes = append(out.classes, class)
	}
	return out
}

// Style returns a copy of the bag with the declaration applied. Setting
// a property the bag already holds replaces its value, keeping the
// original position.
func (a Attrs) Style(property, value string) Attrs {
	out := a.clone()
	for i := range out.styles {
		if out.styles[i].Property == property {
			out.styles[i].Value = value
			return out
		}
	}
	out.styles = append(out.styles, Style{Property: property, Value: value})
	return out
}

// Attribute returns a copy of the bag with a custom attribute appended.
func (a Attrs) Attribute(key, value string) Attrs {
	out := a.clone()
	out.custom = append(out.custom, Attr{Key: key, Value: value})
	return out
}

// Flag returns a copy of the bag with a value-less attribute appended.
func (a Attrs) Flag(key string) Attrs {
	out := a.clone()
	out.custom = append(out.custom, Attr{Key: key, flag: true})
	return out
}

// Aria returns a copy of the bag with an aria- attribute appended.
func (a Attrs) Aria(key, value string) Attrs {
	return a.Attribute("aria-"+key, value)
}

// Data returns a copy of the bag with a data- attribute appended.
func (a Attrs) Data(key, value string) Attrs {
	return a.Attribute("data-"+key, value)
}

// Classes returns the bag's classes in insertion order.
func (a Attrs) Classes() []string {
	return append([]string(nil), a.classes...)
}

// IsEmpty reports whether the bag holds no directives at all.
func (a Attrs) IsEmpty() bool {
	return len(a.classes) == 0 && len(a.styles) == 0 && len(a.custom) == 0
}

// String serializes the bag: classes first, then styles, then custom
// attributes, each prefixed with a single space so the result splices
// directly after a tag name. An empty bag yields "".
func (a Attrs) String() string {
	var buf strings.Builder

	if len(a.classes) > 0 {
		fmt.Fprintf(&buf, ` class="%s"`, escapeAttr(strings.Join(a.classes, " ")))
	}

	if len(a.styles) > 0 {
		buf.WriteString(` style="`)
		for i, style := range a.styles {
			if i > 0 {
				buf.WriteString("; ")
			}
			buf.WriteString(escapeAttr(style.Property))
			buf.WriteString(": ")
			buf.WriteString(escapeAttr(style.Value))
		}
		buf.WriteString(`"`)
	}

	for _, attr := range a.custom {
		if attr.Key == "" {
			continue
		}
		if attr.flag {
			buf.WriteString(" ")
			buf.WriteString(attr.Key)
			continue
		}
		fmt.Fprintf(&buf, ` %s="%s"`, attr.Key, escapeAttr(attr.Value))
	}

	return buf.String()
}

// merge returns a copy of the bag extended with every directive from
// other, applying the usual rules: classes dedup, styles replace by
// property, custom attributes append.
func (a Attrs) merge(other Attrs) Attrs {
	out := a.Class(other.classes...)
	for _, style := range other.styles {
		out = out.Style(style.Property, style.Value)
	}
	if len(other.custom) > 0 {
		out.custom = append(out.custom, other.custom...)
	}
	return out
}

func (a Attrs) hasClass(class string) bool {
	for _, c := range a.classes {
		if c == class {
			return true
		}
	}
	return false
}

func (a Attrs) clone() Attrs {
	out := Attrs{}
	if len(a.classes) > 0 {
		out.classes = append([]string(nil), a.classes...)
	}
	if len(a.styles) > 0 {
		out.styles = append([]Style(nil), a.styles...)
	}
	if len(a.custom) > 0 {
		out.custom = append([]Attr(nil), a.custom...)
	}
	return out
}
