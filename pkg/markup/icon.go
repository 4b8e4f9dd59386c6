package markup

// IconElement is a glyph from the Bootstrap icon font.
type IconElement struct {
	attrs Attrs
	name  string
}

// Icon builds a glyph. The name maps onto the icon font's class pair
// and nothing checks that the glyph exists.
func Icon(name string) IconElement {
	return IconElement{name: name}
}

// Class returns a copy with the classes appended after the icon's own.
func (i IconElement) Class(classes ...string) IconElement {
	i.attrs = i.attrs.Class(classes...)
	return i
}

// Style returns a copy with the CSS declaration applied.
func (i IconElement) Style(property, value string) IconElement {
	i.attrs = i.attrs.Style(property, value)
	return i
}

// Attribute returns a copy with a custom attribute appended.
func (i IconElement) Attribute(key, value string) IconElement {
	i.attrs = i.attrs.Attribute(key, value)
	return i
}

// Aria returns a copy with an aria- attribute appended.
func (i IconElement) Aria(key, value string) IconElement {
	i.attrs = i.attrs.Aria(key, value)
	return i
}

// Attributes returns the element's attribute bag.
func (i IconElement) Attributes() Attrs { return i.attrs }

// Markup renders <i class="bi bi-<name>"></i>.
func (i IconElement) Markup() string {
	attrs := Attrs{}.Class("bi", "bi-"+i.name).merge(i.attrs)
	return "<i" + attrs.String() + "></i>"
}
