package markup

// DividerElement is a thematic break between blocks of content.
type DividerElement struct {
	attrs Attrs
}

// Divider builds a horizontal rule.
func Divider() DividerElement {
	return DividerElement{}
}

// Class returns a copy with the classes appended.
func (d DividerElement) Class(classes ...string) DividerElement {
	d.attrs = d.attrs.Class(classes...)
	return d
}

// Style returns a copy with the CSS declaration applied.
func (d DividerElement) Style(property, value string) DividerElement {
	d.attrs = d.attrs.Style(property, value)
	return d
}

// Attribute returns a copy with a custom attribute appended.
func (d DividerElement) Attribute(key, value string) DividerElement {
	d.attrs = d.attrs.Attribute(key, value)
	return d
}

// Attributes returns the element's attribute bag.
func (d DividerElement) Attributes() Attrs { return d.attrs }

// Markup renders <hr>.
func (d DividerElement) Markup() string {
	return "<hr" + d.attrs.String() + ">"
}
