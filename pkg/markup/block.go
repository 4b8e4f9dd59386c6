package markup

// BlockElement is a generic block container. Grid helpers wrap other
// elements in one, and pages use it for structure.
type BlockElement struct {
	attrs Attrs
	child Node
}

// Block builds a block container around the given content.
func Block(content ...any) BlockElement {
	return BlockElement{child: childOf(content)}
}

// Class returns a copy with the classes appended.
func (b BlockElement) Class(classes ...string) BlockElement {
	b.attrs = b.attrs.Class(classes...)
	return b
}

// Style returns a copy with the CSS declaration applied.
func (b BlockElement) Style(property, value string) BlockElement {
	b.attrs = b.attrs.Style(property, value)
	return b
}

// Attribute returns a copy with a custom attribute appended.
func (b BlockElement) Attribute(key, value string) BlockElement {
	b.attrs = b.attrs.Attribute(key, value)
	return b
}

// Aria returns a copy with an aria- attribute appended.
func (b BlockElement) Aria(key, value string) BlockElement {
	b.attrs = b.attrs.Aria(key, value)
	return b
}

// Data returns a copy with a data- attribute appended.
func (b BlockElement) Data(key, value string) BlockElement {
	b.attrs = b.attrs.Data(key, value)
	return b
}

// On returns a copy with an inline event handler for the actions.
func (b BlockElement) On(event string, actions ...Action) BlockElement {
	b.attrs = b.attrs.On(event, actions...)
	return b
}

// Attributes returns the element's attribute bag.
func (b BlockElement) Attributes() Attrs { return b.attrs }

// Markup renders the container and its content.
func (b BlockElement) Markup() string {
	return "<div" + b.attrs.String() + ">" + childMarkup(b.child) + "</div>"
}
