package markup

// SpanElement is an inline container around one content value.
type SpanElement struct {
	attrs Attrs
	child Node
}

// Span builds an inline container. Content can be a string, a Node, a
// func() Node closure, or nothing at all; several values collapse into
// one group child. Span() renders <span></span>.
func Span(content ...any) SpanElement {
	return SpanElement{child: childOf(content)}
}

// Class returns a copy with the classes appended.
func (s SpanElement) Class(classes ...string) SpanElement {
	s.attrs = s.attrs.Class(classes...)
	return s
}

// Style returns a copy with the CSS declaration applied.
func (s SpanElement) Style(property, value string) SpanElement {
	s.attrs = s.attrs.Style(property, value)
	return s
}

// Attribute returns a copy with a custom attribute appended.
func (s SpanElement) Attribute(key, value string) SpanElement {
	s.attrs = s.attrs.Attribute(key, value)
	return s
}

// Aria returns a copy with an aria- attribute appended.
func (s SpanElement) Aria(key, value string) SpanElement {
	s.attrs = s.attrs.Aria(key, value)
	return s
}

// Data returns a copy with a data- attribute appended.
func (s SpanElement) Data(key, value string) SpanElement {
	s.attrs = s.attrs.Data(key, value)
	return s
}

// On returns a copy with an inline event handler for the actions.
func (s SpanElement) On(event string, actions ...Action) SpanElement {
	s.attrs = s.attrs.On(event, actions...)
	return s
}

// Attributes returns the element's attribute bag.
func (s SpanElement) Attributes() Attrs { return s.attrs }

// Markup renders the span and its content.
func (s SpanElement) Markup() string {
	return "<span" + s.attrs.String() + ">" + childMarkup(s.child) + "</span>"
}
