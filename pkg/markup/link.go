package markup

// LinkElement is a hyperlink. It renders as plain text by default and
// can borrow the button styling through ButtonStyle.
type LinkElement struct {
	attrs     Attrs
	href      string
	child     Node
	role      Role
	styled    bool
	newWindow bool
}

// Link builds a hyperlink to the given destination. Content follows the
// usual builder shapes; with none the destination is still emitted and
// the body is empty.
func Link(href string, content ...any) LinkElement {
	return LinkElement{href: href, child: childOf(content)}
}

// ButtonStyle returns a copy styled as a button with the given role.
func (l LinkElement) ButtonStyle(role Role) LinkElement {
	l.role = role
	l.styled = true
	return l
}

// OpenInNewWindow returns a copy that opens in a new browsing context,
// with the opener reference severed.
func (l LinkElement) OpenInNewWindow() LinkElement {
	l.newWindow = true
	return l
}

// Class returns a copy with the classes appended.
func (l LinkElement) Class(classes ...string) LinkElement {
	l.attrs = l.attrs.Class(classes...)
	return l
}

// Style returns a copy with the CSS declaration applied.
func (l LinkElement) Style(property, value string) LinkElement {
	l.attrs = l.attrs.Style(property, value)
	return l
}

// Attribute returns a copy with a custom attribute appended.
func (l LinkElement) Attribute(key, value string) LinkElement {
	l.attrs = l.attrs.Attribute(key, value)
	return l
}

// Aria returns a copy with an aria- attribute appended.
func (l LinkElement) Aria(key, value string) LinkElement {
	l.attrs = l.attrs.Aria(key, value)
	return l
}

// Data returns a copy with a data- attribute appended.
func (l LinkElement) Data(key, value string) LinkElement {
	l.attrs = l.attrs.Data(key, value)
	return l
}

// On returns a copy with an inline event handler for the actions.
func (l LinkElement) On(event string, actions ...Action) LinkElement {
	l.attrs = l.attrs.On(event, actions...)
	return l
}

// Attributes returns the element's attribute bag.
func (l LinkElement) Attributes() Attrs { return l.attrs }

// Markup renders the anchor. Button styling contributes its classes
// ahead of caller classes, and new-window links carry target and rel.
func (l LinkElement) Markup() string {
	attrs := Attrs{}
	if l.styled {
		attrs = attrs.Class("btn")
		role, ok := roleClasses[l.role]
		if !ok {
			panic("markup: invalid link role")
		}
		if role != "" {
			attrs = attrs.Class(role)
		}
	}
	attrs = attrs.merge(l.attrs)
	if l.newWindow {
		attrs = attrs.Attribute("target", "_blank").Attribute("rel", "noopener noreferrer")
	}

	return `<a href="` + escapeAttr(l.href) + `"` + attrs.String() + ">" + childMarkup(l.child) + "</a>"
}
