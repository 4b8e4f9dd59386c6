package markup

import "fmt"

// badgeClasses maps roles to their badge color classes. The close role
// has no badge form.
var badgeClasses = map[Role]string{
	RoleDefault:   "",
	RolePrimary:   "text-bg-primary",
	RoleSecondary: "text-bg-secondary",
	RoleSuccess:   "text-bg-success",
	RoleDanger:    "text-bg-danger",
	RoleWarning:   "text-bg-warning",
	RoleInfo:      "text-bg-info",
	RoleLight:     "text-bg-light",
	RoleDark:      "text-bg-dark",
}

// BadgeElement is a small count-and-label companion to other content.
type BadgeElement struct {
	attrs Attrs
	child Node
	role  Role
}

// Badge builds a badge around the given content.
func Badge(content ...any) BadgeElement {
	return BadgeElement{child: childOf(content)}
}

// Role returns a copy with the color role applied.
func (b BadgeElement) Role(role Role) BadgeElement {
	b.role = role
	return b
}

// Class returns a copy with the classes appended.
func (b BadgeElement) Class(classes ...string) BadgeElement {
	b.attrs = b.attrs.Class(classes...)
	return b
}

// Style returns a copy with the CSS declaration applied.
func (b BadgeElement) Style(property, value string) BadgeElement {
	b.attrs = b.attrs.Style(property, value)
	return b
}

// Attribute returns a copy with a custom attribute appended.
func (b BadgeElement) Attribute(key, value string) BadgeElement {
	b.attrs = b.attrs.Attribute(key, value)
	return b
}

// Attributes returns the element's attribute bag.
func (b BadgeElement) Attributes() Attrs { return b.attrs }

// Markup renders the badge with its color class ahead of caller
// classes. A role with no badge form panics.
func (b BadgeElement) Markup() string {
	color, ok := badgeClasses[b.role]
	if !ok {
		panic(fmt.Sprintf("markup: role %d has no badge form", int(b.role)))
	}

	attrs := Attrs{}.Class("badge")
	if color != "" {
		attrs = attrs.Class(color)
	}
	attrs = attrs.merge(b.attrs)

	return "<span" + attrs.String() + ">" + childMarkup(b.child) + "</span>"
}
