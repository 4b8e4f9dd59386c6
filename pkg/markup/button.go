package markup

import (
	"fmt"
	"strconv"
)

// Role is the visual role of a control, mapped onto the role-derived
// class suffixes. RoleDefault contributes no class.
type Role int

const (
	RoleDefault Role = iota
	RolePrimary
	RoleSecondary
	RoleSuccess
	RoleDanger
	RoleWarning
	RoleInfo
	RoleLight
	RoleDark
	RoleClose
)

// Size is the control size tier. SizeMedium is the zero value and
// contributes no class.
type Size int

const (
	SizeMedium Size = iota
	SizeSmall
	SizeLarge
)

// roleClasses maps each role to the class it contributes.
var roleClasses = map[Role]string{
	RoleDefault:   "",
	RolePrimary:   "btn-primary",
	RoleSecondary: "btn-secondary",
	RoleSuccess:   "btn-success",
	RoleDanger:    "btn-danger",
	RoleWarning:   "btn-warning",
	RoleInfo:      "btn-info",
	RoleLight:     "btn-light",
	RoleDark:      "btn-dark",
	RoleClose:     "btn-close",
}

// sizeClasses maps each size tier to the class it contributes.
var sizeClasses = map[Size]string{
	SizeMedium: "",
	SizeSmall:  "btn-sm",
	SizeLarge:  "btn-lg",
}

// ButtonElement is a clickable control: a label, a behavior mode, and
// the usual styling knobs. The bare constructor yields a neutral plain
// button.
type ButtonElement struct {
	attrs    Attrs
	label    Node
	submit   bool
	size     Size
	role     Role
	icon     string
	disabled bool
}

// Button builds a button around a label. Content follows the usual
// builder shapes; Button() renders
// <button type="button" class="btn"></button>.
func Button(label ...any) ButtonElement {
	return ButtonElement{label: childOf(label)}
}

// Submit returns a copy that submits the enclosing form instead of
// acting as a plain button.
func (b ButtonElement) Submit() ButtonElement {
	b.submit = true
	return b
}

// Role returns a copy with the visual role applied.
func (b ButtonElement) Role(role Role) ButtonElement {
	b.role = role
	return b
}

// Size returns a copy with the size tier applied.
func (b ButtonElement) Size(size Size) ButtonElement {
	b.size = size
	return b
}

// Icon returns a copy with a leading icon. The name resolves against
// the Bootstrap icon font and is not validated here.
func (b ButtonElement) Icon(name string) ButtonElement {
	b.icon = name
	return b
}

// Disabled returns a copy with the disabled marker set or cleared.
func (b ButtonElement) Disabled(disabled bool) ButtonElement {
	b.disabled = disabled
	return b
}

// Class returns a copy with the classes appended after the computed
// button classes.
func (b ButtonElement) Class(classes ...string) ButtonElement {
	b.attrs = b.attrs.Class(classes...)
	return b
}

// Style returns a copy with the CSS declaration applied.
func (b ButtonElement) Style(property, value string) ButtonElement {
	b.attrs = b.attrs.Style(property, value)
	return b
}

// Attribute returns a copy with a custom attribute appended.
func (b ButtonElement) Attribute(key, value string) ButtonElement {
	b.attrs = b.attrs.Attribute(key, value)
	return b
}

// Aria returns a copy with an aria- attribute appended.
func (b ButtonElement) Aria(key, value string) ButtonElement {
	b.attrs = b.attrs.Aria(key, value)
	return b
}

// Data returns a copy with a data- attribute appended.
func (b ButtonElement) Data(key, value string) ButtonElement {
	b.attrs = b.attrs.Data(key, value)
	return b
}

// On returns a copy with an inline event handler for the actions.
func (b ButtonElement) On(event string, actions ...Action) ButtonElement {
	b.attrs = b.attrs.On(event, actions...)
	return b
}

// Width wraps the button in an n-column grid slot, stretching it to
// fill the slot. The receiver is unchanged; the result renders
// <div class="col-md-N"><button ... class="... w-100" ...></button></div>.
func (b ButtonElement) Width(columns int) BlockElement {
	if columns < 1 || columns > 12 {
		panic(fmt.Sprintf("markup: button width %d outside the 1..12 grid", columns))
	}
	return Block(b.Class("w-100")).Class("col-md-" + strconv.Itoa(columns))
}

// Attributes returns the element's attribute bag.
func (b ButtonElement) Attributes() Attrs { return b.attrs }

// Markup renders the button: computed classes first, then caller
// attributes, the accessibility and disabled markers, and finally icon
// and label inside the tag.
func (b ButtonElement) Markup() string {
	attrs := Attrs{}.Class(b.classes()...).merge(b.attrs)
	if b.role == RoleClose {
		attrs = attrs.Aria("label", "Close")
	}
	if b.disabled {
		attrs = attrs.Flag("disabled")
	}

	body := childMarkup(b.label)
	if b.icon != "" {
		body = Icon(b.icon).Markup() + body
	}

	return `<button type="` + b.buttonType() + `"` + attrs.String() + ">" + body + "</button>"
}

func (b ButtonElement) buttonType() string {
	if b.submit {
		return "submit"
	}
	return "button"
}

// classes computes base class, size class, role class in that order.
// Defaults contribute nothing; an enum value outside the tables is a
// construction bug and panics.
func (b ButtonElement) classes() []string {
	classes := []string{"btn"}

	size, ok := sizeClasses[b.size]
	if !ok {
		panic(fmt.Sprintf("markup: invalid button size %d", int(b.size)))
	}
	if size != "" {
		classes = append(classes, size)
	}

	role, ok := roleClasses[b.role]
	if !ok {
		panic(fmt.Sprintf("markup: invalid button role %d", int(b.role)))
	}
	if role != "" {
		classes = append(classes, role)
	}

	return classes
}
