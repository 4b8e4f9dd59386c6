// Package actions provides the stock behaviors elements wire to browser
// events. Each action compiles to a JavaScript fragment; the markup
// layer joins the fragments and encodes them into the event attribute.
package actions

import "strings"

// Alert pops a browser alert with a fixed message.
type Alert struct {
	Message string
}

// Compile returns the alert call.
func (a Alert) Compile() string {
	return "alert('" + escapeJS(a.Message) + "')"
}

// Redirect navigates the window to a new location.
type Redirect struct {
	URL string
}

// Compile returns the location assignment.
func (r Redirect) Compile() string {
	return "window.location.href = '" + escapeJS(r.URL) + "'"
}

// Toggle flips a class on the element with the given id.
type Toggle struct {
	ID    string
	Class string
}

// Compile returns the classList toggle call.
func (t Toggle) Compile() string {
	return "document.getElementById('" + escapeJS(t.ID) + "').classList.toggle('" + escapeJS(t.Class) + "')"
}

// ShowModal opens the Bootstrap modal with the given id.
type ShowModal struct {
	ID string
}

// Compile returns the modal show call.
func (m ShowModal) Compile() string {
	return "bootstrap.Modal.getOrCreateInstance(document.getElementById('" + escapeJS(m.ID) + "')).show()"
}

// DismissModal closes the Bootstrap modal with the given id.
type DismissModal struct {
	ID string
}

// Compile returns the modal hide call.
func (m DismissModal) Compile() string {
	return "bootstrap.Modal.getOrCreateInstance(document.getElementById('" + escapeJS(m.ID) + "')).hide()"
}

// Custom wraps JavaScript written by the caller. It compiles as given,
// with no escaping or validation.
type Custom struct {
	Script string
}

// Compile returns the script unchanged.
func (c Custom) Compile() string { return c.Script }

// escapeJS escapes a value for inclusion in a single-quoted JavaScript
// string literal.
func escapeJS(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '\\':
			buf.WriteString(`\\`)
		case '\'':
			buf.WriteString(`\'`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
