package markup

// ImageElement is an image reference. It renders as a void tag with no
// closing counterpart.
type ImageElement struct {
	attrs Attrs
	src   string
	alt   string
}

// Image builds an image from its source path and alternative text. The
// alt attribute is always emitted; empty marks the image decorative.
func Image(src, alt string) ImageElement {
	return ImageElement{src: src, alt: alt}
}

// Fluid returns a copy that scales down with its container.
func (i ImageElement) Fluid() ImageElement {
	i.attrs = i.attrs.Class("img-fluid")
	return i
}

// Class returns a copy with the classes appended.
func (i ImageElement) Class(classes ...string) ImageElement {
	i.attrs = i.attrs.Class(classes...)
	return i
}

// Style returns a copy with the CSS declaration applied.
func (i ImageElement) Style(property, value string) ImageElement {
	i.attrs = i.attrs.Style(property, value)
	return i
}

// Attribute returns a copy with a custom attribute appended.
func (i ImageElement) Attribute(key, value string) ImageElement {
	i.attrs = i.attrs.Attribute(key, value)
	return i
}

// Attributes returns the element's attribute bag.
func (i ImageElement) Attributes() Attrs { return i.attrs }

// Markup renders <img src="..." alt="...">.
func (i ImageElement) Markup() string {
	return `<img src="` + escapeAttr(i.src) + `" alt="` + escapeAttr(i.alt) + `"` + i.attrs.String() + ">"
}
