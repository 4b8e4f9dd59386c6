// Package markup provides the value types veneer pages are built from:
// small composable nodes that render themselves to HTML strings.
//
// Every node is a plain value. Fluent mutators copy the receiver and
// return the copy, so earlier values stay valid inside builder closures
// and rendering the same value twice yields byte-identical output.
package markup

import "strings"

// Node is implemented by anything that can render itself as HTML.
// Markup is pure: it is a function of the value's fields alone, performs
// no I/O, and never mutates the receiver.
type Node interface {
	Markup() string
}

// Attributed is implemented by nodes that carry an attribute bag.
// Plain text and other bare nodes do not implement it.
type Attributed interface {
	Node
	Attributes() Attrs
}

// Text is literal markup. It renders verbatim with no escaping applied;
// callers own the content they pass in.
type Text string

// Markup returns the text unchanged.
func (t Text) Markup() string { return string(t) }

// Empty renders nothing. Builders store it when no content is given, so
// the renderer never has to distinguish "no child" from "one child".
type Empty struct{}

// Markup returns the empty string.
func (Empty) Markup() string { return "" }

// Group concatenates the markup of its children in order. It is the
// wrapper builder closures use to return several nodes as one.
type Group []Node

// Markup renders each child in order and joins the results.
func (g Group) Markup() string {
	var buf strings.Builder
	for _, child := range g {
		if child == nil {
			continue
		}
		buf.WriteString(child.Markup())
	}
	return buf.String()
}
