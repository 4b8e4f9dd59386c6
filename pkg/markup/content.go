package markup

import "fmt"

// childOf collapses builder arguments into the single child an element
// stores. Arguments can be: nil, string, Node, []Node, or func() Node.
//
// Closures are evaluated here, exactly once; rendering never re-runs
// them. Zero usable arguments yield Empty, one is stored unwrapped, and
// several collapse into a Group, so the renderer only ever sees "my
// child is a Node".
func childOf(args []any) Node {
	children := make([]Node, 0, len(args))

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional content)
			continue

		case string:
			// Shorthand for literal text
			children = append(children, Text(v))

		case func() Node:
			if node := v(); node != nil {
				children = append(children, node)
			}

		case []Node:
			for _, node := range v {
				if node != nil {
					children = append(children, node)
				}
			}

		case Node:
			children = append(children, v)

		default:
			panic(fmt.Sprintf("markup: unsupported content type %T", arg))
		}
	}

	switch len(children) {
	case 0:
		return Empty{}
	case 1:
		return children[0]
	}
	return Group(children)
}

// childMarkup renders a stored child, treating nil as Empty so zero
// element values render like their bare constructors.
func childMarkup(child Node) string {
	if child == nil {
		return ""
	}
	return child.Markup()
}

// If returns node when cond is true and Empty otherwise. It keeps
// conditional content inline in builder calls.
func If(cond bool, node Node) Node {
	if cond {
		return node
	}
	return Empty{}
}

// When is like If but with lazy evaluation. The function is only called
// if cond is true.
func When(cond bool, build func() Node) Node {
	if cond {
		if node := build(); node != nil {
			return node
		}
	}
	return Empty{}
}

// Range maps a slice to nodes. The result splices directly into builder
// calls.
func Range[T any](items []T, fn func(item T, index int) Node) []Node {
	result := make([]Node, 0, len(items))
	for i, item := range items {
		if node := fn(item, i); node != nil {
			result = append(result, node)
		}
	}
	return result
}
