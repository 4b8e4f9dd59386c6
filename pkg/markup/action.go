package markup

import "strings"

// Action is the behavior contract event wiring consumes. Compile
// returns a JavaScript fragment; the encoding is the implementation's
// concern. The actions package provides the stock implementations.
type Action interface {
	Compile() string
}

// On returns a copy of the bag with an inline event handler appended.
// The compiled actions are joined with "; " under on<event>.
func (a Attrs) On(event string, actions ...Action) Attrs {
	return a.Attribute("on"+event, compileActions(actions))
}

func compileActions(actions []Action) string {
	parts := make([]string, 0, len(actions))
	for _, action := range actions {
		if action == nil {
			continue
		}
		if js := action.Compile(); js != "" {
			parts = append(parts, js)
		}
	}
	return strings.Join(parts, "; ")
}
