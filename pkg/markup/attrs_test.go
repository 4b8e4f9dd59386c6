package markup

import (
	"strings"
	"testing"
)

func TestAttrsEmpty(t *testing.T) {
	if got := (Attrs{}).String(); got != "" {
		t.Errorf("empty bag should serialize to empty string, got %q", got)
	}
	if !(Attrs{}).IsEmpty() {
		t.Error("zero bag should report empty")
	}
}

func TestAttrsSerializationOrder(t *testing.T) {
	attrs := Attrs{}.
		Attribute("id", "main").
		Style("color", "red").
		Class("box")

	want := ` class="box" style="color: red" id="main"`
	if got := attrs.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAttrsClassDeduplication(t *testing.T) {
	tests := []struct {
		name    string
		classes [][]string
		want    string
	}{
		{
			name:    "single add",
			classes: [][]string{{"btn"}},
			want:    ` class="btn"`,
		},
		{
			name:    "repeat in one call",
			classes: [][]string{{"btn", "btn"}},
			want:    ` class="btn"`,
		},
		{
			name:    "repeat across calls keeps first position",
			classes: [][]string{{"a", "b"}, {"a", "c"}},
			want:    ` class="a b c"`,
		},
		{
			name:    "empty strings skipped",
			classes: [][]string{{"", "a", ""}},
			want:    ` class="a"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := Attrs{}
			for _, call := range tt.classes {
				attrs = attrs.Class(call...)
			}
			if got := attrs.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAttrsStyleReplacesInPlace(t *testing.T) {
	attrs := Attrs{}.
		Style("height", "10px").
		Style("width", "20px").
		Style("height", "30px")

	want := ` style="height: 30px; width: 20px"`
	if got := attrs.String(); got != want {
		t.Errorf("replaced style should keep its position, got %q, want %q", got, want)
	}
}

func TestAttrsCustomOrderAndDuplicates(t *testing.T) {
	attrs := Attrs{}.
		Data("item", "1").
		Attribute("id", "x").
		Data("item", "2")

	want := ` data-item="1" id="x" data-item="2"`
	if got := attrs.String(); got != want {
		t.Errorf("custom attributes should keep insertion order and duplicates, got %q, want %q", got, want)
	}
}

func TestAttrsFlag(t *testing.T) {
	attrs := Attrs{}.Attribute("type", "button").Flag("disabled")

	want := ` type="button" disabled`
	if got := attrs.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAttrsAria(t *testing.T) {
	attrs := Attrs{}.Aria("label", "Close")

	want := ` aria-label="Close"`
	if got := attrs.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAttrsValueEscaping(t *testing.T) {
	attrs := Attrs{}.Attribute("title", `say "hi" & <go>`)

	got := attrs.String()
	if strings.Contains(got, `"hi"`) {
		t.Errorf("quotes inside values should be escaped, got %q", got)
	}
	if !strings.Contains(got, "&quot;hi&quot;") {
		t.Errorf("should contain escaped quotes, got %q", got)
	}
	if !strings.Contains(got, "&amp;") {
		t.Errorf("should contain escaped ampersand, got %q", got)
	}
}

func TestAttrsMutatorsCopy(t *testing.T) {
	base := Attrs{}.Class("a").Style("color", "red").Attribute("id", "x")
	before := base.String()

	derived := base.Class("b").Style("color", "blue").Attribute("id", "y").Flag("hidden")

	if got := base.String(); got != before {
		t.Errorf("mutators should not touch the receiver, got %q, want %q", got, before)
	}
	if derived.String() == before {
		t.Error("derived bag should differ from the original")
	}
}

func TestAttrsCopiesDoNotShareBackingArrays(t *testing.T) {
	base := Attrs{}.Class("a")

	// Two divergent children of the same parent must not clobber each
	// other through a shared backing array.
	left := base.Class("left")
	right := base.Class("right")

	if got := left.String(); got != ` class="a left"` {
		t.Errorf("got %q, want %q", got, ` class="a left"`)
	}
	if got := right.String(); got != ` class="a right"` {
		t.Errorf("got %q, want %q", got, ` class="a right"`)
	}
}

func TestAttrsClassesAccessorCopies(t *testing.T) {
	attrs := Attrs{}.Class("a", "b")

	classes := attrs.Classes()
	classes[0] = "mutated"

	if got := attrs.String(); got != ` class="a b"` {
		t.Errorf("accessor slice should be a copy, got %q", got)
	}
}

type script string

func (s script) Compile() string { return string(s) }

func TestAttrsOn(t *testing.T) {
	attrs := Attrs{}.On("click", script("alert('hi')"), nil, script("done()"))

	want := ` onclick="alert(&#39;hi&#39;); done()"`
	if got := attrs.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
