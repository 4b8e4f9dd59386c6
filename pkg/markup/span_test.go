package markup

import "testing"

func TestSpanEmpty(t *testing.T) {
	if got := Span().Markup(); got != "<span></span>" {
		t.Errorf("got %q, want %q", got, "<span></span>")
	}
}

func TestSpanRendersContent(t *testing.T) {
	tests := []struct {
		name string
		span SpanElement
		want string
	}{
		{
			name: "string content",
			span: Span("hello"),
			want: "<span>hello</span>",
		},
		{
			name: "nested node",
			span: Span(Span("inner")),
			want: "<span><span>inner</span></span>",
		},
		{
			name: "several values",
			span: Span("a", Span("b")),
			want: "<span>a<span>b</span></span>",
		},
		{
			name: "classes and styles",
			span: Span("x").Class("note", "small").Style("color", "gray"),
			want: `<span class="note small" style="color: gray">x</span>`,
		},
		{
			name: "custom attributes",
			span: Span("x").Attribute("id", "spot").Data("kind", "label").Aria("hidden", "true"),
			want: `<span id="spot" data-kind="label" aria-hidden="true">x</span>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Markup(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpanMutatorsCopy(t *testing.T) {
	base := Span("x")
	before := base.Markup()

	derived := base.Class("loud").Style("color", "red")

	if got := base.Markup(); got != before {
		t.Errorf("mutating a copy should leave the original alone, got %q, want %q", got, before)
	}
	want := `<span class="loud" style="color: red">x</span>`
	if got := derived.Markup(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSpanZeroValueRenders(t *testing.T) {
	var span SpanElement

	if got := span.Markup(); got != "<span></span>" {
		t.Errorf("got %q, want %q", got, "<span></span>")
	}
}
