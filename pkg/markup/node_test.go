package markup

import "testing"

func TestTextRendersVerbatim(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "plain", text: "Hello, World!"},
		{name: "markup passes through untouched", text: "<b>bold</b> & 'quotes'"},
		{name: "empty", text: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.text).Markup(); got != tt.text {
				t.Errorf("got %q, want %q", got, tt.text)
			}
		})
	}
}

func TestEmptyRendersNothing(t *testing.T) {
	if got := (Empty{}).Markup(); got != "" {
		t.Errorf("got %q, want empty string", got)
	}
}

func TestGroupConcatenatesInOrder(t *testing.T) {
	group := Group{Text("a"), Span("b"), nil, Text("c")}

	want := "a<span>b</span>c"
	if got := group.Markup(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMarkupIsDeterministic(t *testing.T) {
	nodes := []Node{
		Text("plain"),
		Empty{},
		Span("x").Class("a").Style("color", "red").Data("k", "v"),
		Button("Go").Submit().Role(RolePrimary).Size(SizeLarge).Icon("arrow-right").Disabled(true),
		Spacer(),
		Spacer(20).Horizontal(),
		Spacer(SpacingSmall),
		Badge("New").Role(RoleInfo),
		Link("/docs", "Docs").ButtonStyle(RoleSecondary).OpenInNewWindow(),
		Image("/a.png", "photo").Fluid(),
		Divider(),
		Block(Span("inner")).Class("wrap"),
		Group{Text("a"), Text("b")},
	}

	for _, node := range nodes {
		first := node.Markup()
		second := node.Markup()
		if first != second {
			t.Errorf("markup not deterministic: %q then %q", first, second)
		}
	}
}

func TestAttributedNodesExposeTheirBag(t *testing.T) {
	var node Attributed = Span("x").Class("a")

	if got := node.Attributes().String(); got != ` class="a"` {
		t.Errorf("got %q, want %q", got, ` class="a"`)
	}
}

func TestIf(t *testing.T) {
	if got := If(true, Text("yes")).Markup(); got != "yes" {
		t.Errorf("got %q, want %q", got, "yes")
	}
	if got := If(false, Text("yes")).Markup(); got != "" {
		t.Errorf("got %q, want empty string", got)
	}
}

func TestWhenOnlyCallsWhenTrue(t *testing.T) {
	calls := 0
	build := func() Node {
		calls++
		return Text("built")
	}

	if got := When(false, build).Markup(); got != "" {
		t.Errorf("got %q, want empty string", got)
	}
	if calls != 0 {
		t.Errorf("builder should not run when false, ran %d times", calls)
	}

	if got := When(true, build).Markup(); got != "built" {
		t.Errorf("got %q, want %q", got, "built")
	}
	if calls != 1 {
		t.Errorf("builder should run once, ran %d times", calls)
	}
}

func TestRange(t *testing.T) {
	items := []string{"a", "b", "c"}
	nodes := Range(items, func(item string, index int) Node {
		if index == 1 {
			return nil
		}
		return Text(item)
	})

	if got := Group(nodes).Markup(); got != "ac" {
		t.Errorf("got %q, want %q", got, "ac")
	}
}
