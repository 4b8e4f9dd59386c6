package markup

import "testing"

func TestIcon(t *testing.T) {
	tests := []struct {
		name string
		icon IconElement
		want string
	}{
		{
			name: "glyph classes",
			icon: Icon("house"),
			want: `<i class="bi bi-house"></i>`,
		},
		{
			name: "caller classes follow the glyph pair",
			icon: Icon("gear").Class("fs-4"),
			want: `<i class="bi bi-gear fs-4"></i>`,
		},
		{
			name: "hidden from assistive tech",
			icon: Icon("star").Aria("hidden", "true"),
			want: `<i class="bi bi-star" aria-hidden="true"></i>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.icon.Markup(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLink(t *testing.T) {
	tests := []struct {
		name string
		link LinkElement
		want string
	}{
		{
			name: "plain",
			link: Link("/docs", "Docs"),
			want: `<a href="/docs">Docs</a>`,
		},
		{
			name: "no content",
			link: Link("/"),
			want: `<a href="/"></a>`,
		},
		{
			name: "button styling",
			link: Link("/buy", "Buy").ButtonStyle(RolePrimary),
			want: `<a href="/buy" class="btn btn-primary">Buy</a>`,
		},
		{
			name: "default role styling keeps just the base class",
			link: Link("/x", "x").ButtonStyle(RoleDefault),
			want: `<a href="/x" class="btn">x</a>`,
		},
		{
			name: "new window",
			link: Link("https://example.com", "Out").OpenInNewWindow(),
			want: `<a href="https://example.com" target="_blank" rel="noopener noreferrer">Out</a>`,
		},
		{
			name: "href is escaped",
			link: Link(`/q?a=1&b="2"`, "q"),
			want: `<a href="/q?a=1&amp;b=&quot;2&quot;">q</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.link.Markup(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestImage(t *testing.T) {
	tests := []struct {
		name  string
		image ImageElement
		want  string
	}{
		{
			name:  "source and alt",
			image: Image("/logo.png", "the logo"),
			want:  `<img src="/logo.png" alt="the logo">`,
		},
		{
			name:  "empty alt marks decorative",
			image: Image("/bg.png", ""),
			want:  `<img src="/bg.png" alt="">`,
		},
		{
			name:  "fluid",
			image: Image("/hero.jpg", "hero").Fluid(),
			want:  `<img src="/hero.jpg" alt="hero" class="img-fluid">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.image.Markup(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBadge(t *testing.T) {
	tests := []struct {
		name  string
		badge BadgeElement
		want  string
	}{
		{
			name:  "default role",
			badge: Badge("New"),
			want:  `<span class="badge">New</span>`,
		},
		{
			name:  "colored",
			badge: Badge("4").Role(RoleDanger),
			want:  `<span class="badge text-bg-danger">4</span>`,
		},
		{
			name:  "pill via caller classes",
			badge: Badge("9+").Role(RoleSecondary).Class("rounded-pill"),
			want:  `<span class="badge text-bg-secondary rounded-pill">9+</span>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.badge.Markup(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBadgeRejectsCloseRole(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a role without a badge form")
		}
	}()

	Badge("x").Role(RoleClose).Markup()
}

func TestDivider(t *testing.T) {
	if got := Divider().Markup(); got != "<hr>" {
		t.Errorf("got %q, want %q", got, "<hr>")
	}
	if got := Divider().Class("my-4").Markup(); got != `<hr class="my-4">` {
		t.Errorf("got %q, want %q", got, `<hr class="my-4">`)
	}
}

func TestBlock(t *testing.T) {
	tests := []struct {
		name  string
		block BlockElement
		want  string
	}{
		{
			name:  "empty",
			block: Block(),
			want:  "<div></div>",
		},
		{
			name:  "grid row",
			block: Block(Span("a"), Span("b")).Class("row"),
			want:  `<div class="row"><span>a</span><span>b</span></div>`,
		},
		{
			name:  "closure content",
			block: Block(func() Node { return Group{Text("x"), Text("y")} }),
			want:  "<div>xy</div>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.block.Markup(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
