package publish

import (
	"fmt"
	"strings"

	"github.com/veneer-dev/veneer/pkg/markup"
)

// Stylesheet and script URLs rendered into every document unless
// overridden. The icon font provides the bi-* classes used by
// markup.Icon; the bundle script powers modal actions.
const (
	BootstrapCSS      = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css"
	BootstrapIconsCSS = "https://cdn.jsdelivr.net/npm/bootstrap-icons@1.11.3/font/bootstrap-icons.min.css"
	BootstrapJS       = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/js/bootstrap.bundle.min.js"
)

// Document is the HTML shell a page body renders into.
type Document struct {
	// Title is the document title.
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// Description is written into the description meta tag when set.
	Description string

	// Author is written into the author meta tag when set.
	Author string

	// StyleSheets contains hrefs of stylesheets to link.
	// Nil means DefaultStyleSheets().
	StyleSheets []string

	// Links contains additional link tags (favicon, canonical, etc.).
	Links []LinkTag

	// Scripts contains script tags rendered at the end of the body.
	// Nil means DefaultScripts().
	Scripts []ScriptTag

	// Body is the root node of the page content.
	Body markup.Node
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel   string // rel attribute
	Href  string // href attribute
	Type  string // type attribute
	Sizes string // sizes attribute
}

// ScriptTag represents a script element at the end of the body.
type ScriptTag struct {
	Src    string // src attribute
	Defer  bool   // defer attribute
	Inline string // inline script content
}

// DefaultStyleSheets returns the stylesheets linked when a Document
// does not specify its own.
func DefaultStyleSheets() []string {
	return []string{BootstrapCSS, BootstrapIconsCSS}
}

// DefaultScripts returns the scripts rendered when a Document does not
// specify its own.
func DefaultScripts() []ScriptTag {
	return []ScriptTag{{Src: BootstrapJS, Defer: true}}
}

// Markup renders the complete HTML document.
func (d Document) Markup() string {
	lang := d.Lang
	if lang == "" {
		lang = "en"
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	fmt.Fprintf(&b, `<html lang="%s">`+"\n", escapeAttr(lang))

	d.writeHead(&b)

	b.WriteString("<body>\n")
	if d.Body != nil {
		b.WriteString(d.Body.Markup())
		b.WriteString("\n")
	}
	scripts := d.Scripts
	if scripts == nil {
		scripts = DefaultScripts()
	}
	for _, script := range scripts {
		writeScriptTag(&b, script)
	}
	b.WriteString("</body>\n</html>\n")

	return b.String()
}

func (d Document) writeHead(b *strings.Builder) {
	b.WriteString("<head>\n")
	b.WriteString(`  <meta charset="utf-8">` + "\n")
	b.WriteString(`  <meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")

	if d.Title != "" {
		fmt.Fprintf(b, "  <title>%s</title>\n", escapeHTML(d.Title))
	}
	if d.Description != "" {
		fmt.Fprintf(b, `  <meta name="description" content="%s">`+"\n", escapeAttr(d.Description))
	}
	if d.Author != "" {
		fmt.Fprintf(b, `  <meta name="author" content="%s">`+"\n", escapeAttr(d.Author))
	}
	b.WriteString(`  <meta name="generator" content="veneer">` + "\n")

	styleSheets := d.StyleSheets
	if styleSheets == nil {
		styleSheets = DefaultStyleSheets()
	}
	for _, href := range styleSheets {
		fmt.Fprintf(b, `  <link rel="stylesheet" href="%s">`+"\n", escapeAttr(href))
	}

	for _, link := range d.Links {
		writeLinkTag(b, link)
	}

	b.WriteString("</head>\n")
}

func writeLinkTag(b *strings.Builder, link LinkTag) {
	b.WriteString("  <link")
	if link.Rel != "" {
		fmt.Fprintf(b, ` rel="%s"`, escapeAttr(link.Rel))
	}
	if link.Href != "" {
		fmt.Fprintf(b, ` href="%s"`, escapeAttr(link.Href))
	}
	if link.Type != "" {
		fmt.Fprintf(b, ` type="%s"`, escapeAttr(link.Type))
	}
	if link.Sizes != "" {
		fmt.Fprintf(b, ` sizes="%s"`, escapeAttr(link.Sizes))
	}
	b.WriteString(">\n")
}

func writeScriptTag(b *strings.Builder, script ScriptTag) {
	b.WriteString("  <script")
	if script.Src != "" {
		fmt.Fprintf(b, ` src="%s"`, escapeAttr(script.Src))
	}
	if script.Defer {
		b.WriteString(" defer")
	}
	b.WriteString(">")
	if script.Inline != "" {
		b.WriteString(script.Inline)
	}
	b.WriteString("</script>\n")
}
