package publish

import (
	"path"
	"strings"

	"github.com/veneer-dev/veneer/pkg/markup"
)

// Page is one publishable page of a site.
type Page struct {
	// Title is the page title, joined with the site name in the
	// rendered document.
	Title string

	// Path is the URL path of the page, e.g. "/" or "/pricing".
	Path string

	// Description is written into the description meta tag when set.
	Description string

	// Body is the root node of the page content.
	Body markup.Node
}

// URL returns the canonical URL path of the page, with a leading and
// trailing slash. The root page returns "/".
func (p Page) URL() string {
	cleaned := strings.Trim(p.Path, "/")
	if cleaned == "" {
		return "/"
	}
	return "/" + cleaned + "/"
}

// OutputFile returns the slash-separated output path of the page
// relative to the output directory. The root page maps to index.html,
// every other page to <path>/index.html.
func (p Page) OutputFile() string {
	cleaned := strings.Trim(p.Path, "/")
	if cleaned == "" {
		return "index.html"
	}
	return path.Join(cleaned, "index.html")
}
