package publish

// Site is a collection of pages published together with shared
// metadata.
type Site struct {
	// Name is the site name, appended to page titles.
	Name string

	// Author is written into the author meta tag of every page.
	Author string

	// BaseURL is the canonical base URL of the published site.
	BaseURL string

	// Lang is the html lang attribute for every page.
	Lang string

	// StyleSheets contains extra stylesheet hrefs linked after the
	// defaults on every page.
	StyleSheets []string

	// Pages are the pages of the site, in insertion order.
	Pages []Page
}

// NewSite creates a site with the given name.
func NewSite(name string) *Site {
	return &Site{Name: name}
}

// Add appends a page to the site and returns the site for chaining.
func (s *Site) Add(page Page) *Site {
	s.Pages = append(s.Pages, page)
	return s
}

// titleFor returns the document title for a page: the page title and
// site name joined with a dash, or whichever of the two is set.
func (s *Site) titleFor(page Page) string {
	switch {
	case page.Title != "" && s.Name != "":
		return page.Title + " - " + s.Name
	case page.Title != "":
		return page.Title
	default:
		return s.Name
	}
}
