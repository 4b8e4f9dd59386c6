// Package publish renders a site of markup pages into a static
// directory of HTML files.
//
// A Site collects Pages, each with a URL path and a root markup.Node.
// A Publisher renders every page into the shared Document shell and
// writes it under the output directory as <path>/index.html, with the
// root page at index.html. Static assets are copied verbatim.
//
// # Usage
//
//	site := publish.NewSite("My Site")
//	site.Add(publish.Page{Title: "Home", Path: "/", Body: home()})
//	site.Add(publish.Page{Title: "Pricing", Path: "/pricing", Body: pricing()})
//
//	p := &publish.Publisher{OutputDir: "dist", AssetsDir: "assets"}
//	if err := p.Publish(site); err != nil {
//	    log.Fatal(err)
//	}
//
// Output is deterministic: pages are written in path order and the
// document shell renders identically for identical input.
package publish
