package publish

import (
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/veneer-dev/veneer/internal/errors"
)

// Publisher writes a rendered site to a directory on disk.
type Publisher struct {
	// OutputDir is the directory pages and assets are written to.
	OutputDir string

	// AssetsDir is copied verbatim into OutputDir when set.
	AssetsDir string

	// Clean removes OutputDir before publishing.
	Clean bool

	// Logger receives per-page progress. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Publish renders every page of the site into the document shell and
// writes the result under OutputDir. Pages are written in path order
// so repeated runs produce identical output.
func (p *Publisher) Publish(site *Site) error {
	start := time.Now()
	log := p.logger()

	if p.OutputDir == "" {
		return errors.New("E102").WithDetail("Output directory is not set")
	}

	if p.Clean {
		if err := os.RemoveAll(p.OutputDir); err != nil {
			return errors.New("E102").Wrap(err)
		}
	}
	if err := os.MkdirAll(p.OutputDir, 0755); err != nil {
		return errors.New("E102").Wrap(err)
	}

	pages := make([]Page, len(site.Pages))
	copy(pages, site.Pages)
	sort.SliceStable(pages, func(i, j int) bool {
		return pages[i].OutputFile() < pages[j].OutputFile()
	})

	seen := make(map[string]string, len(pages))
	for _, page := range pages {
		out := page.OutputFile()
		if prev, ok := seen[out]; ok {
			return errors.New("E104").
				WithDetail("Pages " + prev + " and " + page.Path + " both resolve to " + out)
		}
		seen[out] = page.Path
	}

	for _, page := range pages {
		if err := p.writePage(site, page); err != nil {
			return err
		}
		log.Info("published page", "path", page.URL(), "file", page.OutputFile())
	}

	if err := p.copyAssets(); err != nil {
		return err
	}

	log.Info("site published",
		"site", site.Name,
		"pages", len(pages),
		"output", p.OutputDir,
		"duration", time.Since(start))
	return nil
}

// RenderPage renders a single page of the site into the document
// shell without writing anything to disk.
func (p *Publisher) RenderPage(site *Site, page Page) string {
	return p.document(site, page).Markup()
}

func (p *Publisher) writePage(site *Site, page Page) error {
	target := filepath.Join(p.OutputDir, filepath.FromSlash(page.OutputFile()))
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return errors.New("E105").
			WithDetail("Creating directory for " + page.Path).
			Wrap(err)
	}
	if err := os.WriteFile(target, []byte(p.document(site, page).Markup()), 0644); err != nil {
		return errors.New("E105").
			WithDetail("Writing " + target).
			Wrap(err)
	}
	return nil
}

func (p *Publisher) document(site *Site, page Page) Document {
	var styleSheets []string
	if len(site.StyleSheets) > 0 {
		styleSheets = append(DefaultStyleSheets(), site.StyleSheets...)
	}
	return Document{
		Title:       site.titleFor(page),
		Lang:        site.Lang,
		Description: page.Description,
		Author:      site.Author,
		StyleSheets: styleSheets,
		Body:        page.Body,
	}
}

// copyAssets copies the assets directory into the output directory,
// preserving its layout. A missing assets directory is not an error.
func (p *Publisher) copyAssets() error {
	if p.AssetsDir == "" {
		return nil
	}
	if _, err := os.Stat(p.AssetsDir); os.IsNotExist(err) {
		p.logger().Debug("no assets directory", "dir", p.AssetsDir)
		return nil
	}

	count := 0
	err := filepath.WalkDir(p.AssetsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(p.AssetsDir, path)
		if err != nil {
			return err
		}
		target := filepath.Join(p.OutputDir, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		if err := copyFile(path, target); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return errors.New("E103").Wrap(err)
	}

	if count > 0 {
		p.logger().Info("copied assets", "dir", p.AssetsDir, "files", count)
	}
	return nil
}

func (p *Publisher) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
