package dev

import (
	"context"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/veneer-dev/veneer/internal/config"
	"github.com/veneer-dev/veneer/internal/errors"
	"github.com/veneer-dev/veneer/pkg/middleware"
)

// ServerOptions configures the development server.
type ServerOptions struct {
	// Config is the project configuration.
	Config *config.Config

	// Logger receives server progress. Defaults to slog.Default().
	Logger *slog.Logger

	// OnBuildStart is called when a build starts.
	OnBuildStart func()

	// OnBuildComplete is called when a build completes.
	OnBuildComplete func(result BuildResult)

	// OnReload is called when browsers are reloaded.
	OnReload func(clients int)
}

// Server is the development server. It rebuilds the site on change,
// serves the output directory, and reloads connected browsers.
type Server struct {
	config       *config.Config
	options      ServerOptions
	builder      *SiteBuilder
	watcher      *Watcher
	reloadServer *ReloadServer
	changeCh     chan Change
	httpServer   *http.Server
	logger       *slog.Logger
	mu           sync.Mutex
	running      bool
}

// NewServer creates a new development server.
func NewServer(options ServerOptions) *Server {
	cfg := options.Config
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	builder := NewSiteBuilder(BuilderConfig{
		ProjectDir: cfg.Dir(),
		Env:        []string{"VENEER_DEV=1"},
	})

	ignore := make([]string, 0, len(DefaultIgnore)+len(cfg.Dev.Ignore)+1)
	ignore = append(ignore, DefaultIgnore...)
	ignore = append(ignore, cfg.Dev.Ignore...)
	if cfg.Build.Output != "" {
		ignore = append(ignore, cfg.Build.Output)
	}

	watcher := NewWatcher(WatcherConfig{
		Paths:    cfg.WatchPaths(),
		Ignore:   ignore,
		Debounce: 100 * time.Millisecond,
	})

	return &Server{
		config:       cfg,
		options:      options,
		builder:      builder,
		watcher:      watcher,
		reloadServer: NewReloadServer(logger),
		logger:       logger,
	}
}

// Start builds the site, then serves it until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	watchPaths := s.config.WatchPaths()
	existing := 0
	for _, p := range watchPaths {
		if _, err := os.Stat(p); err != nil {
			s.logger.Warn("watch path missing", "path", p)
			continue
		}
		existing++
	}
	if existing == 0 {
		return errors.New("E302").
			WithDetail("None of the configured watch paths exist: " + strings.Join(watchPaths, ", "))
	}

	// Initial build
	s.logger.Info("building site", "dir", s.config.Dir())
	result := s.builder.Build(ctx)
	middleware.RecordRebuild(result.Success, result.Duration)
	if s.options.OnBuildComplete != nil {
		s.options.OnBuildComplete(result)
	}
	if result.Success {
		s.logger.Info("site built", "duration", result.Duration.Round(time.Millisecond))
	} else {
		s.logger.Error("build failed", "err", result.Error)
		s.reloadServer.NotifyError(result.Output)
	}

	// Watch for changes
	s.changeCh = make(chan Change, 64)
	s.watcher.OnChange(func(change Change) {
		select {
		case s.changeCh <- change:
		default:
		}
	})
	go s.watcher.Start(ctx)
	go s.processChanges(ctx)

	// Serve
	s.httpServer = &http.Server{
		Addr:    s.config.DevAddress(),
		Handler: s.routes(),
	}

	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return errors.New("E301").WithDetail(s.httpServer.Addr).Wrap(err)
	}

	s.logger.Info("dev server running", "url", s.config.DevURL())

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.Stop()
		return nil
	case err := <-errCh:
		s.Stop()
		return err
	}
}

// Stop stops the development server.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false

	s.watcher.Stop()
	s.reloadServer.Close()

	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(ctx)
	}
}

// routes builds the dev server router.
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	r.Get(ReloadEndpoint, s.reloadServer.HandleWebSocket)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.Prometheus())
		r.Use(middleware.OpenTelemetry())
		r.Handle("/*", http.HandlerFunc(s.serveSite))
	})

	return r
}

// processChanges serializes file change handling and coalesces bursts.
func (s *Server) processChanges(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case change := <-s.changeCh:
			changes := []Change{change}
			draining := true
			for draining {
				select {
				case next := <-s.changeCh:
					changes = append(changes, next)
				default:
					draining = false
				}
			}
			s.handleChanges(ctx, changes)
		}
	}
}

// handleChanges handles a batch of file changes.
func (s *Server) handleChanges(ctx context.Context, changes []Change) {
	if len(changes) == 0 {
		return
	}

	hasGo := false
	var assetChanges []Change
	for _, change := range changes {
		s.logger.Debug("file changed", "path", change.Path, "type", change.Type)
		if change.Type == ChangeGo {
			hasGo = true
		} else {
			assetChanges = append(assetChanges, change)
		}
	}

	if hasGo {
		s.rebuild(ctx)
		return
	}

	// CSS and asset edits under the assets dir sync straight into the
	// output dir. Anything else may feed the site program, so rebuild.
	var cssFile string
	fullReload := false
	for _, change := range assetChanges {
		rel, synced := s.syncAsset(change.Path)
		if !synced {
			s.rebuild(ctx)
			return
		}
		if change.Type == ChangeCSS {
			if cssFile == "" {
				cssFile = "/" + filepath.ToSlash(rel)
			}
		} else {
			fullReload = true
		}
	}

	if fullReload {
		s.notifyReload()
		return
	}
	if cssFile != "" {
		s.reloadServer.NotifyCSS(cssFile)
		s.logger.Info("css reloaded", "file", cssFile)
	}
}

// rebuild reruns the site program and notifies connected browsers.
func (s *Server) rebuild(ctx context.Context) {
	if s.options.OnBuildStart != nil {
		s.options.OnBuildStart()
	}

	s.logger.Info("rebuilding site")
	result := s.builder.Build(ctx)
	middleware.RecordRebuild(result.Success, result.Duration)

	if s.options.OnBuildComplete != nil {
		s.options.OnBuildComplete(result)
	}

	if !result.Success {
		s.logger.Error("rebuild failed", "err", errors.New("E303").Wrap(result.Error))
		s.reloadServer.NotifyError(result.Output)
		return
	}

	s.logger.Info("site rebuilt", "duration", result.Duration.Round(time.Millisecond))
	s.reloadServer.ClearError()
	s.notifyReload()
}

// syncAsset copies a changed file under the assets dir into the output
// dir. Returns the path relative to the assets dir and whether the copy
// happened.
func (s *Server) syncAsset(p string) (string, bool) {
	assetsDir := s.config.AssetsPath()
	if !isWithinDir(p, assetsDir) {
		return "", false
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(assetsDir, abs)
	if err != nil {
		return "", false
	}
	target := filepath.Join(s.config.OutputPath(), rel)
	if err := copyAssetFile(abs, target); err != nil {
		s.logger.Warn("asset sync failed", "path", p, "err", err)
		return "", false
	}
	s.logger.Debug("asset synced", "path", p, "target", target)
	return rel, true
}

func (s *Server) notifyReload() {
	s.reloadServer.NotifyReload()
	clients := s.reloadServer.ClientCount()
	if s.options.OnReload != nil {
		s.options.OnReload(clients)
	}
	s.logger.Info("reloaded browsers", "clients", clients)
}

// serveSite serves a file from the output directory, resolving pretty
// URLs to their index.html and injecting the reload client into pages.
func (s *Server) serveSite(w http.ResponseWriter, r *http.Request) {
	outDir := s.config.OutputPath()

	urlPath := path.Clean("/" + r.URL.Path)
	target := filepath.Join(outDir, filepath.FromSlash(strings.TrimPrefix(urlPath, "/")))
	if target != filepath.Clean(outDir) && !isWithinDir(target, outDir) {
		s.serveNotFound(w, r)
		return
	}

	info, err := os.Stat(target)
	if err == nil && info.IsDir() {
		target = filepath.Join(target, "index.html")
		info, err = os.Stat(target)
	} else if err != nil && filepath.Ext(target) == "" {
		// Pretty URLs: /about resolves to /about/index.html
		target = filepath.Join(target, "index.html")
		info, err = os.Stat(target)
	}
	if err != nil || info.IsDir() {
		s.serveNotFound(w, r)
		return
	}

	w.Header().Set("Cache-Control", "no-store")

	if strings.EqualFold(filepath.Ext(target), ".html") {
		s.serveHTML(w, r, target)
		return
	}
	http.ServeFile(w, r, target)
}

// serveHTML serves a page with the reload client script injected.
func (s *Server) serveHTML(w http.ResponseWriter, r *http.Request, file string) {
	data, err := os.ReadFile(file)
	if err != nil {
		s.serveNotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, injectReloadScript(string(data)))
}

// injectReloadScript splices the reload client into a page, before
// </body> when present.
func injectReloadScript(page string) string {
	if idx := strings.LastIndex(page, "</body>"); idx != -1 {
		return page[:idx] + DevClientScript + page[idx:]
	}
	if idx := strings.LastIndex(page, "</html>"); idx != -1 {
		return page[:idx] + DevClientScript + page[idx:]
	}
	return page + DevClientScript
}

// serveNotFound serves the dev 404 page. It carries the reload client so
// the browser recovers as soon as the page exists.
func (s *Server) serveNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusNotFound)
	fmt.Fprintf(w, notFoundPage, html.EscapeString(r.URL.Path), DevClientScript)
}

const notFoundPage = `<!DOCTYPE html>
<html>
<head><title>Veneer Dev Server</title></head>
<body style="font-family: system-ui; padding: 40px; background: #1a1a1a; color: #fff;">
<h1 style="color: #ff5555;">Page Not Found</h1>
<p>Nothing in the site output matches <code>%s</code>. This could mean:</p>
<ul>
<li>The site has not been built yet</li>
<li>There was a build error (check your terminal)</li>
<li>The page was removed from the site</li>
</ul>
<p style="color: #888;">The page will reload automatically when the site rebuilds.</p>
%s
</body>
</html>
`

func copyAssetFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func isWithinDir(path, dir string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	absPath = filepath.Clean(absPath)
	absDir = filepath.Clean(absDir)
	if absPath == absDir {
		return true
	}
	if !strings.HasSuffix(absDir, string(os.PathSeparator)) {
		absDir += string(os.PathSeparator)
	}
	return strings.HasPrefix(absPath, absDir)
}
