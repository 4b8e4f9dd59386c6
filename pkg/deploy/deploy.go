package deploy

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/veneer-dev/veneer/internal/errors"
)

// Uploader is the interface deploy targets implement.
// Implement this interface to deploy somewhere other than S3.
type Uploader interface {
	// Upload stores one object under key with the given content type.
	Upload(ctx context.Context, key string, body io.Reader, contentType string) error
}

// Progress describes one uploaded object, reported as it completes.
type Progress struct {
	// Key is the object key the file was uploaded under.
	Key string

	// Index is the 1-based position of this upload.
	Index int

	// Total is the total number of files being uploaded.
	Total int

	// Size is the file size in bytes.
	Size int64
}

// Options configures a Deployer.
type Options struct {
	// Prefix is prepended to every object key.
	Prefix string

	// DryRun lists what would be uploaded without uploading.
	DryRun bool

	// Logger receives per-file progress. Defaults to slog.Default().
	Logger *slog.Logger

	// OnProgress is called after each upload (and for each file in a
	// dry run). Optional.
	OnProgress func(Progress)
}

// Deployer uploads a published output directory to an Uploader.
type Deployer struct {
	uploader Uploader
	options  Options
	logger   *slog.Logger
}

// NewDeployer creates a deployer for the given target.
func NewDeployer(uploader Uploader, options Options) *Deployer {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Deployer{
		uploader: uploader,
		options:  options,
		logger:   logger,
	}
}

// Deploy walks dir and uploads every regular file, keyed by its path
// relative to dir. Keys use forward slashes regardless of platform.
// Files are uploaded in sorted key order so repeated deploys of the
// same tree behave identically.
func (d *Deployer) Deploy(ctx context.Context, dir string) (int, error) {
	files, err := collectFiles(dir)
	if err != nil {
		return 0, err
	}

	for i, f := range files {
		key := f.key
		if d.options.Prefix != "" {
			key = path.Join(d.options.Prefix, key)
		}

		if d.options.DryRun {
			d.logger.Info("would upload", "key", key, "size", f.size)
			d.report(key, i+1, len(files), f.size)
			continue
		}

		if err := d.uploadFile(ctx, f.path, key); err != nil {
			return i, err
		}
		d.logger.Debug("uploaded", "key", key, "size", f.size)
		d.report(key, i+1, len(files), f.size)
	}

	return len(files), nil
}

func (d *Deployer) uploadFile(ctx context.Context, p, key string) error {
	in, err := os.Open(p)
	if err != nil {
		return errors.New("E202").WithDetail(p).Wrap(err)
	}
	defer in.Close()

	if err := d.uploader.Upload(ctx, key, in, ContentType(p)); err != nil {
		return errors.New("E202").WithDetail(key).Wrap(err)
	}
	return nil
}

func (d *Deployer) report(key string, index, total int, size int64) {
	if d.options.OnProgress != nil {
		d.options.OnProgress(Progress{Key: key, Index: index, Total: total, Size: size})
	}
}

type deployFile struct {
	path string
	key  string
	size int64
}

// collectFiles gathers every regular file under dir, sorted by key.
func collectFiles(dir string) ([]deployFile, error) {
	var files []deployFile

	err := filepath.WalkDir(dir, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		info, err := entry.Info()
		if err != nil {
			return err
		}
		files = append(files, deployFile{
			path: p,
			key:  filepath.ToSlash(rel),
			size: info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, errors.New("E202").WithDetail(dir).Wrap(err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].key < files[j].key })
	return files, nil
}

// ContentType infers the MIME type for a file from its extension,
// falling back to application/octet-stream.
func ContentType(p string) string {
	ext := strings.ToLower(filepath.Ext(p))
	switch ext {
	case ".html":
		return "text/html; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case ".js":
		return "text/javascript; charset=utf-8"
	case ".json":
		return "application/json"
	case ".svg":
		return "image/svg+xml"
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
