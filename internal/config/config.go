package config

import (
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/veneer-dev/veneer/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "veneer.json"

	// DefaultPort is the default development server port.
	DefaultPort = 4000

	// DefaultHost is the default development server host.
	DefaultHost = "localhost"

	// DefaultOutputDir is the default publish output directory.
	DefaultOutputDir = "dist"

	// DefaultAssetsDir is the default static assets directory.
	DefaultAssetsDir = "assets"

	// DefaultLang is the default html lang attribute for generated pages.
	DefaultLang = "en"
)

// Config represents the complete veneer.json configuration.
type Config struct {
	// Site contains site metadata rendered into every page.
	Site SiteConfig `json:"site,omitempty"`

	// Build contains publish output configuration.
	Build BuildConfig `json:"build,omitempty"`

	// Dev contains development server configuration.
	Dev DevConfig `json:"dev,omitempty"`

	// Deploy contains S3 deployment configuration.
	Deploy DeployConfig `json:"deploy,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// SiteConfig contains site metadata.
type SiteConfig struct {
	// Name is the site name, used as the default page title suffix.
	Name string `json:"name,omitempty"`

	// Author is written into the generator meta tag when set.
	Author string `json:"author,omitempty"`

	// BaseURL is the canonical base URL of the published site.
	BaseURL string `json:"baseURL,omitempty"`

	// Lang is the html lang attribute for generated pages.
	Lang string `json:"lang,omitempty"`
}

// BuildConfig contains publish output settings.
type BuildConfig struct {
	// Output is the directory pages and assets are written to.
	Output string `json:"output,omitempty"`

	// Assets is the directory of static files copied into the output.
	Assets string `json:"assets,omitempty"`

	// Clean removes the output directory before publishing.
	Clean bool `json:"clean,omitempty"`
}

// DevConfig contains development server settings.
type DevConfig struct {
	// Port is the port to run the dev server on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Watch contains paths to watch for changes.
	Watch []string `json:"watch,omitempty"`

	// Ignore contains patterns to skip during watch.
	Ignore []string `json:"ignore,omitempty"`

	// OpenBrowser opens the browser automatically on start.
	OpenBrowser bool `json:"openBrowser,omitempty"`
}

// DeployConfig contains S3 deployment settings.
type DeployConfig struct {
	// Bucket is the S3 bucket the site is uploaded to.
	Bucket string `json:"bucket,omitempty"`

	// Region is the AWS region of the bucket.
	Region string `json:"region,omitempty"`

	// Prefix is an optional key prefix inside the bucket.
	Prefix string `json:"prefix,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Site: SiteConfig{
			Lang: DefaultLang,
		},
		Build: BuildConfig{
			Output: DefaultOutputDir,
			Assets: DefaultAssetsDir,
		},
		Dev: DevConfig{
			Port:  DefaultPort,
			Host:  DefaultHost,
			Watch: []string{".", DefaultAssetsDir},
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for veneer.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E001").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Run 'veneer new <name>' to create a project, or create " + ConfigFileName + " manually")
		}
		return nil, errors.New("E001").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E002").
			WithLocationFromError(path, err).
			Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E003").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Newf(errors.CategoryConfig, "writing %s: %v", path, err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Site.Lang == "" {
		c.Site.Lang = DefaultLang
	}
	if c.Build.Output == "" {
		c.Build.Output = DefaultOutputDir
	}
	if c.Build.Assets == "" {
		c.Build.Assets = DefaultAssetsDir
	}
	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Dev.Watch == nil {
		c.Dev.Watch = []string{".", c.Build.Assets}
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Dev.Port < 0 || c.Dev.Port > 65535 {
		return errors.New("E003").
			WithDetail("dev.port must be between 0 and 65535, got " + strconv.Itoa(c.Dev.Port))
	}
	if c.Site.BaseURL != "" {
		u, err := url.Parse(c.Site.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errors.New("E003").
				WithDetail("site.baseURL must be an absolute URL, got " + strconv.Quote(c.Site.BaseURL))
		}
	}
	return nil
}

// DevAddress returns the address string for the dev server.
func (c *Config) DevAddress() string {
	return c.Dev.Host + ":" + strconv.Itoa(c.Dev.Port)
}

// DevURL returns the full URL for the dev server.
func (c *Config) DevURL() string {
	return "http://" + c.DevAddress()
}

// OutputPath returns the absolute path to the publish output directory.
func (c *Config) OutputPath() string {
	if filepath.IsAbs(c.Build.Output) {
		return c.Build.Output
	}
	return filepath.Join(c.Dir(), c.Build.Output)
}

// AssetsPath returns the absolute path to the static assets directory.
func (c *Config) AssetsPath() string {
	if filepath.IsAbs(c.Build.Assets) {
		return c.Build.Assets
	}
	return filepath.Join(c.Dir(), c.Build.Assets)
}

// WatchPaths returns the absolute paths the dev server watches.
func (c *Config) WatchPaths() []string {
	paths := make([]string, 0, len(c.Dev.Watch))
	for _, p := range c.Dev.Watch {
		if filepath.IsAbs(p) {
			paths = append(paths, p)
			continue
		}
		paths = append(paths, filepath.Join(c.Dir(), p))
	}
	return paths
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing veneer.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E401").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory").
				WithSuggestion("Run 'veneer new <name>' to create a project")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the nearest project root
// at or above the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}
