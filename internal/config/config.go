package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-docs2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid configuration")
)

// DefaultConfigName is the file stem searched in standard locations.
const DefaultConfigName = "docs2pdf"

// DefaultTimeout bounds a render when the config does not say otherwise.
const DefaultTimeout = 2 * time.Minute

// Environment variables overlaid onto file values by ApplyEnv.
// Flags are applied later and win over both.
const (
	EnvRepoURL   = "DOCS2PDF_REPO_URL"
	EnvBranch    = "DOCS2PDF_BRANCH"
	EnvDocsDir   = "DOCS2PDF_DOCS_DIR"
	EnvOutputDir = "DOCS2PDF_OUTPUT_DIR"
	EnvTimeout   = "DOCS2PDF_TIMEOUT"
)

// Config holds everything one export run needs.
type Config struct {
	ProjectName string       `yaml:"project_name"` // used in titles and filenames
	Source      SourceConfig `yaml:"source"`
	Assets      AssetsConfig `yaml:"assets"`
	Output      OutputConfig `yaml:"output"`
	Page        PageConfig   `yaml:"page"`
	Style       string       `yaml:"style"`      // stylesheet name in the assets tree
	AssetsDir   string       `yaml:"assets_dir"` // custom asset dir overriding embedded
	Date        string       `yaml:"date"`       // cover/footer date: auto, auto:FORMAT, or literal
	Timeout     string       `yaml:"timeout"`    // Go duration string, e.g. "2m"
}

// SourceConfig locates the documentation tree.
type SourceConfig struct {
	RepoURL  string `yaml:"repo_url"`
	Branch   string `yaml:"branch"`
	DocsDir  string `yaml:"docs_dir"`  // directory inside the repository
	CloneDir string `yaml:"clone_dir"` // local checkout location
}

// AssetsConfig controls image URL rewriting in document sources.
type AssetsConfig struct {
	Rewrite   bool   `yaml:"rewrite"`
	BaseURL   string `yaml:"base_url"`
	URLSuffix string `yaml:"url_suffix"`
}

// OutputConfig defines where and what to write.
type OutputConfig struct {
	Dir  string `yaml:"dir"`
	HTML bool   `yaml:"html"` // also write the HTML variants
}

// PageConfig defines print settings.
type PageConfig struct {
	Format          string  `yaml:"format"` // "A4", "Letter", "Legal"
	Margin          float64 `yaml:"margin"` // inches
	Scale           float64 `yaml:"scale"`
	PrintBackground bool    `yaml:"print_background"`
}

// DefaultConfig returns the configuration of the stock Next.js export.
func DefaultConfig() *Config {
	return &Config{
		ProjectName: "Next.js",
		Source: SourceConfig{
			RepoURL:  "https://github.com/vercel/next.js.git",
			Branch:   "canary",
			DocsDir:  "docs",
			CloneDir: "nextjs-docs",
		},
		Assets: AssetsConfig{
			Rewrite:   true,
			BaseURL:   "https://nextjs.org/_next/image?url=",
			URLSuffix: "&w=1920&q=75",
		},
		Output: OutputConfig{
			Dir:  ".",
			HTML: false,
		},
		Page: PageConfig{
			Format:          "A4",
			Margin:          0.52,
			Scale:           1.0,
			PrintBackground: true,
		},
		Style:   "default",
		Date:    "auto",
		Timeout: "2m",
	}
}

// Validate checks the configuration for values no export can run with.
// Called by the loaders, and again by the CLI after env and flag
// overlays.
func (c *Config) Validate() error {
	if c.ProjectName == "" {
		return fmt.Errorf("%w: project_name is required", ErrInvalidConfig)
	}
	if err := c.Source.validate(); err != nil {
		return err
	}
	if err := c.Page.validate(); err != nil {
		return err
	}
	if c.Style == "" {
		return fmt.Errorf("%w: style is required", ErrInvalidConfig)
	}
	if _, err := c.RenderTimeout(); err != nil {
		return err
	}
	return nil
}

func (s *SourceConfig) validate() error {
	if s.RepoURL == "" {
		return fmt.Errorf("%w: source.repo_url is required", ErrInvalidConfig)
	}
	// URL-style remotes must parse; scp-style remotes (git@host:path)
	// pass through for the git layer to judge.
	if strings.Contains(s.RepoURL, "://") {
		u, err := url.Parse(s.RepoURL)
		if err != nil || u.Host == "" {
			return fmt.Errorf("%w: source.repo_url: malformed URL %q", ErrInvalidConfig, s.RepoURL)
		}
	}
	if s.Branch == "" {
		return fmt.Errorf("%w: source.branch is required", ErrInvalidConfig)
	}
	if s.DocsDir == "" {
		return fmt.Errorf("%w: source.docs_dir is required", ErrInvalidConfig)
	}
	if filepath.IsAbs(s.DocsDir) || strings.Contains(s.DocsDir, "..") {
		return fmt.Errorf("%w: source.docs_dir must be a relative path inside the repository", ErrInvalidConfig)
	}
	if s.CloneDir == "" {
		return fmt.Errorf("%w: source.clone_dir is required", ErrInvalidConfig)
	}
	return nil
}

func (p *PageConfig) validate() error {
	switch strings.ToLower(p.Format) {
	case "a4", "letter", "legal":
	default:
		return fmt.Errorf("%w: page.format: unknown format %q (A4, Letter, Legal)", ErrInvalidConfig, p.Format)
	}
	if p.Margin < 0 || p.Margin > 3 {
		return fmt.Errorf("%w: page.margin: must be between 0 and 3 inches, got %.2f", ErrInvalidConfig, p.Margin)
	}
	if p.Scale < 0.1 || p.Scale > 2 {
		return fmt.Errorf("%w: page.scale: must be between 0.1 and 2, got %.2f", ErrInvalidConfig, p.Scale)
	}
	return nil
}

// RenderTimeout parses the configured timeout. An empty value falls back
// to DefaultTimeout.
func (c *Config) RenderTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return DefaultTimeout, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: timeout: %v", ErrInvalidConfig, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidConfig, c.Timeout)
	}
	return d, nil
}

// ApplyEnv overlays DOCS2PDF_* environment variables onto the config.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(EnvRepoURL); ok {
		c.Source.RepoURL = v
	}
	if v, ok := os.LookupEnv(EnvBranch); ok {
		c.Source.Branch = v
	}
	if v, ok := os.LookupEnv(EnvDocsDir); ok {
		c.Source.DocsDir = v
	}
	if v, ok := os.LookupEnv(EnvOutputDir); ok {
		c.Output.Dir = v
	}
	if v, ok := os.LookupEnv(EnvTimeout); ok {
		c.Timeout = v
	}
}

// LoadConfig loads configuration from a file path or config name.
// A nameOrPath containing a path separator is treated as a file path;
// anything else is searched in the standard locations. The file is not
// optional here: a missing file is an error, with no silent fallback.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	return loadFile(configPath)
}

// LoadDefault looks for the standard config in the working directory and
// the user config directory. Absence is not an error: the built-in
// defaults run the stock Next.js export unchanged.
func LoadDefault() (*Config, error) {
	path, err := resolveConfigPath(DefaultConfigName)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return loadFile(path)
}

// loadFile reads a YAML file over the defaults, so partial configs keep
// default values for the keys they omit.
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, `/\`)
}

// resolveConfigPath searches for a config file by name in standard
// locations. Extensions tried in order: .yaml, .yml. Locations tried in
// order: current directory, then the user config directory.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-docs2pdf", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
