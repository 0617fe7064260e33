package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	diag "github.com/inference-gateway/tilecfg/internal/diag"
	document "github.com/inference-gateway/tilecfg/internal/document"
	logger "github.com/inference-gateway/tilecfg/internal/logger"
	afero "github.com/spf13/afero"
	multierr "go.uber.org/multierr"
)

// ErrIncludeCycle is returned when a document includes itself, directly or
// through other files
var ErrIncludeCycle = errors.New("include cycle")

// LoadError carries every non-fatal problem found while loading. The
// config returned alongside it holds everything that did decode.
type LoadError struct {
	Diagnostics []diag.Diagnostic
}

func (e *LoadError) Error() string {
	return e.combined().Error()
}

func (e *LoadError) Unwrap() []error {
	return multierr.Errors(e.combined())
}

func (e *LoadError) combined() error {
	var err error
	for _, d := range e.Diagnostics {
		err = multierr.Append(err, d)
	}
	return err
}

// Loader reads a document and the files it includes
type Loader struct {
	fs    afero.Fs
	files []string
	diags []diag.Diagnostic
}

func NewLoader(fs afero.Fs) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Loader{fs: fs}
}

// Files lists every document read by the last Load, in include order
func (l *Loader) Files() []string {
	return append([]string(nil), l.files...)
}

// Load reads path and its includes and merges them over the defaults.
// A syntax error or include cycle aborts with a nil config; anything else
// yields a best-effort config and a *LoadError.
func (l *Loader) Load(path string) (*Config, error) {
	l.files = nil
	l.diags = nil

	cfg := DefaultConfig()
	if err := l.loadFile(cfg, path, nil); err != nil {
		return nil, err
	}

	logger.Debug("Loaded config", "path", path, "files", len(l.files), "binds", len(cfg.Binds), "diagnostics", len(l.diags))
	if len(l.diags) > 0 {
		return cfg, &LoadError{Diagnostics: l.diags}
	}
	return cfg, nil
}

func (l *Loader) loadFile(cfg *Config, path string, chain []string) error {
	for _, seen := range chain {
		if seen == path {
			return fmt.Errorf("%w: %s", ErrIncludeCycle, strings.Join(append(chain, path), " -> "))
		}
	}

	src, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	l.files = append(l.files, path)

	doc, err := document.Parse(path, src)
	if err != nil {
		logger.Error("Failed to parse config file", "path", path, "error", err)
		return err
	}

	chain = append(chain, path)
	d := &decoder{diags: diag.NewCollector(path)}
	part := &ConfigPart{}
	once := setOnce{}

	for _, node := range doc.Nodes {
		if node.Name != "include" {
			if !repeatableSections[node.Name] && !once.first(d, node) {
				continue
			}
			decodeSection(d, node, part)
			continue
		}

		// Everything above the include applies before the included file.
		cfg.MergeWith(part)
		part = &ConfigPart{}

		target := arg(d, node, d.stringValue)
		l.diags = append(l.diags, d.diags.Diagnostics()...)
		d.diags = diag.NewCollector(path)
		if target == nil {
			continue
		}

		included := resolveInclude(path, *target)
		if err := l.loadFile(cfg, included, chain); err != nil {
			if errors.Is(err, ErrIncludeCycle) || isSyntaxError(err) {
				return err
			}
			d.errorf(node.Args[0].Span, "failed to include %q: %v", *target, err)
		}
	}

	cfg.MergeWith(part)
	l.diags = append(l.diags, d.diags.Diagnostics()...)
	return nil
}

func isSyntaxError(err error) bool {
	var syntax *document.SyntaxError
	return errors.As(err, &syntax)
}

// resolveInclude interprets target relative to the including file
func resolveInclude(from, target string) string {
	target = expandHome(target)
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Join(filepath.Dir(from), target)
}

func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}

// Load reads the config at path from the OS filesystem. A missing file
// yields the defaults with the default binds.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
		logger.Debug("Using default config path", "path", path)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Debug("Config file not found, using default configuration", "path", path)
		cfg := DefaultConfig()
		cfg.Binds = DefaultBinds()
		return cfg, nil
	}

	return NewLoader(nil).Load(path)
}

// Parse decodes an in-memory document. Includes resolve against an empty
// filesystem, so each one is reported as a diagnostic.
func Parse(filename string, src []byte) (*Config, error) {
	if filename == "" {
		filename = "config.kdl"
	}
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, filename, src, 0o644); err != nil {
		return nil, err
	}
	return NewLoader(fs).Load(filename)
}

// DefaultConfigPath is $XDG_CONFIG_HOME/tilewm/config.kdl, falling back to
// ~/.config/tilewm/config.kdl
func DefaultConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "tilewm", "config.kdl")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "tilewm", "config.kdl")
	}
	return filepath.Join(home, ".config", "tilewm", "config.kdl")
}
