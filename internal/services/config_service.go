package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	fsnotify "github.com/fsnotify/fsnotify"
	uuid "github.com/google/uuid"
	config "github.com/inference-gateway/tilecfg/config"
	constants "github.com/inference-gateway/tilecfg/internal/constants"
	keybinding "github.com/inference-gateway/tilecfg/internal/keybinding"
	logger "github.com/inference-gateway/tilecfg/internal/logger"
	afero "github.com/spf13/afero"
)

// Snapshot is one immutable generation of the loaded config
type Snapshot struct {
	ID       uuid.UUID
	LoadedAt time.Time
	Path     string
	Config   *config.Config
	Registry *keybinding.Registry
	// Files lists every document read, the root first
	Files []string
	// Err holds the diagnostics of a load that still produced a config
	Err *config.LoadError
}

// ConfigService owns the current snapshot and swaps it atomically on
// reload. Readers never observe a half-built config.
type ConfigService struct {
	path     string
	fs       afero.Fs
	nested   bool
	debounce time.Duration

	current  atomic.Pointer[Snapshot]
	reloadMu sync.Mutex
}

type ConfigServiceOption func(*ConfigService)

// WithFs reads documents from fs instead of the OS filesystem. Watch only
// works with the OS filesystem.
func WithFs(fs afero.Fs) ConfigServiceOption {
	return func(s *ConfigService) { s.fs = fs }
}

// WithNested resolves Mod with the nested mod key
func WithNested(nested bool) ConfigServiceOption {
	return func(s *ConfigService) { s.nested = nested }
}

func WithDebounce(d time.Duration) ConfigServiceOption {
	return func(s *ConfigService) { s.debounce = d }
}

func NewConfigService(path string, opts ...ConfigServiceOption) *ConfigService {
	s := &ConfigService{
		path:     path,
		fs:       afero.NewOsFs(),
		debounce: constants.ConfigReloadDebounce,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns the active snapshot, or nil before the first Reload
func (s *ConfigService) Current() *Snapshot {
	return s.current.Load()
}

// Reload loads the document again and swaps it in. On a fatal error the
// previous snapshot stays active and the error is returned.
func (s *ConfigService) Reload() (*Snapshot, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	snap, err := s.load()
	if err != nil {
		logger.Error("Failed to reload config, keeping previous", "path", s.path, "error", err)
		return s.current.Load(), err
	}

	prev := s.current.Swap(snap)
	fields := []any{"path", s.path, "generation", snap.ID.String(), "binds", len(snap.Config.Binds)}
	if prev != nil {
		fields = append(fields, "previous", prev.ID.String())
	}
	if snap.Err != nil {
		fields = append(fields, "diagnostics", len(snap.Err.Diagnostics))
	}
	logger.Info("Config loaded", fields...)
	return snap, nil
}

func (s *ConfigService) load() (*Snapshot, error) {
	exists, err := afero.Exists(s.fs, s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	var (
		cfg     *config.Config
		files   []string
		loadErr *config.LoadError
	)
	if !exists {
		cfg = config.DefaultConfig()
		cfg.Binds = config.DefaultBinds()
	} else {
		loader := config.NewLoader(s.fs)
		cfg, err = loader.Load(s.path)
		if err != nil && !errors.As(err, &loadErr) {
			return nil, err
		}
		files = loader.Files()
	}

	modKey := keybinding.EffectiveModKey(cfg.Input, s.nested)
	return &Snapshot{
		ID:       uuid.New(),
		LoadedAt: time.Now(),
		Path:     s.path,
		Config:   cfg,
		Registry: keybinding.NewRegistry(cfg.Binds, modKey),
		Files:    files,
		Err:      loadErr,
	}, nil
}

// Watch reloads whenever one of the loaded documents changes and calls
// onReload with the result. It blocks until ctx is done and logs through
// the context logger.
func (s *ConfigService) Watch(ctx context.Context, onReload func(*Snapshot, error)) error {
	log := logger.Sugar(logger.ForConfig(ctx, s.path))

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			log.Warnw("Failed to close file watcher", "error", err)
		}
	}()

	// Directories are watched since editors often replace files by rename.
	watched := map[string]bool{}
	files := map[string]bool{}
	watchFiles := func() {
		paths := []string{s.path}
		if snap := s.current.Load(); snap != nil {
			paths = append(paths, snap.Files...)
		}
		for _, p := range paths {
			abs, err := filepath.Abs(p)
			if err != nil {
				continue
			}
			files[abs] = true
			dir := filepath.Dir(abs)
			if watched[dir] {
				continue
			}
			if err := watcher.Add(dir); err != nil {
				log.Warnw("Failed to watch config directory", "dir", dir, "error", err)
				continue
			}
			watched[dir] = true
		}
	}
	watchFiles()

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !files[ev.Name] || ev.Op == fsnotify.Chmod {
				continue
			}
			log.Debugw("Config file changed", "file", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(s.debounce)
			} else {
				timer.Reset(s.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			snap, err := s.Reload()
			if err == nil {
				watchFiles()
			}
			if onReload != nil {
				onReload(snap, err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnw("File watcher error", "error", err)
		}
	}
}
