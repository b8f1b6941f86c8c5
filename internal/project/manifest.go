package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"sable/internal/diag"
	"sable/internal/source"
)

const (
	DefaultMaxDiagnostics = 100
	DefaultCacheDir       = ".sable-cache"
)

// Manifest is a parsed sable.toml together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

type Config struct {
	Package PackageConfig `toml:"package"`
	Check   CheckConfig   `toml:"check"`
	Trace   TraceConfig   `toml:"trace"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

// CheckConfig задаёт параметры `sable check`; нулевые значения означают "по умолчанию".
type CheckConfig struct {
	MaxDiagnostics int    `toml:"max-diagnostics"`
	Jobs           int    `toml:"jobs"`
	Cache          bool   `toml:"cache"`
	CacheDir       string `toml:"cache-dir"`
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
}

// Defaults returns the configuration used when no manifest is found.
func Defaults() Config {
	return Config{
		Check: CheckConfig{
			MaxDiagnostics: DefaultMaxDiagnostics,
			CacheDir:       DefaultCacheDir,
		},
		Trace: TraceConfig{Level: "off"},
	}
}

// Load discovers sable.toml starting at startDir. When there is none,
// ok is false and the returned manifest carries Defaults().
func Load(startDir string) (m *Manifest, ok bool, err error) {
	path, ok, err := FindManifest(startDir)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return &Manifest{Config: Defaults()}, false, nil
	}
	m, err = LoadFile(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// LoadFile parses one manifest. Errors are *diag.Error with ProjBadManifest.
func LoadFile(path string) (*Manifest, error) {
	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, badManifest(path, "failed to parse TOML: %v", err)
	}
	if !meta.IsDefined("package") {
		return nil, badManifest(path, "missing [package]")
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return nil, badManifest(path, "missing [package].name")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, badManifest(path, "unknown key %s", undecoded[0])
	}
	if cfg.Check.MaxDiagnostics < 0 {
		return nil, badManifest(path, "[check].max-diagnostics must not be negative")
	}
	if cfg.Check.Jobs < 0 {
		return nil, badManifest(path, "[check].jobs must not be negative")
	}
	if cfg.Check.MaxDiagnostics == 0 {
		cfg.Check.MaxDiagnostics = DefaultMaxDiagnostics
	}
	if cfg.Check.CacheDir == "" {
		cfg.Check.CacheDir = DefaultCacheDir
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, nil
}

// CachePath resolves the cache directory against the project root.
func (m *Manifest) CachePath() string {
	dir := m.Config.Check.CacheDir
	if filepath.IsAbs(dir) || m.Root == "" {
		return dir
	}
	return filepath.Join(m.Root, dir)
}

func badManifest(path, format string, args ...any) error {
	return diag.Errorf(diag.ProjBadManifest, source.Span{}, source.Location{}, "%s: %s", path, fmt.Sprintf(format, args...))
}
