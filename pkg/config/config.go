// Package config loads the optional gallery.yaml configuration and resolves
// defaults from the surrounding Go module and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/theme"
)

// FileName is the configuration file looked up in the project directory.
const FileName = "gallery.yaml"

// Config represents gallery.yaml.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Window WindowConfig `yaml:"window"`
	Theme  ThemeConfig  `yaml:"theme"`
	Fonts  FontsConfig  `yaml:"fonts"`
	Log    LogConfig    `yaml:"log"`
	Debug  DebugConfig  `yaml:"debug"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
	ID   string `yaml:"id,omitempty"`
}

// WindowConfig sizes the desktop window, in logical pixels.
type WindowConfig struct {
	Title     string  `yaml:"title,omitempty"`
	Width     float64 `yaml:"width,omitempty"`
	Height    float64 `yaml:"height,omitempty"`
	MinWidth  float64 `yaml:"min_width,omitempty"`
	MinHeight float64 `yaml:"min_height,omitempty"`
}

// ThemeConfig selects the starting palette.
type ThemeConfig struct {
	// Mode is "light" or "dark".
	Mode string `yaml:"mode,omitempty"`
	// Accent overrides the system accent, as #RRGGBB or #AARRGGBB.
	Accent string `yaml:"accent,omitempty"`
}

// FontsConfig adds font candidates ahead of the platform defaults.
type FontsConfig struct {
	UI         []string `yaml:"ui,omitempty"`
	Icons      []string `yaml:"icons,omitempty"`
	SearchDirs []string `yaml:"search_dirs,omitempty"`
}

// LogConfig configures the logrus logger.
type LogConfig struct {
	Level   string `yaml:"level,omitempty"`
	JSON    bool   `yaml:"json,omitempty"`
	Verbose bool   `yaml:"verbose,omitempty"`
}

// DebugConfig enables the tree inspection server when Addr is set.
type DebugConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// Resolved contains configuration with every default filled in.
type Resolved struct {
	Root       string
	ModulePath string
	Config
}

const (
	defaultWidth     = 1024
	defaultHeight    = 720
	defaultMinWidth  = 500
	defaultMinHeight = 500
	defaultFontDir   = "assets/fonts"
)

// LoadOptional reads gallery.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Parse(data)
}

// Parse decodes gallery.yaml contents.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Resolve loads gallery.yaml and .env (if present), applies environment
// overrides and fills in defaults. A missing go.mod is not an error; the
// app name then falls back to the directory name.
func Resolve(dir string) (*Resolved, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	cfg, err := LoadOptional(abs)
	if err != nil {
		return nil, err
	}
	if err := LoadDotEnv(abs); err != nil {
		return nil, err
	}
	ApplyEnv(cfg, os.LookupEnv)

	modPath, err := modulePath(abs)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	resolved := &Resolved{Root: abs, ModulePath: modPath, Config: *cfg}
	resolved.applyDefaults()
	if err := resolved.Validate(); err != nil {
		return nil, err
	}
	return resolved, nil
}

func (r *Resolved) applyDefaults() {
	r.App.Name = strings.TrimSpace(r.App.Name)
	if r.App.Name == "" {
		r.App.Name = defaultAppName(r.ModulePath, r.Root)
	}
	r.App.ID = strings.TrimSpace(r.App.ID)
	if r.App.ID == "" {
		r.App.ID = defaultAppID(r.ModulePath, r.App.Name)
	}

	if r.Window.Title == "" {
		r.Window.Title = r.App.Name
	}
	if r.Window.Width == 0 {
		r.Window.Width = defaultWidth
	}
	if r.Window.Height == 0 {
		r.Window.Height = defaultHeight
	}
	if r.Window.MinWidth == 0 {
		r.Window.MinWidth = defaultMinWidth
	}
	if r.Window.MinHeight == 0 {
		r.Window.MinHeight = defaultMinHeight
	}

	r.Theme.Mode = strings.ToLower(strings.TrimSpace(r.Theme.Mode))
	if r.Theme.Mode == "" {
		r.Theme.Mode = "light"
	}

	if len(r.Fonts.SearchDirs) == 0 {
		r.Fonts.SearchDirs = []string{defaultFontDir}
	}
	r.Fonts.SearchDirs = r.absolute(r.Fonts.SearchDirs)
	r.Fonts.UI = r.absolute(r.Fonts.UI)
	r.Fonts.Icons = r.absolute(r.Fonts.Icons)

	r.Log.Level = strings.ToLower(strings.TrimSpace(r.Log.Level))
	if r.Log.Level == "" {
		r.Log.Level = "info"
		if r.Log.Verbose {
			r.Log.Level = "debug"
		}
	}
}

func (r *Resolved) absolute(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !filepath.IsAbs(p) {
			p = filepath.Join(r.Root, p)
		}
		out = append(out, filepath.Clean(p))
	}
	return out
}

// Validate reports the first invalid setting.
func (r *Resolved) Validate() error {
	if err := validateAppID(r.App.ID); err != nil {
		return err
	}
	if r.Window.Width < 0 || r.Window.Height < 0 || r.Window.MinWidth < 0 || r.Window.MinHeight < 0 {
		return fmt.Errorf("window sizes must not be negative")
	}
	if r.Window.Width < r.Window.MinWidth || r.Window.Height < r.Window.MinHeight {
		return fmt.Errorf("window size %vx%v is below the minimum %vx%v",
			r.Window.Width, r.Window.Height, r.Window.MinWidth, r.Window.MinHeight)
	}
	if _, err := theme.ParseBrightness(r.Theme.Mode); err != nil {
		return fmt.Errorf("theme.mode: %w", err)
	}
	if r.Theme.Accent != "" {
		if _, err := graphics.ParseHex(r.Theme.Accent); err != nil {
			return fmt.Errorf("theme.accent: %w", err)
		}
	}
	if _, err := parseLevel(r.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// ThemeData builds the configured theme.
func (t ThemeConfig) ThemeData() (*theme.ThemeData, error) {
	brightness, err := theme.ParseBrightness(t.Mode)
	if err != nil {
		return nil, err
	}
	data := theme.ForBrightness(brightness)
	if t.Accent == "" {
		return data, nil
	}
	accent, err := graphics.ParseHex(t.Accent)
	if err != nil {
		return nil, err
	}
	return data.WithAccent(accent), nil
}

// FindProjectRoot walks up from the current directory to find go.mod or
// gallery.yaml.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		for _, marker := range []string{"go.mod", FileName} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no go.mod or %s found", FileName)
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		modName, _, ok := module.SplitPathVersion(modulePath)
		if ok {
			parts := strings.Split(modName, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "fluent-gallery"
	}
	return base
}

func defaultAppID(modulePath, appName string) string {
	parts := strings.Split(modulePath, "/")
	if len(parts) < 2 || !strings.Contains(parts[0], ".") {
		return fmt.Sprintf("com.example.%s", sanitizeSegment(appName, false))
	}

	host := strings.Split(parts[0], ".")
	for i, j := 0, len(host)-1; i < j; i, j = i+1, j-1 {
		host[i], host[j] = host[j], host[i]
	}

	segments := host
	for _, p := range parts[1:] {
		if p != "" {
			segments = append(segments, p)
		}
	}
	for i, segment := range segments {
		segments[i] = sanitizeSegment(segment, false)
	}

	return strings.Join(segments, ".")
}

func sanitizeSegment(segment string, allowLeadingDigit bool) string {
	var out []rune
	for _, r := range strings.TrimSpace(segment) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		}
	}

	if len(out) == 0 {
		out = []rune("app")
	}

	if !allowLeadingDigit && out[0] >= '0' && out[0] <= '9' {
		out = append([]rune{'a'}, out...)
	}

	return string(out)
}

func validateAppID(appID string) error {
	if !strings.Contains(appID, ".") {
		return fmt.Errorf("app.id must contain at least one '.' (got %q)", appID)
	}
	for _, segment := range strings.Split(appID, ".") {
		if segment == "" {
			return fmt.Errorf("app.id contains an empty segment (%q)", appID)
		}
		if segment[0] >= '0' && segment[0] <= '9' {
			return fmt.Errorf("app.id segments cannot start with a digit (%q)", appID)
		}
		for _, r := range segment {
			if !(r == '_' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
				return fmt.Errorf("app.id contains invalid character %q in %q", r, appID)
			}
		}
	}
	return nil
}
