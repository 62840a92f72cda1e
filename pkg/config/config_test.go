package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/fluent-gallery/pkg/theme"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvTheme, EnvAccent, EnvLogLevel, EnvFontDirs, EnvDebugAddr} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestResolveDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module github.com/go-drift/fluent-gallery\n\ngo 1.24\n")

	r, err := Resolve(dir)
	require.NoError(t, err)

	assert.Equal(t, "github.com/go-drift/fluent-gallery", r.ModulePath)
	assert.Equal(t, "fluent-gallery", r.App.Name)
	assert.Equal(t, "com.github.godrift.fluentgallery", r.App.ID)
	assert.Equal(t, "fluent-gallery", r.Window.Title)
	assert.Equal(t, float64(defaultWidth), r.Window.Width)
	assert.Equal(t, float64(defaultHeight), r.Window.Height)
	assert.Equal(t, "light", r.Theme.Mode)
	assert.Equal(t, "info", r.Log.Level)
	assert.Equal(t, []string{filepath.Join(dir, "assets", "fonts")}, r.Fonts.SearchDirs)
}

func TestResolveWithoutGoMod(t *testing.T) {
	clearEnv(t)
	dir := filepath.Join(t.TempDir(), "Demo App")
	require.NoError(t, os.Mkdir(dir, 0o755))

	r, err := Resolve(dir)
	require.NoError(t, err)
	assert.Empty(t, r.ModulePath)
	assert.Equal(t, "Demo App", r.App.Name)
	assert.Equal(t, "com.example.demoapp", r.App.ID)
}

func TestResolveReadsYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
app:
  name: Gallery
  id: dev.gallery.app
window:
  title: Fluent Gallery
  width: 800
  height: 600
theme:
  mode: Dark
  accent: "#0078D4"
fonts:
  ui: [fonts/custom.ttf]
  search_dirs: [/usr/share/fonts, local]
log:
  level: warn
  json: true
`)

	r, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, "Gallery", r.App.Name)
	assert.Equal(t, "dev.gallery.app", r.App.ID)
	assert.Equal(t, "Fluent Gallery", r.Window.Title)
	assert.Equal(t, 800.0, r.Window.Width)
	assert.Equal(t, "dark", r.Theme.Mode)
	assert.Equal(t, []string{filepath.Join(dir, "fonts", "custom.ttf")}, r.Fonts.UI)
	assert.Equal(t, []string{"/usr/share/fonts", filepath.Join(dir, "local")}, r.Fonts.SearchDirs)
	assert.True(t, r.Log.JSON)

	data, err := r.Theme.ThemeData()
	require.NoError(t, err)
	assert.Equal(t, theme.BrightnessDark, data.Brightness)
	assert.Equal(t, uint32(0xFF0078D4), uint32(data.ColorScheme.Accent))
}

func TestResolveEnvOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, FileName, "theme:\n  mode: light\nlog:\n  level: info\n")
	t.Setenv(EnvTheme, "dark")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvFontDirs, "/a"+string(os.PathListSeparator)+"/b")

	r, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, "dark", r.Theme.Mode)
	assert.Equal(t, "debug", r.Log.Level)
	assert.Equal(t, []string{"/a", "/b"}, r.Fonts.SearchDirs)
}

func TestResolveLoadsDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, ".env", "GALLERY_THEME=dark\nGALLERY_DEBUG_ADDR=127.0.0.1:0\n")

	r, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, "dark", r.Theme.Mode)
	assert.Equal(t, "127.0.0.1:0", r.Debug.Addr)
}

func TestResolveRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"theme mode", "theme:\n  mode: sepia\n"},
		{"accent", "theme:\n  accent: blue\n"},
		{"log level", "log:\n  level: loud\n"},
		{"app id", "app:\n  id: nodots\n"},
		{"app id digit", "app:\n  id: com.1gallery\n"},
		{"window below minimum", "window:\n  width: 100\n  height: 100\n"},
		{"malformed", "app: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			dir := t.TempDir()
			writeFile(t, dir, FileName, tt.yaml)
			_, err := Resolve(dir)
			assert.Error(t, err)
		})
	}
}

func TestApplyEnvIgnoresBlankValues(t *testing.T) {
	cfg := &Config{Theme: ThemeConfig{Mode: "dark"}}
	ApplyEnv(cfg, func(key string) (string, bool) {
		if key == EnvTheme {
			return "  ", true
		}
		return "", false
	})
	assert.Equal(t, "dark", cfg.Theme.Mode)
}

func TestDefaultAppID(t *testing.T) {
	tests := []struct {
		module, name, want string
	}{
		{"github.com/go-drift/fluent-gallery", "fluent-gallery", "com.github.godrift.fluentgallery"},
		{"example.com/v2/app/v2", "app", "com.example.v2.app.v2"},
		{"gallery", "gallery", "com.example.gallery"},
		{"", "9lives", "com.example.a9lives"},
	}
	for _, tt := range tests {
		got := defaultAppID(tt.module, tt.name)
		assert.Equal(t, tt.want, got, "module %q", tt.module)
		assert.NoError(t, validateAppID(got))
	}
}

func TestDefaultAppNameStripsMajorVersion(t *testing.T) {
	assert.Equal(t, "gallery", defaultAppName("example.com/gallery/v3", "/tmp/x"))
	assert.Equal(t, "x", defaultAppName("", "/tmp/x"))
}

func TestLogConfigApply(t *testing.T) {
	logger, err := LogConfig{Level: "warn", JSON: true}.NewLogger()
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	logger, err = LogConfig{Level: "info", Verbose: true}.NewLogger()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	_, err = LogConfig{Level: "loud"}.NewLogger()
	assert.Error(t, err)
}

func TestWatchReloadsOnChange(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, FileName, "theme:\n  mode: light\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := make(chan *Resolved, 8)
	require.NoError(t, Watch(ctx, dir, func(r *Resolved, err error) {
		if err == nil {
			updates <- r
		}
	}))

	writeFile(t, dir, FileName, "theme:\n  mode: dark\n")

	deadline := time.After(5 * time.Second)
	for {
		select {
		case r := <-updates:
			if r.Theme.Mode == "dark" {
				return
			}
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "missing"), func(*Resolved, error) {})
	assert.Error(t, err)
}
