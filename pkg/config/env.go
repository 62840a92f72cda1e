package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override gallery.yaml.
const (
	EnvTheme     = "GALLERY_THEME"
	EnvAccent    = "GALLERY_ACCENT"
	EnvLogLevel  = "GALLERY_LOG_LEVEL"
	EnvFontDirs  = "GALLERY_FONT_DIRS"
	EnvDebugAddr = "GALLERY_DEBUG_ADDR"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadDotEnv loads dir/.env into the process environment. Variables that are
// already set win over the file.
func LoadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// ApplyEnv overrides cfg with any GALLERY_* variables lookup reports.
// GALLERY_FONT_DIRS is a list separated by os.PathListSeparator.
func ApplyEnv(cfg *Config, lookup LookupFunc) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookupTrimmed(lookup, EnvTheme); ok {
		cfg.Theme.Mode = v
	}
	if v, ok := lookupTrimmed(lookup, EnvAccent); ok {
		cfg.Theme.Accent = v
	}
	if v, ok := lookupTrimmed(lookup, EnvLogLevel); ok {
		cfg.Log.Level = v
	}
	if v, ok := lookupTrimmed(lookup, EnvFontDirs); ok {
		cfg.Fonts.SearchDirs = filepath.SplitList(v)
	}
	if v, ok := lookupTrimmed(lookup, EnvDebugAddr); ok {
		cfg.Debug.Addr = v
	}
}

func lookupTrimmed(lookup LookupFunc, key string) (string, bool) {
	v, ok := lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}
