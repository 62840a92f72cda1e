package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/go-drift/fluent-gallery/internal/gallery"
	"github.com/go-drift/fluent-gallery/pkg/config"
	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/errors"
	"github.com/go-drift/fluent-gallery/pkg/fonts"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/theme"
)

// project is the resolved configuration plus the logger built from it.
type project struct {
	cfg    *config.Resolved
	logger *logrus.Logger
	log    *logrus.Entry
}

// loadProject resolves the project from --dir, the nearest go.mod or
// gallery.yaml, or the working directory, in that order.
func loadProject() (*project, error) {
	dir := projectDir
	if dir == "" {
		root, err := config.FindProjectRoot()
		if err != nil {
			if dir, err = os.Getwd(); err != nil {
				return nil, err
			}
		} else {
			dir = root
		}
	}

	cfg, err := config.Resolve(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger, err := cfg.Log.NewLogger()
	if err != nil {
		return nil, err
	}
	errors.SetHandler(&errors.LogHandler{Logger: logger})

	return &project{
		cfg:    cfg,
		logger: logger,
		log:    logrus.NewEntry(logger).WithField("app", cfg.App.ID),
	}, nil
}

// candidates lists font candidates, configured files first.
func (p *project) candidates() fonts.Candidates {
	return fonts.DefaultCandidates(p.cfg.Fonts.SearchDirs).
		WithFiles(fonts.RoleUI, p.cfg.Fonts.UI...).
		WithFiles(fonts.RoleIcons, p.cfg.Fonts.Icons...)
}

// discoverFonts probes the candidates without registering anything.
func (p *project) discoverFonts(ctx context.Context) (*fonts.Registry, error) {
	return fonts.Discover(ctx, p.candidates(), p.log)
}

// environment discovers fonts and registers them with a fresh font manager.
func (p *project) environment(ctx context.Context) (*core.Env, *fonts.Registry, error) {
	registry, err := p.discoverFonts(ctx)
	if err != nil {
		return nil, nil, err
	}
	manager, err := graphics.NewFontManager()
	if err != nil {
		return nil, nil, &errors.FluentError{Op: "gallery.fonts", Kind: errors.KindFont, Err: err}
	}
	env := &core.Env{
		Fonts:      manager,
		Typography: registry.Register(manager),
	}
	return env, registry, nil
}

// newGallery creates the gallery program for env.
func (p *project) newGallery(env *core.Env, registry *fonts.Registry, tc config.ThemeConfig) (*gallery.Gallery, error) {
	brightness, accent, err := themeSelection(tc)
	if err != nil {
		return nil, err
	}
	return gallery.New(gallery.Options{
		Brightness: brightness,
		Accent:     accent,
		Typography: env.Typography,
		Fonts:      registry,
		Log:        p.log,
	}), nil
}

// themeSelection reads the mode and accent of tc. A zero accent keeps the
// palette's own.
func themeSelection(tc config.ThemeConfig) (theme.Brightness, graphics.Color, error) {
	brightness, err := theme.ParseBrightness(tc.Mode)
	if err != nil {
		return 0, 0, &errors.FluentError{Op: "gallery.theme", Kind: errors.KindConfig, Err: err}
	}
	var accent graphics.Color
	if tc.Accent != "" {
		if accent, err = graphics.ParseHex(tc.Accent); err != nil {
			return 0, 0, &errors.FluentError{Op: "gallery.theme", Kind: errors.KindConfig, Err: err}
		}
	}
	return brightness, accent, nil
}
