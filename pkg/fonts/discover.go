package fonts

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/sync/errgroup"

	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/errors"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
)

// Selection is the family chosen for a role with the face data that loaded.
type Selection struct {
	Role   Role
	Family string
	// Path is the file of the regular face.
	Path  string
	Faces map[graphics.FontWeight][]byte
}

// Registry holds the discovery result. A role without a selection uses the
// toolkit fallback.
type Registry struct {
	mu       sync.Mutex
	selected map[Role]*Selection
}

// Selection returns the family chosen for role, if any.
func (r *Registry) Selection(role Role) (*Selection, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.selected[role]
	return s, ok
}

// Family returns the family chosen for role, or "".
func (r *Registry) Family(role Role) string {
	if s, ok := r.Selection(role); ok {
		return s.Family
	}
	return ""
}

func (r *Registry) set(s *Selection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selected[s.Role] = s
}

// ReadFileFunc reads a font file. Tests substitute an in-memory reader.
type ReadFileFunc func(path string) ([]byte, error)

// Discover probes every role concurrently and selects the first qualifying
// candidate of each. Unreadable or malformed files are logged and skipped;
// only a cancelled context is an error.
func Discover(ctx context.Context, candidates Candidates, log *logrus.Entry) (*Registry, error) {
	return DiscoverWith(ctx, candidates, os.ReadFile, log)
}

// DiscoverWith is Discover with a custom file reader.
func DiscoverWith(ctx context.Context, candidates Candidates, read ReadFileFunc, log *logrus.Entry) (*Registry, error) {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	log = log.WithField("component", "fonts")
	registry := &Registry{selected: make(map[Role]*Selection)}

	g, ctx := errgroup.WithContext(ctx)
	for _, role := range Roles {
		g.Go(func() error {
			for _, candidate := range candidates[role] {
				if err := ctx.Err(); err != nil {
					return err
				}
				selection, err := probe(role, candidate, read)
				if err != nil {
					log.WithFields(logrus.Fields{"role": role, "family": candidate.Family}).
						WithError(err).Debug("font candidate skipped")
					continue
				}
				log.WithFields(logrus.Fields{
					"role":   role,
					"family": selection.Family,
					"path":   selection.Path,
					"faces":  len(selection.Faces),
				}).Info("font selected")
				registry.set(selection)
				return nil
			}
			log.WithField("role", role).Warn("no font candidate available, using fallback")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, &errors.FluentError{Op: "fonts.Discover", Kind: errors.KindFont, Err: err}
	}
	return registry, nil
}

// probe loads the regular face of candidate, then any other weights that
// load. The family name falls back to the regular face's name table.
func probe(role Role, candidate Candidate, read ReadFileFunc) (*Selection, error) {
	if len(candidate.Faces) == 0 {
		return nil, fmt.Errorf("candidate %q has no faces", candidate.Family)
	}
	regular := candidate.Faces[0]
	data, err := read(regular.Path)
	if err != nil {
		return nil, err
	}
	parsed, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", regular.Path, err)
	}
	family := candidate.Family
	if family == "" {
		if family, err = familyName(parsed); err != nil {
			return nil, fmt.Errorf("name table of %s: %w", regular.Path, err)
		}
	}

	selection := &Selection{
		Role:   role,
		Family: family,
		Path:   regular.Path,
		Faces:  map[graphics.FontWeight][]byte{regular.Weight: data},
	}
	for _, face := range candidate.Faces[1:] {
		data, err := read(face.Path)
		if err != nil {
			continue
		}
		if _, err := sfnt.Parse(data); err != nil {
			continue
		}
		selection.Faces[face.Weight] = data
	}
	return selection, nil
}

func familyName(f *sfnt.Font) (string, error) {
	var buf sfnt.Buffer
	name, err := f.Name(&buf, sfnt.NameIDTypographicFamily)
	if err == nil && name != "" {
		return name, nil
	}
	name, err = f.Name(&buf, sfnt.NameIDFamily)
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", fmt.Errorf("empty family name")
	}
	return name, nil
}

// Register adds every selected face to manager and returns the typography
// the widgets should use. Faces that fail to register are reported and
// skipped; a role none of whose faces register falls back.
func (r *Registry) Register(manager *graphics.FontManager) core.Typography {
	typography := core.Typography{UIFamily: graphics.DefaultFamily}
	for _, role := range Roles {
		s, ok := r.Selection(role)
		if !ok {
			continue
		}
		registered := false
		for weight, data := range s.Faces {
			if err := manager.RegisterFont(s.Family, weight, data); err != nil {
				errors.Report(&errors.FluentError{Op: "fonts.Register", Kind: errors.KindFont, Err: err})
				continue
			}
			registered = true
		}
		if !registered {
			continue
		}
		switch role {
		case RoleUI:
			typography.UIFamily = s.Family
		case RoleIcons:
			typography.IconFamily = s.Family
		}
	}
	return typography
}
