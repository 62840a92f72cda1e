package fonts

import (
	"path/filepath"
	"runtime"

	"github.com/go-drift/fluent-gallery/pkg/graphics"
)

// Role identifies what a font family is used for.
type Role int

const (
	// RoleUI is the family for labels and input text.
	RoleUI Role = iota
	// RoleIcons is the family providing the Fluent icon glyphs.
	RoleIcons
)

func (r Role) String() string {
	switch r {
	case RoleUI:
		return "ui"
	case RoleIcons:
		return "icons"
	default:
		return "unknown"
	}
}

// Roles lists every role in discovery order.
var Roles = []Role{RoleUI, RoleIcons}

// Face is one weight of a candidate family.
type Face struct {
	Weight graphics.FontWeight
	Path   string
}

// Candidate is a font family that may fill a role. Faces[0] is the regular
// weight; a candidate qualifies only when that face loads.
type Candidate struct {
	Family string
	Faces  []Face
}

// Candidates maps each role to its candidates in preference order.
type Candidates map[Role][]Candidate

const windowsFonts = `C:\Windows\Fonts`

// DefaultCandidates returns the Fluent candidates: Segoe UI and Segoe Fluent
// Icons from the Windows font directory, then Selawik and Fluent System
// Icons from each of searchDirs.
func DefaultCandidates(searchDirs []string) Candidates {
	c := Candidates{}
	if runtime.GOOS == "windows" {
		c.add(RoleUI, Candidate{Family: "Segoe UI", Faces: []Face{
			{graphics.FontWeightNormal, filepath.Join(windowsFonts, "segoeui.ttf")},
			{graphics.FontWeightBold, filepath.Join(windowsFonts, "segoeuib.ttf")},
			{graphics.FontWeightSemibold, filepath.Join(windowsFonts, "segoeuisb.ttf")},
		}})
		c.add(RoleIcons, Candidate{Family: "Segoe Fluent Icons", Faces: []Face{
			{graphics.FontWeightNormal, filepath.Join(windowsFonts, "SegoeFluentIcons.ttf")},
		}})
	}
	for _, dir := range searchDirs {
		c.add(RoleUI, Candidate{Family: "Selawik", Faces: []Face{
			{graphics.FontWeightNormal, filepath.Join(dir, "selawk.ttf")},
			{graphics.FontWeightBold, filepath.Join(dir, "selawkb.ttf")},
			{graphics.FontWeightSemibold, filepath.Join(dir, "selawksb.ttf")},
		}})
		c.add(RoleIcons, Candidate{Family: "Fluent System Icons", Faces: []Face{
			{graphics.FontWeightNormal, filepath.Join(dir, "FluentSystemIcons-Regular.ttf")},
		}})
	}
	return c
}

// WithFiles prepends single-file candidates for role. The family name is
// read from each file's name table at discovery time.
func (c Candidates) WithFiles(role Role, paths ...string) Candidates {
	extra := make([]Candidate, 0, len(paths)+len(c[role]))
	for _, p := range paths {
		extra = append(extra, Candidate{Faces: []Face{{graphics.FontWeightNormal, p}}})
	}
	c[role] = append(extra, c[role]...)
	return c
}

func (c Candidates) add(role Role, candidate Candidate) {
	c[role] = append(c[role], candidate)
}
