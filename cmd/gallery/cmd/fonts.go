package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-drift/fluent-gallery/pkg/fonts"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
)

func init() {
	RegisterCommand(&Command{
		Name:  "fonts",
		Short: "Show which fonts were found",
		Long: `Probe the font candidates and print the family chosen for each role.

Candidates are the files listed under fonts.ui and fonts.icons in
gallery.yaml, then the platform fonts, then Selawik and Fluent System
Icons in each fonts.search_dirs entry. A role with no usable candidate
falls back to the bundled Go font or to drawn icon glyphs.`,
		Usage: "gallery fonts",
		Run:   runFonts,
	})
}

func runFonts(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q", args[0])
	}
	p, err := loadProject()
	if err != nil {
		return err
	}
	registry, err := p.discoverFonts(context.Background())
	if err != nil {
		return err
	}
	printFonts(registry)
	return nil
}

func printFonts(registry *fonts.Registry) {
	for _, role := range fonts.Roles {
		s, ok := registry.Selection(role)
		if !ok {
			fallback := "drawn glyphs"
			if role == fonts.RoleUI {
				fallback = graphics.DefaultFamily + " (bundled)"
			}
			fmt.Fprintf(stdout, "%-6s not found, using %s\n", role.String()+":", fallback)
			continue
		}
		fmt.Fprintf(stdout, "%-6s %s\n", role.String()+":", s.Family)
		fmt.Fprintf(stdout, "       %s\n", s.Path)
		weights := make([]graphics.FontWeight, 0, len(s.Faces))
		for w := range s.Faces {
			weights = append(weights, w)
		}
		sort.Slice(weights, func(i, j int) bool { return weights[i] < weights[j] })
		for _, w := range weights {
			fmt.Fprintf(stdout, "       weight %d\n", int(w))
		}
	}
}
