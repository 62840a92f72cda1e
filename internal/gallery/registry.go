package gallery

import (
	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/icons"
)

// Page is a gallery page.
type Page struct {
	Route    string
	Title    string
	Subtitle string
	Category string
	Icon     icons.Icon
	Builder  func(g *Gallery) core.Widget
}

// Category constants for page organization.
const (
	CategoryInputs = "inputs"
	CategoryDesign = "design"
)

// HomeRoute is the landing page.
const HomeRoute = "/"

// pages is the registry of every page reachable from home.
// Add new pages here to update navigation and routing.
var pages = []Page{
	{"/number-input", "Number input", "Bounded numeric entry with step buttons", CategoryInputs, icons.Calculator, buildNumberInputPage},
	{"/pick-list", "Pick list", "Choose one option from a drop-down", CategoryInputs, icons.BulletedList, buildPickListPage},
	{"/typography", "Typography", "Type ramp and discovered fonts", CategoryDesign, icons.Font, buildTypographyPage},
	{"/icons", "Icons", "Fluent glyphs and their fallbacks", CategoryDesign, icons.Edit, buildIconsPage},
	{"/theming", "Theming", "Light and dark palettes, accent color", CategoryDesign, icons.Color, buildThemingPage},
}

// Pages returns the registry in display order.
func Pages() []Page {
	out := make([]Page, len(pages))
	copy(out, pages)
	return out
}

// Lookup finds the page for route. The home route is not in the registry.
func Lookup(route string) (Page, bool) {
	for _, p := range pages {
		if p.Route == route {
			return p, true
		}
	}
	return Page{}, false
}
