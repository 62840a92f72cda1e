package gallery

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/fluent-gallery/pkg/fonts"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/input"
	gallerytest "github.com/go-drift/fluent-gallery/pkg/testing"
	"github.com/go-drift/fluent-gallery/pkg/theme"
	"github.com/go-drift/fluent-gallery/pkg/widgets"
)

func newGallery() *Gallery {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(Options{Log: logrus.NewEntry(logger)})
}

func pump(t *testing.T, g *Gallery) *gallerytest.WidgetTester {
	t.Helper()
	tester := gallerytest.NewWidgetTester()
	tester.SetSize(graphics.Size{Width: 1024, Height: 720})
	tester.PumpProgram(g)
	return tester
}

func TestRegistry(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Pages() {
		assert.False(t, seen[p.Route], "duplicate route %s", p.Route)
		seen[p.Route] = true
		assert.NotNil(t, p.Builder, p.Route)
		assert.Contains(t, []string{CategoryInputs, CategoryDesign}, p.Category, p.Route)

		found, ok := Lookup(p.Route)
		require.True(t, ok)
		assert.Equal(t, p.Title, found.Title)
	}
	_, ok := Lookup(HomeRoute)
	assert.False(t, ok)
}

func TestNavigation(t *testing.T) {
	g := newGallery()
	assert.Equal(t, HomeRoute, g.Route())

	g.Update(Back{})
	assert.Equal(t, HomeRoute, g.Route(), "back on home is a no-op")

	g.Update(Navigate{Route: "/typography"})
	g.Update(Navigate{Route: "/typography"})
	g.Update(Navigate{Route: "/icons"})
	assert.Equal(t, []string{HomeRoute, "/typography", "/icons"}, g.history)

	g.Update(Navigate{Route: "/missing"})
	assert.Equal(t, "/icons", g.Route())

	g.Update(Back{})
	assert.Equal(t, "/typography", g.Route())

	g.Update(Navigate{Route: HomeRoute})
	assert.Equal(t, []string{HomeRoute}, g.history)
}

func TestEveryPageBuilds(t *testing.T) {
	g := newGallery()
	tester := pump(t, g)
	for _, p := range Pages() {
		g.Update(Navigate{Route: p.Route})
		tester.PumpProgram(g)
		assert.True(t, tester.Find(gallerytest.ByText(p.Title)).Exists(), p.Route)
		assert.True(t, tester.Find(gallerytest.ByText("Back")).Exists(), p.Route)
		assert.Positive(t, tester.Paint().Len(), p.Route)
		g.Update(Back{})
	}
}

func TestHomeNavigatesByClick(t *testing.T) {
	g := newGallery()
	tester := pump(t, g)

	assert.False(t, tester.Find(gallerytest.ByText("Back")).Exists())
	require.NoError(t, tester.Tap(gallerytest.ByText("Number input")))
	assert.Equal(t, "/number-input", g.Route())
	assert.True(t, tester.Find(gallerytest.ByText("Stacked buttons, 0 to 10")).Exists())

	require.NoError(t, tester.Tap(gallerytest.ByText("Back")))
	assert.Equal(t, HomeRoute, g.Route())
}

func TestThemeToggle(t *testing.T) {
	g := newGallery()
	tester := pump(t, g)
	assert.Equal(t, theme.BrightnessLight, g.Brightness())

	require.NoError(t, tester.Tap(gallerytest.ByText("Dark mode")))
	assert.Equal(t, theme.BrightnessDark, g.Brightness())
	assert.Same(t, g.ThemeData(), tester.Env().Catalog)
	assert.True(t, tester.Find(gallerytest.ByText("Light mode")).Exists())

	g.Update(ToggleTheme{})
	assert.Equal(t, theme.BrightnessLight, g.Brightness())
}

func TestSetThemeKeepsAccent(t *testing.T) {
	g := newGallery()
	purple := accents["Purple"]

	g.Update(SetTheme{Brightness: theme.BrightnessDark, Accent: purple})
	assert.Equal(t, purple, g.ThemeData().ColorScheme.Accent)
	assert.Equal(t, "Purple", g.accentName)

	g.Update(ToggleTheme{})
	assert.Equal(t, theme.BrightnessLight, g.Brightness())
	assert.Equal(t, purple, g.ThemeData().ColorScheme.Accent)

	g.Update(widgets.PickListSelected[string]{Source: accentSource, Value: accentDefault})
	assert.Equal(t, theme.LightColorScheme().Accent, g.ThemeData().ColorScheme.Accent)

	g.Update(widgets.PickListSelected[string]{Source: accentSource, Value: "Chartreuse"})
	assert.Equal(t, accentDefault, g.accentName)
}

func TestNumberInputPage(t *testing.T) {
	g := newGallery()
	g.Update(Navigate{Route: "/number-input"})
	tester := pump(t, g)

	tester.Engine().Focus(sourceStacked)
	tester.PressKey(input.KeyArrowUp)
	assert.Equal(t, 6, g.numbers.ints[sourceStacked])
	assert.True(t, tester.Find(gallerytest.ByText("Value: 6")).Exists())

	tester.PressKey(input.KeyEnter)
	assert.True(t, tester.Find(gallerytest.ByText("Submitted stacked at 6")).Exists())

	tester.Engine().Focus(sourceInert)
	assert.Equal(t, input.Ignored, tester.PressKey(input.KeyArrowUp))
	assert.Equal(t, 7, g.numbers.ints[sourceInert])
}

func TestNumberMessagesBySource(t *testing.T) {
	g := newGallery()
	g.Update(widgets.NumberChanged[int]{Source: sourceCompact, Value: -3})
	g.Update(widgets.NumberChanged[float64]{Source: sourceFractional, Value: 2.75})
	g.Update(widgets.NumberChanged[uint8]{Source: sourceUnderlined, Value: 200})
	g.Update(widgets.NumberChanged[int]{Source: "elsewhere", Value: 1})
	g.Update(widgets.NumberChanged[float64]{Source: sourceStacked, Value: 9})

	assert.Equal(t, -3, g.numbers.ints[sourceCompact])
	assert.Equal(t, 5, g.numbers.ints[sourceStacked])
	assert.Equal(t, 2.75, g.numbers.fractional)
	assert.Equal(t, uint8(200), g.numbers.underlined)
}

func TestPickListPage(t *testing.T) {
	g := newGallery()
	g.Update(Navigate{Route: "/pick-list"})
	tester := pump(t, g)
	assert.True(t, tester.Find(gallerytest.ByText("Nothing picked yet")).Exists())

	closed := tester.Find(gallerytest.ByType[widgets.PickList[string]]()).Bounds()
	tester.TapAt(closed.Center())
	// Second row: below the header, one row down.
	tester.TapAt(graphics.Offset{X: closed.Left + 10, Y: closed.Top + 75})

	require.NotNil(t, g.fruit)
	assert.Equal(t, "Banana", *g.fruit)
	assert.True(t, tester.Find(gallerytest.ByText("You picked Banana")).Exists())
}

func TestTypographyFallbackSummary(t *testing.T) {
	g := newGallery()
	assert.Equal(t, "ui: Go (bundled)", fontSummary(g, fonts.RoleUI))
	assert.Contains(t, fontSummary(g, fonts.RoleIcons), "fallback")
}

func TestUnhandledMessageIsIgnored(t *testing.T) {
	g := newGallery()
	g.Update(struct{}{})
	assert.Equal(t, HomeRoute, g.Route())
}
