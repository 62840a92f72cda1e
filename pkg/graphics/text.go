package graphics

import (
	stderrors "errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	// defaultFontSize is used when no font size is specified.
	defaultFontSize = 14

	// DefaultFamily names the bundled Go fonts registered by NewFontManager.
	DefaultFamily = "Go"
)

// FontWeight represents a numeric font weight.
type FontWeight int

const (
	FontWeightLight    FontWeight = 300
	FontWeightNormal   FontWeight = 400
	FontWeightMedium   FontWeight = 500
	FontWeightSemibold FontWeight = 600
	FontWeightBold     FontWeight = 700
)

// String returns a human-readable representation of the font weight.
func (w FontWeight) String() string {
	switch w {
	case FontWeightLight:
		return "light"
	case FontWeightNormal:
		return "normal"
	case FontWeightMedium:
		return "medium"
	case FontWeightSemibold:
		return "semibold"
	case FontWeightBold:
		return "bold"
	default:
		return fmt.Sprintf("FontWeight(%d)", int(w))
	}
}

// TextStyle describes how text should be rendered.
type TextStyle struct {
	Color      Color
	FontFamily string
	FontSize   float64
	FontWeight FontWeight
	// LineHeight is the absolute line height in logical pixels.
	// Zero uses the face's ascent plus descent.
	LineHeight float64
}

// WithColor returns a copy of the TextStyle with the specified color.
func (s TextStyle) WithColor(c Color) TextStyle {
	s.Color = c
	return s
}

// TextLayout contains measured single-line text metrics and a resolved font
// face. Text is laid out left to right without shaping.
type TextLayout struct {
	Text       string
	Style      TextStyle
	Size       Size
	Ascent     float64
	Descent    float64
	Face       font.Face
	LineHeight float64

	// stops[i] is the x offset of the boundary before rune i;
	// the last entry is the full advance.
	stops []float64
}

// RuneCount returns the number of runes in the laid out text.
func (l *TextLayout) RuneCount() int {
	return len(l.stops) - 1
}

// OffsetAt returns the x offset of the caret position before rune index i.
// Out of range indices are clamped.
func (l *TextLayout) OffsetAt(i int) float64 {
	if len(l.stops) == 0 {
		return 0
	}
	if i < 0 {
		i = 0
	}
	if i >= len(l.stops) {
		i = len(l.stops) - 1
	}
	return l.stops[i]
}

// IndexAtX returns the caret index nearest to x.
func (l *TextLayout) IndexAtX(x float64) int {
	if len(l.stops) <= 1 || x <= 0 {
		return 0
	}
	i := sort.SearchFloat64s(l.stops, x)
	if i >= len(l.stops) {
		return len(l.stops) - 1
	}
	if i > 0 && x-l.stops[i-1] < l.stops[i]-x {
		return i - 1
	}
	return i
}

// Baseline returns the distance from the top of the line box to the baseline.
func (l *TextLayout) Baseline() float64 {
	return (l.LineHeight-(l.Ascent+l.Descent))/2 + l.Ascent
}

type faceKey struct {
	family string
	weight FontWeight
	size   float64
}

// FontManager manages font registration for text layout.
type FontManager struct {
	mu          sync.RWMutex
	fonts       map[string]map[FontWeight]*opentype.Font
	faces       map[faceKey]font.Face
	defaultName string
}

var (
	defaultFontManager     *FontManager
	defaultFontManagerErr  error
	defaultFontManagerOnce sync.Once
)

// NewFontManager creates a font manager with the bundled Go fonts registered
// as the default family.
func NewFontManager() (*FontManager, error) {
	manager := &FontManager{
		fonts:       make(map[string]map[FontWeight]*opentype.Font),
		faces:       make(map[faceKey]font.Face),
		defaultName: DefaultFamily,
	}
	bundled := []struct {
		weight FontWeight
		data   []byte
	}{
		{FontWeightNormal, goregular.TTF},
		{FontWeightMedium, gomedium.TTF},
		{FontWeightBold, gobold.TTF},
	}
	for _, b := range bundled {
		if err := manager.RegisterFont(DefaultFamily, b.weight, b.data); err != nil {
			return nil, err
		}
	}
	return manager, nil
}

// DefaultFontManagerErr returns a shared font manager with the bundled fonts.
// It returns both the manager and any error that occurred during initialization.
func DefaultFontManagerErr() (*FontManager, error) {
	defaultFontManagerOnce.Do(func() {
		defaultFontManager, defaultFontManagerErr = NewFontManager()
	})
	return defaultFontManager, defaultFontManagerErr
}

// DefaultFontManager returns a shared font manager, or nil if the bundled
// fonts failed to parse.
func DefaultFontManager() *FontManager {
	manager, _ := DefaultFontManagerErr()
	return manager
}

// RegisterFont registers one weight of a font family from TrueType or
// OpenType data.
func (m *FontManager) RegisterFont(family string, weight FontWeight, data []byte) error {
	if family == "" {
		return stderrors.New("font family required")
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %q: %w", family, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	weights := m.fonts[family]
	if weights == nil {
		weights = make(map[FontWeight]*opentype.Font)
		m.fonts[family] = weights
	}
	weights[weight] = parsed
	for key := range m.faces {
		if key.family == family {
			delete(m.faces, key)
		}
	}
	return nil
}

// HasFamily reports whether any weight of family is registered.
func (m *FontManager) HasFamily(family string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.fonts[family]) > 0
}

// Families returns the registered family names in sorted order.
func (m *FontManager) Families() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.fonts))
	for name := range m.fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Face resolves a font face for the given style. Unknown families fall back
// to the default family; missing weights resolve to the nearest registered one.
func (m *FontManager) Face(style TextStyle) (font.Face, error) {
	family := style.FontFamily
	size := style.FontSize
	if size <= 0 {
		size = defaultFontSize
	}
	weight := style.FontWeight
	if weight == 0 {
		weight = FontWeightNormal
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.fonts[family]) == 0 {
		family = m.defaultName
	}
	weights := m.fonts[family]
	if len(weights) == 0 {
		return nil, fmt.Errorf("no font registered for family %q", style.FontFamily)
	}
	resolved := nearestWeight(weights, weight)
	key := faceKey{family: family, weight: resolved, size: size}
	if face, ok := m.faces[key]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(weights[resolved], &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create face %s/%s: %w", family, resolved, err)
	}
	m.faces[key] = face
	return face, nil
}

func nearestWeight(weights map[FontWeight]*opentype.Font, want FontWeight) FontWeight {
	best := FontWeight(-1)
	bestDist := math.MaxInt
	for w := range weights {
		d := int(w - want)
		if d < 0 {
			d = -d
		}
		// Ties resolve to the heavier weight.
		if d < bestDist || (d == bestDist && w > best) {
			best, bestDist = w, d
		}
	}
	return best
}

// LayoutText measures a single line of text using the provided font manager.
func LayoutText(text string, style TextStyle, manager *FontManager) (*TextLayout, error) {
	if manager == nil {
		return nil, stderrors.New("font manager required")
	}
	face, err := manager.Face(style)
	if err != nil {
		return nil, err
	}
	if style.FontSize <= 0 {
		style.FontSize = defaultFontSize
	}
	metrics := face.Metrics()
	ascent := fixedToFloat(metrics.Ascent)
	descent := fixedToFloat(metrics.Descent)
	lineHeight := style.LineHeight
	if lineHeight <= 0 {
		lineHeight = ascent + descent
	}

	stops := make([]float64, 0, utf8.RuneCountInString(text)+1)
	stops = append(stops, 0)
	var x fixed.Int26_6
	prev := rune(-1)
	for _, r := range text {
		if prev >= 0 {
			x += face.Kern(prev, r)
		}
		advance, ok := face.GlyphAdvance(r)
		if !ok {
			advance, _ = face.GlyphAdvance('�')
		}
		x += advance
		stops = append(stops, fixedToFloat(x))
		prev = r
	}

	return &TextLayout{
		Text:       text,
		Style:      style,
		Size:       Size{Width: stops[len(stops)-1], Height: lineHeight},
		Ascent:     ascent,
		Descent:    descent,
		Face:       face,
		LineHeight: lineHeight,
		stops:      stops,
	}, nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
