package widgets

import (
	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/layout"
	"github.com/go-drift/fluent-gallery/pkg/numeric"
	"github.com/go-drift/fluent-gallery/pkg/style"
)

// defaultNumberPadding is the padding of a number input. Tighter padding
// on the top, bottom or right edge switches the step buttons to a
// horizontal "+ -" pair.
const defaultNumberPadding = 5

// NumberChanged is published when a NumberInput commits a new value.
type NumberChanged[T numeric.Number] struct {
	// Source is the value given to NewNumberInput.
	Source any
	Value  T
}

// ModifierState holds the pressed flags of the step buttons. It persists
// in the widget tree and only affects drawing.
type ModifierState struct {
	DecreasePressed bool
	IncreasePressed bool
}

// NumberInput is a text field for a bounded number with increase and
// decrease buttons.
//
// The committed value always stays within the range. Typed and pasted text
// is validated on every keystroke:
//
//   - text that parses to a new in-range value commits it and publishes
//     NumberChanged
//   - text that parses but is out of range or unchanged, and prefixes such
//     as "-" that cannot parse yet, is kept in the field without committing
//   - anything else is refused
//
// The buttons, ArrowUp and ArrowDown, and the mouse wheel step the value by
// Step, clamping at the bounds. A range with equal bounds makes the control
// inert.
//
// NumberInput is built fresh on every view and handed to the engine by
// pointer, so builder calls chain:
//
//	widgets.NewNumberInput("volume", m.volume, numeric.Inclusive(0, 100)).
//	    WithStep(5).
//	    WithWidth(layout.Fixed(120))
type NumberInput[T numeric.Number] struct {
	source        any
	value         T
	domain        numeric.Domain[T]
	padding       layout.EdgeInsets
	size          float64
	lineHeight    float64
	width         layout.Length
	contentWidth  layout.Length
	font          string
	ignoreScroll  bool
	ignoreButtons bool
	class         style.Class
	inputClass    style.Class
	styleFunc     style.NumberInputStyleFunc
	inputStyle    func(c style.Catalog, status style.Status) style.TextInputStyle
	onSubmit      any
}

// NewNumberInput creates a number input for value within bounds, stepping
// by one. Source identifies the input in NumberChanged messages and keys
// its state in the widget tree. A value outside bounds is clamped.
func NewNumberInput[T numeric.Number](source any, value T, bounds numeric.Range[T]) *NumberInput[T] {
	return &NumberInput[T]{
		source:       source,
		value:        bounds.Clamp(value),
		domain:       numeric.NewDomain(bounds, numeric.One[T]()),
		padding:      layout.EdgeInsetsAll(defaultNumberPadding),
		size:         defaultTextSize,
		lineHeight:   defaultLineHeight,
		width:        layout.Shrink,
		contentWidth: layout.Fixed(60),
	}
}

// WithStep sets the step size. A negative step uses its magnitude.
func (n *NumberInput[T]) WithStep(step T) *NumberInput[T] {
	n.domain = numeric.NewDomain(numeric.Range[T]{Min: n.domain.Min, Max: n.domain.Max}, step)
	return n
}

// WithPadding sets the padding of the text field.
func (n *NumberInput[T]) WithPadding(padding layout.EdgeInsets) *NumberInput[T] {
	n.padding = padding
	return n
}

// WithSize sets the text size. Button glyphs scale with it.
func (n *NumberInput[T]) WithSize(size float64) *NumberInput[T] {
	n.size = size
	return n
}

// WithWidth sets the width policy of the whole control.
func (n *NumberInput[T]) WithWidth(width layout.Length) *NumberInput[T] {
	n.width = width
	return n
}

// WithContentWidth sets the width policy of the text field.
func (n *NumberInput[T]) WithContentWidth(width layout.Length) *NumberInput[T] {
	n.contentWidth = width
	return n
}

// WithFont sets the font family of the text field.
func (n *NumberInput[T]) WithFont(family string) *NumberInput[T] {
	n.font = family
	return n
}

// IgnoreScroll stops the mouse wheel from stepping the value.
func (n *NumberInput[T]) IgnoreScroll() *NumberInput[T] {
	n.ignoreScroll = true
	return n
}

// IgnoreButtons hides the step buttons. The keyboard and the wheel still
// step the value.
func (n *NumberInput[T]) IgnoreButtons() *NumberInput[T] {
	n.ignoreButtons = true
	return n
}

// WithClass selects the catalog style of the step buttons.
func (n *NumberInput[T]) WithClass(class style.Class) *NumberInput[T] {
	n.class = class
	return n
}

// WithStyle overrides the catalog style of the step buttons.
func (n *NumberInput[T]) WithStyle(fn style.NumberInputStyleFunc) *NumberInput[T] {
	n.styleFunc = fn
	return n
}

// WithInputClass selects the catalog style of the text field.
func (n *NumberInput[T]) WithInputClass(class style.Class) *NumberInput[T] {
	n.inputClass = class
	return n
}

// WithInputStyle overrides the catalog style of the text field.
func (n *NumberInput[T]) WithInputStyle(fn func(c style.Catalog, status style.Status) style.TextInputStyle) *NumberInput[T] {
	n.inputStyle = fn
	return n
}

// OnSubmit sets the message published when Enter is pressed in the field.
func (n *NumberInput[T]) OnSubmit(msg any) *NumberInput[T] {
	n.onSubmit = msg
	return n
}

// Value returns the committed value.
func (n *NumberInput[T]) Value() T {
	return n.value
}

// Domain returns the bounds and step of the input.
func (n *NumberInput[T]) Domain() numeric.Domain[T] {
	return n.domain
}

func (n *NumberInput[T]) Tag() core.Tag { return core.TagOf[ModifierState]() }
func (n *NumberInput[T]) State() any    { return &ModifierState{} }
func (n *NumberInput[T]) Key() any      { return n.source }

func (n *NumberInput[T]) Sizing() core.Sizing {
	return core.Sizing{Width: n.width, Height: layout.Shrink}
}

func (n *NumberInput[T]) ChildWidgets() []core.Widget {
	return []core.Widget{n.content(), n.modifiers()}
}

// content is the inner text field showing the committed value.
func (n *NumberInput[T]) content() TextInput {
	return TextInput{
		Value:       numeric.Format(n.value),
		Size:        n.size,
		LineHeight:  n.lineHeight,
		Padding:     n.padding,
		Width:       n.contentWidth,
		Font:        n.font,
		Class:       n.inputClass,
		Style:       n.inputStyle,
		OnSubmit:    n.onSubmit,
		ResetOnBlur: true,
		ID:          n.source,
	}
}

// iconSize is the size of the step button glyphs.
func (n *NumberInput[T]) iconSize() float64 {
	return n.size * 0.625
}

// modifiers builds the step button regions, increase first. The glyph
// labels only size the regions; Draw paints chevrons over them.
func (n *NumberInput[T]) modifiers() core.Widget {
	button := func(label string) core.Widget {
		return Container{
			Child: Text{
				Content: label,
				Style:   graphics.TextStyle{FontSize: n.iconSize()},
			},
			Alignment: layout.AlignmentCenter,
		}
	}
	p := n.padding
	if p.Top < defaultNumberPadding || p.Bottom < defaultNumberPadding || p.Right < defaultNumberPadding {
		return Row{Spacing: 1, Children: []core.Widget{button(" + "), button(" - ")}}
	}
	return Column{Spacing: 1, Children: []core.Widget{button(" ▲ "), button(" ▼ ")}}
}
