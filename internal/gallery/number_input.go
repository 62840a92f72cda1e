package gallery

import (
	"fmt"

	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/layout"
	"github.com/go-drift/fluent-gallery/pkg/numeric"
	"github.com/go-drift/fluent-gallery/pkg/widgets"
)

// numberSource identifies a number input on the number input page.
type numberSource string

const (
	sourceStacked    numberSource = "stacked"
	sourceCompact    numberSource = "compact"
	sourceFractional numberSource = "fractional"
	sourceNoButtons  numberSource = "no-buttons"
	sourceNoScroll   numberSource = "no-scroll"
	sourceInert      numberSource = "inert"
	sourceUnderlined numberSource = "underlined"
)

// numberSubmitted is published when Enter is pressed in the stacked input.
type numberSubmitted struct {
	source numberSource
}

// numbers holds the committed value of every input on the page.
type numbers struct {
	ints       map[numberSource]int
	fractional float64
	underlined uint8
	submitted  string
}

func defaultNumbers() numbers {
	return numbers{
		ints: map[numberSource]int{
			sourceStacked:   5,
			sourceCompact:   5,
			sourceNoButtons: 50,
			sourceNoScroll:  0,
			sourceInert:     7,
		},
		fractional: 1.5,
		underlined: 128,
	}
}

func (n *numbers) setInt(source any, value int) {
	if s, ok := source.(numberSource); ok {
		n.ints[s] = value
	}
}

func (n *numbers) setFloat(source any, value float64) {
	if source == sourceFractional {
		n.fractional = value
	}
}

func (n *numbers) setUint8(source any, value uint8) {
	if source == sourceUnderlined {
		n.underlined = value
	}
}

func buildNumberInputPage(g *Gallery) core.Widget {
	ints := g.numbers.ints

	submitted := "Press Enter in the first input"
	if g.numbers.submitted != "" {
		submitted = "Submitted " + g.numbers.submitted
	}

	return widgets.ColumnOf(12,
		description(g, "Type a value, use the arrow keys or the mouse wheel, or click the step buttons. Values stay within range."),
		numberRow(g, "Stacked buttons, 0 to 10",
			widgets.NewNumberInput(sourceStacked, ints[sourceStacked], numeric.Inclusive(0, 10)).
				OnSubmit(numberSubmitted{source: sourceStacked}),
			ints[sourceStacked]),
		numberRow(g, "Inline buttons, -10 to 10",
			widgets.NewNumberInput(sourceCompact, ints[sourceCompact], numeric.Inclusive(-10, 10)).
				WithPadding(layout.EdgeInsetsSymmetric(6, 2)),
			ints[sourceCompact]),
		numberRow(g, "Step 0.25, 0 to 5",
			widgets.NewNumberInput(sourceFractional, g.numbers.fractional, numeric.Inclusive(0.0, 5.0)).
				WithStep(0.25),
			g.numbers.fractional),
		numberRow(g, "Keyboard and wheel only",
			widgets.NewNumberInput(sourceNoButtons, ints[sourceNoButtons], numeric.Inclusive(0, 100)).
				WithStep(5).
				IgnoreButtons(),
			ints[sourceNoButtons]),
		numberRow(g, "Wheel ignored, -5 to 5",
			widgets.NewNumberInput(sourceNoScroll, ints[sourceNoScroll], numeric.Inclusive(-5, 5)).
				IgnoreScroll(),
			ints[sourceNoScroll]),
		numberRow(g, "Inert, 7 to 7",
			widgets.NewNumberInput(sourceInert, ints[sourceInert], numeric.Inclusive(7, 7)),
			ints[sourceInert]),
		numberRow(g, "Underlined, uint8",
			widgets.UnderlinedNumberInput(
				widgets.NewNumberInput(sourceUnderlined, g.numbers.underlined, numeric.Inclusive[uint8](0, 255)).
					WithStep(16)),
			g.numbers.underlined),
		caption(g, submitted),
	)
}

func numberRow(g *Gallery, label string, input core.Widget, value any) core.Widget {
	return widgets.Row{
		Spacing:            16,
		CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
		Children: []core.Widget{
			widgets.Text{
				Content:   label,
				Style:     g.theme.TextTheme.Body,
				Width:     layout.Fixed(220),
				Alignment: layout.AlignmentCenterLeft,
			},
			input,
			caption(g, fmt.Sprintf("Value: %v", value)),
		},
	}
}
