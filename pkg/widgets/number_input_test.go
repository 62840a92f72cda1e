package widgets_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/input"
	"github.com/go-drift/fluent-gallery/pkg/layout"
	"github.com/go-drift/fluent-gallery/pkg/numeric"
	"github.com/go-drift/fluent-gallery/pkg/style"
	gallerytest "github.com/go-drift/fluent-gallery/pkg/testing"
	"github.com/go-drift/fluent-gallery/pkg/theme"
	"github.com/go-drift/fluent-gallery/pkg/widgets"
)

const inputID = "count"

// pumpNumber mounts a focused number input and returns the tester.
func pumpNumber(t *testing.T, n *widgets.NumberInput[int]) *gallerytest.WidgetTester {
	t.Helper()
	tester := gallerytest.NewWidgetTester()
	tester.PumpWidget(n)
	tester.Engine().Focus(inputID)
	require.True(t, tester.Engine().Focused(), "number input should take focus")
	return tester
}

func fieldOf(tester *gallerytest.WidgetTester) *widgets.TextInputState {
	return core.StateOf[widgets.TextInputState](tester.Engine().Tree().Child(0))
}

func changes(tester *gallerytest.WidgetTester) []int {
	var out []int
	for _, msg := range tester.TakeMessages() {
		if changed, ok := msg.(widgets.NumberChanged[int]); ok {
			out = append(out, changed.Value)
		}
	}
	return out
}

func increaseButton(tester *gallerytest.WidgetTester) graphics.Offset {
	return tester.Find(gallerytest.ByText(" ▲ ")).Bounds().Center()
}

func decreaseButton(tester *gallerytest.WidgetTester) graphics.Offset {
	return tester.Find(gallerytest.ByText(" ▼ ")).Bounds().Center()
}

func TestNumberInput_ClampsInitialValue(t *testing.T) {
	n := widgets.NewNumberInput(inputID, 42, numeric.Inclusive(0, 10))
	assert.Equal(t, 10, n.Value())

	tester := pumpNumber(t, n)
	assert.Equal(t, "10", fieldOf(tester).Text())
}

func TestNumberInput_ArrowKeysPublishEachChange(t *testing.T) {
	n := widgets.NewNumberInput(inputID, 2, numeric.Inclusive(0, 5))
	tester := pumpNumber(t, n)

	for range 4 {
		assert.Equal(t, input.Captured, tester.PressKey(input.KeyArrowUp))
	}

	assert.Equal(t, []int{3, 4, 5}, changes(tester))
	assert.Equal(t, 5, n.Value())
	assert.Equal(t, "5", fieldOf(tester).Text())

	tester.PressKey(input.KeyArrowDown)
	assert.Equal(t, []int{4}, changes(tester))
}

func TestNumberInput_StepClampsAtBounds(t *testing.T) {
	n := widgets.NewNumberInput(inputID, 8, numeric.Inclusive(0, 10)).WithStep(4)
	tester := pumpNumber(t, n)

	tester.PressKey(input.KeyArrowUp)
	tester.PressKey(input.KeyArrowUp)
	assert.Equal(t, []int{10}, changes(tester))

	tester.PressKey(input.KeyArrowDown)
	tester.PressKey(input.KeyArrowDown)
	tester.PressKey(input.KeyArrowDown)
	tester.PressKey(input.KeyArrowDown)
	assert.Equal(t, []int{6, 2, 0}, changes(tester))
	assert.Equal(t, 0, n.Value())
}

func TestNumberInput_ButtonsStepValue(t *testing.T) {
	n := widgets.NewNumberInput(inputID, 5, numeric.Inclusive(0, 10))
	tester := gallerytest.NewWidgetTester()
	tester.PumpWidget(n)

	assert.Equal(t, input.Captured, tester.TapAt(increaseButton(tester)))
	assert.Equal(t, input.Captured, tester.TapAt(increaseButton(tester)))
	assert.Equal(t, input.Captured, tester.TapAt(decreaseButton(tester)))
	assert.Equal(t, []int{6, 7, 6}, changes(tester))
	assert.False(t, tester.Engine().Focused(), "buttons do not focus the field")
}

func TestNumberInput_ButtonsDisabledAtBounds(t *testing.T) {
	n := widgets.NewNumberInput(inputID, 5, numeric.Inclusive(0, 5))
	tester := gallerytest.NewWidgetTester()
	tester.PumpWidget(n)

	assert.True(t, n.Domain().IncreaseDisabled(n.Value()))
	assert.False(t, n.Domain().DecreaseDisabled(n.Value()))

	tester.MoveTo(increaseButton(tester))
	assert.NotEqual(t, input.InteractionPointer, tester.Engine().MouseInteraction())
	tester.TapAt(increaseButton(tester))
	assert.Empty(t, changes(tester))

	tester.MoveTo(decreaseButton(tester))
	assert.Equal(t, input.InteractionPointer, tester.Engine().MouseInteraction())
}

func TestNumberInput_WheelSteps(t *testing.T) {
	n := widgets.NewNumberInput(inputID, 5, numeric.Inclusive(0, 10))
	tester := gallerytest.NewWidgetTester()
	tester.PumpWidget(n)
	center := tester.Find(gallerytest.ByType[*widgets.NumberInput[int]]()).Bounds().Center()

	assert.Equal(t, input.Captured, tester.ScrollAt(center, 1))
	assert.Equal(t, input.Captured, tester.ScrollAt(center, -1))
	assert.Equal(t, input.Captured, tester.ScrollAt(center, -1))
	assert.Equal(t, []int{6, 5, 4}, changes(tester))

	assert.Equal(t, input.Ignored, tester.ScrollAt(graphics.Offset{X: 700, Y: 500}, 1))
	assert.Empty(t, changes(tester))
}

func TestNumberInput_IgnoreScroll(t *testing.T) {
	n := widgets.NewNumberInput(inputID, 5, numeric.Inclusive(0, 10)).IgnoreScroll()
	tester := gallerytest.NewWidgetTester()
	tester.PumpWidget(n)
	center := tester.Find(gallerytest.ByType[*widgets.NumberInput[int]]()).Bounds().Center()

	tester.ScrollAt(center, 1)
	assert.Empty(t, changes(tester))
	assert.Equal(t, 5, n.Value())
}

func TestNumberInput_InertRangeIgnoresEverything(t *testing.T) {
	n := widgets.NewNumberInput(inputID, 3, numeric.Inclusive(3, 3))
	tester := gallerytest.NewWidgetTester()
	tester.PumpWidget(n)
	tester.Engine().Focus(inputID)
	center := tester.Find(gallerytest.ByType[*widgets.NumberInput[int]]()).Bounds().Center()

	assert.Equal(t, input.Ignored, tester.PressKey(input.KeyArrowUp))
	assert.Equal(t, input.Ignored, tester.TypeText("7"))
	assert.Equal(t, input.Ignored, tester.ScrollAt(center, 1))
	assert.Equal(t, input.Ignored, tester.TapAt(increaseButton(tester)))
	assert.Equal(t, input.Ignored, tester.TapAt(center))

	assert.Empty(t, changes(tester))
	assert.Equal(t, 3, n.Value())
	assert.Equal(t, "3", fieldOf(tester).Text())
	assert.Equal(t, input.InteractionIdle, tester.Engine().MouseInteraction())
}

func TestNumberInput_TypingCommitsInRangeValues(t *testing.T) {
	n := widgets.NewNumberInput(inputID, 1, numeric.Inclusive(0, 100))
	tester := pumpNumber(t, n)

	assert.Equal(t, input.Captured, tester.TypeText("2"))
	assert.Equal(t, []int{12}, changes(tester))
	assert.Equal(t, "12", fieldOf(tester).Text())
}

func TestNumberInput_OutOfRangeTextIsHeldButNeverCommitted(t *testing.T) {
	n := widgets.NewNumberInput(inputID, 5, numeric.Inclusive(0, 10))
	tester := pumpNumber(t, n)

	assert.Equal(t, input.Captured, tester.TypeText("9"))
	assert.Equal(t, "59", fieldOf(tester).Text())
	assert.Empty(t, changes(tester))
	assert.Equal(t, 5, n.Value())

	tester.Engine().Unfocus()
	assert.Equal(t, "5", fieldOf(tester).Text(), "blur restores the committed value")
}

func TestNumberInput_RejectsLetters(t *testing.T) {
	n := widgets.NewNumberInput(inputID, 5, numeric.Inclusive(0, 10))
	tester := pumpNumber(t, n)

	assert.Equal(t, input.Ignored, tester.TypeText("x"))
	assert.Equal(t, "5", fieldOf(tester).Text())
	assert.Empty(t, changes(tester))
}

func TestNumberInput_BackspaceOnZeroIsIgnored(t *testing.T) {
	n := widgets.NewNumberInput(inputID, 0, numeric.Inclusive(0, 10))
	tester := pumpNumber(t, n)

	assert.Equal(t, input.Ignored, tester.PressKey(input.KeyBackspace))
	assert.Equal(t, "0", fieldOf(tester).Text())
	assert.Empty(t, changes(tester))
}

func TestNumberInput_BackspaceToEmptyBecomesZero(t *testing.T) {
	n := widgets.NewNumberInput(inputID, 7, numeric.Inclusive(0, 10))
	tester := pumpNumber(t, n)

	assert.Equal(t, input.Captured, tester.PressKey(input.KeyBackspace))
	assert.Equal(t, "0", fieldOf(tester).Text())
	assert.Equal(t, []int{0}, changes(tester))
}

func TestNumberInput_MinusAfterSelectAllDefers(t *testing.T) {
	n := widgets.NewNumberInput(inputID, 3, numeric.Inclusive(-10, 10))
	tester := pumpNumber(t, n)

	assert.Equal(t, input.Captured, tester.Shortcut(input.TextSelectAll))
	assert.Equal(t, "3", fieldOf(tester).Selected())

	assert.Equal(t, input.Captured, tester.TypeText("-"))
	assert.Equal(t, "-", fieldOf(tester).Text())
	assert.Empty(t, changes(tester))
	assert.Equal(t, 3, n.Value())

	tester.TypeText("4")
	assert.Equal(t, []int{-4}, changes(tester))
}

func TestNumberInput_MinusRejectedForUnsigned(t *testing.T) {
	n := widgets.NewNumberInput[uint8](inputID, 3, numeric.Inclusive[uint8](0, 10))
	tester := gallerytest.NewWidgetTester()
	tester.PumpWidget(n)
	tester.Engine().Focus(inputID)

	tester.Shortcut(input.TextSelectAll)
	assert.Equal(t, input.Ignored, tester.TypeText("-"))
	assert.Equal(t, "3", fieldOf(tester).Text())
}

func TestNumberInput_Paste(t *testing.T) {
	tests := []struct {
		name    string
		pasted  string
		status  input.Status
		text    string
		changes []int
	}{
		{name: "in range", pasted: "4", status: input.Captured, text: "4", changes: []int{4}},
		{name: "out of range", pasted: "42", status: input.Captured, text: "42"},
		{name: "trimmed", pasted: " 8\n", status: input.Captured, text: "8", changes: []int{8}},
		{name: "not a number", pasted: "abc", status: input.Ignored, text: "6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := widgets.NewNumberInput(inputID, 6, numeric.Inclusive(0, 10))
			tester := pumpNumber(t, n)
			tester.Clipboard().Write(input.ClipboardStandard, tt.pasted)

			tester.Shortcut(input.TextSelectAll)
			assert.Equal(t, tt.status, tester.Shortcut(input.TextPaste))
			assert.Equal(t, tt.text, fieldOf(tester).Text())
			assert.Equal(t, tt.changes, changes(tester))
		})
	}
}

func TestNumberInput_ValueNeverLeavesRange(t *testing.T) {
	n := widgets.NewNumberInput(inputID, 0, numeric.Inclusive(-3, 3))
	tester := pumpNumber(t, n)

	keys := []input.Key{
		input.KeyArrowUp, input.KeyArrowUp, input.KeyArrowUp, input.KeyArrowUp,
		input.KeyArrowDown, input.KeyBackspace, input.KeyArrowDown, input.KeyArrowDown,
		input.KeyArrowDown, input.KeyArrowDown, input.KeyArrowDown, input.KeyDelete,
	}
	for _, key := range keys {
		tester.PressKey(key)
		assert.True(t, numeric.Inclusive(-3, 3).Contains(n.Value()), "value %d escaped", n.Value())
	}
	for _, text := range []string{"9", "-", "5", "1", "0"} {
		tester.TypeText(text)
		assert.True(t, numeric.Inclusive(-3, 3).Contains(n.Value()), "value %d escaped", n.Value())
	}
	for _, v := range changes(tester) {
		assert.True(t, numeric.Inclusive(-3, 3).Contains(v), "published %d", v)
	}
}

func TestNumberInput_KeysIgnoredWithoutFocus(t *testing.T) {
	n := widgets.NewNumberInput(inputID, 2, numeric.Inclusive(0, 5))
	tester := gallerytest.NewWidgetTester()
	tester.PumpWidget(n)

	assert.Equal(t, input.Ignored, tester.PressKey(input.KeyArrowUp))
	assert.Equal(t, input.Ignored, tester.TypeText("3"))
	assert.Empty(t, changes(tester))
}

func TestNumberInput_ClickFocusesField(t *testing.T) {
	n := widgets.NewNumberInput(inputID, 2, numeric.Inclusive(0, 5))
	tester := gallerytest.NewWidgetTester()
	tester.PumpWidget(n)
	field := tester.Find(gallerytest.ByType[widgets.TextInput]()).Bounds()

	assert.Equal(t, input.Captured, tester.TapAt(graphics.Offset{X: field.Left + 4, Y: field.Center().Y}))
	assert.True(t, fieldOf(tester).IsFocused())

	tester.TapAt(graphics.Offset{X: 700, Y: 500})
	assert.False(t, fieldOf(tester).IsFocused())
}

func TestNumberInput_EnterPublishesSubmit(t *testing.T) {
	type submitted struct{}
	n := widgets.NewNumberInput(inputID, 2, numeric.Inclusive(0, 5)).OnSubmit(submitted{})
	tester := pumpNumber(t, n)

	assert.Equal(t, input.Captured, tester.PressKey(input.KeyEnter))
	assert.Equal(t, []any{submitted{}}, tester.TakeMessages())
}

func TestNumberInput_RebuildFollowsApplicationValue(t *testing.T) {
	tester := pumpNumber(t, widgets.NewNumberInput(inputID, 2, numeric.Inclusive(0, 5)))

	tester.PumpWidget(widgets.NewNumberInput(inputID, 4, numeric.Inclusive(0, 5)))
	assert.Equal(t, "4", fieldOf(tester).Text())
	assert.True(t, fieldOf(tester).IsFocused(), "focus survives the rebuild")
}

func TestNumberInput_TightPaddingUsesPlusMinus(t *testing.T) {
	n := widgets.NewNumberInput(inputID, 2, numeric.Inclusive(0, 5)).
		WithPadding(layout.EdgeInsets{Left: 5, Right: 2, Top: 5, Bottom: 5})
	tester := gallerytest.NewWidgetTester()
	tester.PumpWidget(n)

	plus := tester.Find(gallerytest.ByText(" + "))
	minus := tester.Find(gallerytest.ByText(" - "))
	require.True(t, plus.Exists())
	require.True(t, minus.Exists())
	assert.Less(t, plus.Bounds().Left, minus.Bounds().Left)
	assert.False(t, tester.Find(gallerytest.ByText(" ▲ ")).Exists())

	tester.TapAt(plus.Bounds().Center())
	assert.Equal(t, []int{3}, changes(tester))
}

func TestNumberInput_IgnoreButtonsKeepsKeyboard(t *testing.T) {
	n := widgets.NewNumberInput(inputID, 2, numeric.Inclusive(0, 5)).IgnoreButtons()
	tester := pumpNumber(t, n)

	tester.TapAt(increaseButton(tester))
	tester.Engine().Focus(inputID)
	tester.PressKey(input.KeyArrowUp)
	assert.Equal(t, []int{3}, changes(tester))
}

func TestNumberInput_Floats(t *testing.T) {
	n := widgets.NewNumberInput(inputID, 0.5, numeric.Inclusive(0.0, 2.0)).WithStep(0.25)
	tester := gallerytest.NewWidgetTester()
	tester.PumpWidget(n)
	tester.Engine().Focus(inputID)

	tester.PressKey(input.KeyArrowUp)
	tester.PressKey(input.KeyArrowUp)
	var values []float64
	for _, msg := range tester.TakeMessages() {
		values = append(values, msg.(widgets.NumberChanged[float64]).Value)
	}
	assert.Equal(t, []float64{0.75, 1}, values)
	assert.Equal(t, "1", core.StateOf[widgets.TextInputState](tester.Engine().Tree().Child(0)).Text())
}

func TestNumberInput_DrawsField(t *testing.T) {
	n := widgets.NewNumberInput(inputID, 7, numeric.Inclusive(0, 10))
	tester := gallerytest.NewWidgetTester()
	tester.PumpWidget(n)

	ops := gallerytest.SerializeDisplayList(tester.Paint())
	var texts []string
	for _, op := range gallerytest.FilterOps(ops, "drawText") {
		texts = append(texts, op.Params["text"].(string))
	}
	assert.Contains(t, texts, "7")
}

func modifiersOf(tester *gallerytest.WidgetTester) widgets.ModifierState {
	return *core.StateOf[widgets.ModifierState](tester.Engine().Tree())
}

func opColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

func drawnTexts(ops []gallerytest.DisplayOp) string {
	var texts []string
	for _, op := range gallerytest.FilterOps(ops, "drawText") {
		texts = append(texts, op.Params["text"].(string))
	}
	return strings.Join(texts, "|")
}

func quadsColored(ops []gallerytest.DisplayOp, c graphics.Color) int {
	count := 0
	for _, op := range gallerytest.FilterOps(ops, "drawRRect") {
		if op.Params["color"] == opColor(c) {
			count++
		}
	}
	return count
}

// statusLog records the statuses the step buttons resolve.
type statusLog struct {
	style.Catalog
	statuses []style.Status
}

func (c *statusLog) NumberInput(class style.Class, status style.Status) style.NumberInputStyle {
	c.statuses = append(c.statuses, status)
	return c.Catalog.NumberInput(class, status)
}

func TestNumberInput_ReleaseOverButtonEndsTextDrag(t *testing.T) {
	tests := []struct {
		name  string
		input *widgets.NumberInput[int]
	}{
		{"buttons", widgets.NewNumberInput(inputID, 12, numeric.Inclusive(0, 99))},
		{"ignored buttons", widgets.NewNumberInput(inputID, 12, numeric.Inclusive(0, 99)).IgnoreButtons()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := gallerytest.NewWidgetTester()
			tester.PumpWidget(tt.input.WithContentWidth(layout.Fixed(240)))
			field := tester.Find(gallerytest.ByType[widgets.TextInput]()).Bounds()

			assert.Equal(t, input.Captured, tester.PressAt(graphics.Offset{X: field.Left + 120, Y: field.Center().Y}))
			tester.ReleaseAt(increaseButton(tester))
			before := fieldOf(tester).Cursor()
			assert.Equal(t, 2, before.Caret)

			tester.MoveTo(graphics.Offset{X: field.Left + 1, Y: field.Center().Y})
			assert.Equal(t, before, fieldOf(tester).Cursor(), "caret follows the pointer after release")
			assert.Empty(t, changes(tester))
		})
	}
}

func TestNumberInput_InertInputTakesNoFocus(t *testing.T) {
	other := widgets.TextInputOf("Other", "x")
	other.ID = "other"
	tester := gallerytest.NewWidgetTester()
	tester.PumpWidget(widgets.ColumnOf(8, widgets.NewNumberInput("inert", 3, numeric.Inclusive(3, 3)), other))
	tree := tester.Engine().Tree()
	inert := core.StateOf[widgets.TextInputState](tree.Child(0).Child(0))
	otherField := core.StateOf[widgets.TextInputState](tree.Child(1))

	tester.Engine().Focus("inert")
	assert.False(t, inert.IsFocused())
	assert.False(t, tester.Engine().Focused())

	assert.Equal(t, input.Captured, tester.PressKey(input.KeyTab))
	assert.True(t, otherField.IsFocused())
	tester.PressKey(input.KeyTab)
	assert.True(t, otherField.IsFocused())
	assert.False(t, inert.IsFocused())
}

func TestNumberInput_BecomingInertDropsFocus(t *testing.T) {
	tester := pumpNumber(t, widgets.NewNumberInput(inputID, 3, numeric.Inclusive(0, 5)))

	tester.PumpWidget(widgets.NewNumberInput(inputID, 3, numeric.Inclusive(3, 3)))
	require.True(t, fieldOf(tester).IsFocused())

	tester.TapAt(graphics.Offset{X: 700, Y: 500})
	assert.False(t, fieldOf(tester).IsFocused())
	assert.False(t, tester.Engine().Focused())
}

func TestNumberInput_PressFlagsFollowButtons(t *testing.T) {
	n := widgets.NewNumberInput(inputID, 5, numeric.Inclusive(0, 10))
	tester := gallerytest.NewWidgetTester()
	tester.PumpWidget(n)

	tester.PressAt(increaseButton(tester))
	assert.Equal(t, widgets.ModifierState{IncreasePressed: true}, modifiersOf(tester))
	tester.ReleaseAt(increaseButton(tester))
	assert.Equal(t, widgets.ModifierState{}, modifiersOf(tester))

	tester.PressAt(decreaseButton(tester))
	assert.Equal(t, widgets.ModifierState{DecreasePressed: true}, modifiersOf(tester))
	tester.ReleaseAt(graphics.Offset{X: 700, Y: 500})
	assert.Equal(t, widgets.ModifierState{}, modifiersOf(tester), "release elsewhere clears the flags")

	assert.Equal(t, []int{6, 5}, changes(tester))
}

func TestNumberInput_ButtonStatusFromCatalog(t *testing.T) {
	catalog := &statusLog{Catalog: theme.DefaultLightTheme()}
	tester := gallerytest.NewWidgetTester()
	tester.Env().Catalog = catalog
	tester.PumpWidget(widgets.NewNumberInput(inputID, 10, numeric.Inclusive(0, 10)))

	tester.Paint()
	assert.Equal(t, []style.Status{style.StatusActive, style.StatusDisabled}, catalog.statuses)

	catalog.statuses = nil
	tester.PressAt(decreaseButton(tester))
	ops := gallerytest.SerializeDisplayList(tester.Paint())
	assert.Equal(t, []style.Status{style.StatusPressed, style.StatusActive}, catalog.statuses)

	pressed := theme.DefaultLightTheme().NumberInput(style.ClassDefault, style.StatusPressed)
	require.NotNil(t, pressed.ButtonBackground)
	assert.Equal(t, 1, quadsColored(ops, *pressed.ButtonBackground))
}

func TestNumberInput_DrawsStepButtons(t *testing.T) {
	tester := gallerytest.NewWidgetTester()
	tester.PumpWidget(widgets.NewNumberInput(inputID, 7, numeric.Inclusive(0, 10)))
	withButtons := gallerytest.SerializeDisplayList(tester.Paint())

	tester = gallerytest.NewWidgetTester()
	tester.PumpWidget(widgets.NewNumberInput(inputID, 7, numeric.Inclusive(0, 10)).IgnoreButtons())
	without := gallerytest.SerializeDisplayList(tester.Paint())

	assert.Contains(t, drawnTexts(withButtons), "▲")
	assert.Contains(t, drawnTexts(withButtons), "▼")
	assert.NotContains(t, drawnTexts(without), "▲")
	assert.NotContains(t, drawnTexts(without), "▼")
	assert.Len(t, gallerytest.FilterOps(without, "drawRRect"), len(gallerytest.FilterOps(withButtons, "drawRRect"))-2)
}

func TestNumberInput_QuadSkippedOutsideViewport(t *testing.T) {
	marker := graphics.RGB(1, 2, 3)
	n := widgets.NewNumberInput(inputID, 7, numeric.Inclusive(0, 10)).
		WithStyle(func(c style.Catalog, status style.Status) style.NumberInputStyle {
			return style.NumberInputStyle{ButtonBackground: style.ColorPtr(marker), IconColor: graphics.ColorBlack}
		})
	tester := gallerytest.NewWidgetTester()
	tester.PumpWidget(n)
	assert.Equal(t, 2, quadsColored(gallerytest.SerializeDisplayList(tester.Paint()), marker))

	field := tester.Find(gallerytest.ByType[widgets.TextInput]()).Bounds()
	viewport := graphics.Rect{Left: field.Left, Top: field.Top, Right: field.Left + 10, Bottom: field.Bottom}
	recorder := &graphics.PictureRecorder{}
	ctx := &core.PaintContext{Env: tester.Env(), Canvas: recorder.BeginRecording(tester.Engine().Size())}
	n.Draw(tester.Engine().Tree(), ctx, layout.NewRegion(tester.Engine().Layout()), input.Cursor{}, viewport)
	ops := gallerytest.SerializeDisplayList(recorder.EndRecording())

	assert.Zero(t, quadsColored(ops, marker))
	assert.Contains(t, drawnTexts(ops), "▲")
	assert.Contains(t, drawnTexts(ops), "▼")
}
