package engine

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/input"
	"github.com/go-drift/fluent-gallery/pkg/numeric"
	"github.com/go-drift/fluent-gallery/pkg/style"
	"github.com/go-drift/fluent-gallery/pkg/theme"
	"github.com/go-drift/fluent-gallery/pkg/widgets"
)

func newTestEngine(t *testing.T) (*Engine, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	env := &core.Env{
		Fonts:      graphics.DefaultFontManager(),
		Typography: core.Typography{UIFamily: graphics.DefaultFamily},
		Catalog:    theme.DefaultLightTheme(),
	}
	e := New(env, input.NewMemoryClipboard(), logrus.NewEntry(logger))
	e.Resize(graphics.Size{Width: 400, Height: 300})
	return e, hook
}

func twoFields() core.Widget {
	return widgets.ColumnOf(8,
		widgets.NewNumberInput("a", 1, numeric.Inclusive(0, 9)),
		widgets.NewNumberInput("b", 2, numeric.Inclusive(0, 9)),
	)
}

func TestEngine_NothingBuilt(t *testing.T) {
	e, _ := newTestEngine(t)

	assert.Nil(t, e.Layout())
	assert.Nil(t, e.Inspect())
	status, msgs := e.Dispatch(input.KeyPressed{Key: input.KeyTab})
	assert.Equal(t, input.Ignored, status)
	assert.Empty(t, msgs)
}

func TestEngine_DispatchReturnsMessages(t *testing.T) {
	e, hook := newTestEngine(t)
	e.Build(twoFields())
	e.Focus("b")

	status, msgs := e.Dispatch(input.KeyPressed{Key: input.KeyArrowUp})
	assert.Equal(t, input.Captured, status)
	assert.Equal(t, []any{widgets.NumberChanged[int]{Source: "b", Value: 3}}, msgs)
	assert.True(t, e.NeedsPaint())

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "engine", hook.LastEntry().Data["component"])
}

func TestEngine_TabCyclesFocus(t *testing.T) {
	e, _ := newTestEngine(t)
	e.Build(twoFields())
	focused := func() []bool {
		return []bool{
			core.StateOf[widgets.TextInputState](e.Tree().Child(0).Child(0)).IsFocused(),
			core.StateOf[widgets.TextInputState](e.Tree().Child(1).Child(0)).IsFocused(),
		}
	}

	assert.False(t, e.Focused())
	e.Dispatch(input.KeyPressed{Key: input.KeyTab})
	assert.Equal(t, []bool{true, false}, focused())
	e.Dispatch(input.KeyPressed{Key: input.KeyTab})
	assert.Equal(t, []bool{false, true}, focused())
	e.Dispatch(input.KeyPressed{Key: input.KeyTab})
	assert.Equal(t, []bool{true, false}, focused())

	e.Dispatch(input.KeyPressed{Key: input.KeyTab, Modifiers: input.ModShift})
	assert.Equal(t, []bool{false, true}, focused())

	e.Unfocus()
	assert.False(t, e.Focused())
	e.FocusPrevious()
	assert.Equal(t, []bool{false, true}, focused())
}

func TestEngine_InspectAndHitTest(t *testing.T) {
	e, _ := newTestEngine(t)
	e.Build(widgets.ColumnOf(0, widgets.TextOf("title"), widgets.ButtonOf("Go", struct{}{})))

	root := e.Inspect()
	require.NotNil(t, root)
	assert.Equal(t, "widgets.Column", root.Widget)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "title", root.Children[0].Label)
	assert.Equal(t, "widgets.buttonState", root.Children[1].State)

	button := root.Children[1].Bounds
	center := graphics.Offset{
		X: float64(button.Left+button.Right) / 2,
		Y: float64(button.Top+button.Bottom) / 2,
	}
	assert.Equal(t, []string{"widgets.Column", "widgets.Button", "widgets.Text"}, e.HitTest(center))
	assert.Empty(t, e.HitTest(graphics.Offset{X: 390, Y: 290}))
}

func TestEngine_MouseInteraction(t *testing.T) {
	e, _ := newTestEngine(t)
	e.Build(widgets.ButtonOf("Go", struct{}{}))

	assert.Equal(t, input.InteractionIdle, e.MouseInteraction())
	e.Dispatch(input.CursorMoved{Position: graphics.Offset{X: 5, Y: 5}})
	assert.Equal(t, input.InteractionPointer, e.MouseInteraction())
	e.Dispatch(input.CursorLeft{})
	assert.Equal(t, input.InteractionIdle, e.MouseInteraction())
}

func TestEngine_BuildKeepsState(t *testing.T) {
	e, _ := newTestEngine(t)
	e.Build(twoFields())
	e.Focus("a")

	e.Build(twoFields())
	assert.True(t, core.StateOf[widgets.TextInputState](e.Tree().Child(0).Child(0)).IsFocused())
}

func TestEngine_PaintClearsWithBackground(t *testing.T) {
	e, _ := newTestEngine(t)
	e.Build(widgets.TextOf("hi"))

	recorder := &graphics.PictureRecorder{}
	canvas := recorder.BeginRecording(e.Size())
	e.Paint(canvas)
	list := recorder.EndRecording()

	assert.Greater(t, list.Len(), 1)
	assert.False(t, e.NeedsPaint())
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, `string:"a"`, KeyString("a"))
	assert.Equal(t, "int:7", KeyString(7))
}

type tally struct {
	values []int
	theme  *theme.ThemeData
}

func (p *tally) Update(msg any) {
	if changed, ok := msg.(widgets.NumberChanged[int]); ok {
		p.values = append(p.values, changed.Value)
	}
}

func (p *tally) View() core.Widget {
	value := 0
	if n := len(p.values); n > 0 {
		value = p.values[n-1]
	}
	return widgets.NewNumberInput("n", value, numeric.Inclusive(0, 2))
}

func (p *tally) Theme() style.Catalog {
	return p.theme
}

func TestRuntime_RebuildsAfterMessages(t *testing.T) {
	logger, _ := test.NewNullLogger()
	program := &tally{theme: theme.DefaultDarkTheme()}
	env := &core.Env{
		Fonts:      graphics.DefaultFontManager(),
		Typography: core.Typography{UIFamily: graphics.DefaultFamily},
	}
	r := NewRuntime(program, env, nil, logrus.NewEntry(logger))
	r.Resize(graphics.Size{Width: 200, Height: 100})

	assert.Same(t, program.theme, env.Catalog)

	r.Engine().Focus("n")
	for range 3 {
		r.Dispatch(input.KeyPressed{Key: input.KeyArrowUp})
	}
	assert.Equal(t, []int{1, 2}, program.values)

	n := r.Engine().Root().(*widgets.NumberInput[int])
	assert.Equal(t, 2, n.Value())
}

func TestRuntime_RecordsPaintTimings(t *testing.T) {
	logger, _ := test.NewNullLogger()
	program := &tally{theme: theme.DefaultLightTheme()}
	env := &core.Env{
		Fonts:      graphics.DefaultFontManager(),
		Typography: core.Typography{UIFamily: graphics.DefaultFamily},
	}
	r := NewRuntime(program, env, nil, logrus.NewEntry(logger))
	r.Resize(graphics.Size{Width: 200, Height: 100})

	r.Paint(graphics.NewImageCanvas(200, 100))
	r.Paint(graphics.NewImageCanvas(200, 100))

	assert.Equal(t, 2, r.Timings().Summary().Paints)
	assert.Len(t, r.Timings().Samples(), 2)
}
