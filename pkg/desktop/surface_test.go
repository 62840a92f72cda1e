package desktop

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	fynetest "fyne.io/fyne/v2/test"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/engine"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/numeric"
	"github.com/go-drift/fluent-gallery/pkg/style"
	"github.com/go-drift/fluent-gallery/pkg/theme"
	"github.com/go-drift/fluent-gallery/pkg/widgets"
)

type reset struct{}

type counter struct {
	values []int
}

func (p *counter) Update(msg any) {
	switch msg := msg.(type) {
	case widgets.NumberChanged[int]:
		p.values = append(p.values, msg.Value)
	case reset:
		p.values = append(p.values, 0)
	}
}

func (p *counter) View() core.Widget {
	value := 0
	if n := len(p.values); n > 0 {
		value = p.values[n-1]
	}
	return widgets.NewNumberInput("n", value, numeric.Inclusive(0, 10))
}

func (p *counter) Theme() style.Catalog {
	return theme.DefaultLightTheme()
}

func newTestWindow(t *testing.T, program *counter) *Window {
	t.Helper()
	logger, _ := test.NewNullLogger()
	env := &core.Env{
		Fonts:      graphics.DefaultFontManager(),
		Typography: core.Typography{UIFamily: graphics.DefaultFamily},
	}
	w := newWindow(fynetest.NewTempApp(t), program, env, Options{Title: "test"}, logrus.NewEntry(logger))
	w.Surface().Resize(fyne.NewSize(300, 120))
	return w
}

func TestSurface_KeyboardDrivesProgram(t *testing.T) {
	program := &counter{}
	w := newTestWindow(t, program)
	s := w.Surface()

	s.TypedKey(&fyne.KeyEvent{Name: fyne.KeyTab})
	if !w.Runtime().Engine().Focused() {
		t.Fatalf("tab should focus the number input")
	}
	s.TypedKey(&fyne.KeyEvent{Name: fyne.KeyUp})
	s.TypedKey(&fyne.KeyEvent{Name: fyne.KeyUp})
	s.TypedShortcut(&fyne.ShortcutSelectAll{})
	s.TypedRune('7')

	want := []int{1, 2, 7}
	if len(program.values) != len(want) {
		t.Fatalf("values = %v, want %v", program.values, want)
	}
	for i := range want {
		if program.values[i] != want[i] {
			t.Fatalf("values = %v, want %v", program.values, want)
		}
	}
}

func TestSurface_WheelOverInput(t *testing.T) {
	program := &counter{}
	w := newTestWindow(t, program)
	s := w.Surface()

	at := fyne.NewPos(20, 10)
	s.Scrolled(&fyne.ScrollEvent{PointEvent: fyne.PointEvent{Position: at}, Scrolled: fyne.NewDelta(0, 1)})
	s.Scrolled(&fyne.ScrollEvent{PointEvent: fyne.PointEvent{Position: at}, Scrolled: fyne.NewDelta(1, 0)})

	if len(program.values) != 1 || program.values[0] != 1 {
		t.Errorf("values = %v, want [1]", program.values)
	}
	if got := s.Cursor(); got != desktop.TextCursor {
		t.Errorf("cursor over the field = %v, want text cursor", got)
	}

	s.MouseOut()
	if got := s.Cursor(); got != desktop.DefaultCursor {
		t.Errorf("cursor after leaving = %v, want default", got)
	}
}

func TestSurface_DeliverRebuilds(t *testing.T) {
	program := &counter{values: []int{5}}
	w := newTestWindow(t, program)

	w.Surface().Deliver(reset{})

	n := w.Runtime().Engine().Root().(*widgets.NumberInput[int])
	if n.Value() != 0 {
		t.Errorf("value = %d, want 0", n.Value())
	}
}

func TestSurface_DrawPaintsBackground(t *testing.T) {
	program := &counter{}
	w := newTestWindow(t, program)

	var frames int
	w.Surface().OnFrame(func(*engine.TreeNode) { frames++ })
	img := w.Surface().draw(0, 0)

	bounds := img.Bounds()
	if bounds.Dx() != 300 || bounds.Dy() != 120 {
		t.Fatalf("image size = %v, want 300x120", bounds.Size())
	}
	got := color.NRGBAModel.Convert(img.At(bounds.Max.X-1, bounds.Max.Y-1)).(color.NRGBA)
	want := theme.DefaultLightTheme().Background().NRGBA()
	if got != want {
		t.Errorf("corner pixel = %v, want background %v", got, want)
	}
	if frames != 1 {
		t.Errorf("frames = %d, want 1", frames)
	}
}
