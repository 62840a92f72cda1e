package testing

import (
	"testing"

	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/input"
	"github.com/go-drift/fluent-gallery/pkg/layout"
	"github.com/go-drift/fluent-gallery/pkg/theme"
	"github.com/go-drift/fluent-gallery/pkg/widgets"
)

func TestNewWidgetTester_Defaults(t *testing.T) {
	tester := NewWidgetTester()

	if tester.size.Width != DefaultTestWidth || tester.size.Height != DefaultTestHeight {
		t.Errorf("expected default size %dx%d, got %vx%v", DefaultTestWidth, DefaultTestHeight, tester.size.Width, tester.size.Height)
	}
	if tester.Env().Catalog == nil {
		t.Fatal("expected a theme catalog")
	}
	if tester.Engine() != nil {
		t.Error("expected no engine before PumpWidget")
	}
}

func TestPumpWidget_MountsTree(t *testing.T) {
	tester := NewWidgetTester()
	tester.PumpWidget(widgets.TextOf("hello"))

	if tester.Engine() == nil || tester.Engine().Tree() == nil {
		t.Fatal("expected an engine and a state tree after PumpWidget")
	}
	if !tester.Find(ByText("hello")).Exists() {
		t.Error("expected to find the mounted text")
	}
}

func TestPumpWidget_KeepsEngine(t *testing.T) {
	tester := NewWidgetTester()
	tester.PumpWidget(widgets.TextOf("first"))
	first := tester.Engine()

	tester.PumpWidget(widgets.TextOf("second"))
	if tester.Engine() != first {
		t.Error("expected PumpWidget to rebuild the existing engine")
	}
	if !tester.Find(ByText("second")).Exists() {
		t.Error("expected the new view")
	}
}

func TestSetSize(t *testing.T) {
	tester := NewWidgetTester()
	tester.SetSize(graphics.Size{Width: 320, Height: 200})
	tester.PumpWidget(widgets.Container{Width: layout.Fill, Height: layout.Fill})

	bounds := tester.Find(ByType[widgets.Container]()).Bounds()
	if bounds.Width() != 320 || bounds.Height() != 200 {
		t.Errorf("expected 320x200, got %vx%v", bounds.Width(), bounds.Height())
	}

	tester.SetSize(graphics.Size{Width: 100, Height: 50})
	bounds = tester.Find(ByType[widgets.Container]()).Bounds()
	if bounds.Width() != 100 || bounds.Height() != 50 {
		t.Errorf("expected 100x50 after resize, got %vx%v", bounds.Width(), bounds.Height())
	}
}

func TestPumpProgram_DeliversMessages(t *testing.T) {
	tester := NewWidgetTester()
	program := &counter{}
	tester.PumpProgram(program)

	if err := tester.Tap(ByText("Increment")); err != nil {
		t.Fatal(err)
	}
	if program.count != 1 {
		t.Fatalf("expected count 1, got %d", program.count)
	}
	if !tester.Find(ByText("1")).Exists() {
		t.Error("expected the view to be rebuilt with the new count")
	}
	if got := len(tester.TakeMessages()); got != 1 {
		t.Errorf("expected 1 recorded message, got %d", got)
	}
	if got := len(tester.Messages()); got != 0 {
		t.Errorf("expected TakeMessages to clear, got %d", got)
	}
}

func TestDispatch_WithoutWidget(t *testing.T) {
	tester := NewWidgetTester()
	if status := tester.Dispatch(input.KeyPressed{Key: input.KeyEnter}); status != input.Ignored {
		t.Errorf("expected Ignored without a widget, got %v", status)
	}
	if tester.Find(ByText("x")).Exists() {
		t.Error("expected no matches without a widget")
	}
}

func TestSetTheme_ChangesBackground(t *testing.T) {
	tester := NewWidgetTester()
	tester.SetTheme(theme.DefaultDarkTheme())
	tester.PumpWidget(widgets.TextOf("dark"))

	ops := FilterOps(SerializeDisplayList(tester.Paint()), "clear")
	if len(ops) != 1 {
		t.Fatalf("expected one clear, got %d", len(ops))
	}
	if want := serializeColor(theme.DefaultDarkTheme().Background()); ops[0].Params["color"] != want {
		t.Errorf("expected background %s, got %v", want, ops[0].Params["color"])
	}
}
