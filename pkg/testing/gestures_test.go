package testing

import (
	"testing"

	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/input"
	"github.com/go-drift/fluent-gallery/pkg/numeric"
	"github.com/go-drift/fluent-gallery/pkg/widgets"
)

func TestTap_Counter(t *testing.T) {
	tester := NewWidgetTester()
	program := &counter{}
	tester.PumpProgram(program)

	for range 3 {
		if err := tester.Tap(ByType[widgets.Button]()); err != nil {
			t.Fatalf("Tap failed: %v", err)
		}
	}
	if !tester.Find(ByText("3")).Exists() {
		t.Error("expected count to be 3 after three taps")
	}
}

func TestTap_NoMatch(t *testing.T) {
	tester := NewWidgetTester()
	tester.PumpProgram(&counter{})

	if err := tester.Tap(ByText("nope")); err == nil {
		t.Error("expected an error for a finder without matches")
	}
}

func TestTapAt_Outside(t *testing.T) {
	tester := NewWidgetTester()
	program := &counter{}
	tester.PumpProgram(program)

	if status := tester.TapAt(graphics.Offset{X: 700, Y: 500}); status != input.Ignored {
		t.Errorf("expected Ignored, got %v", status)
	}
	if program.count != 0 {
		t.Errorf("expected no increment, got %d", program.count)
	}
}

func TestTypeTextAndKeys(t *testing.T) {
	tester := NewWidgetTester()
	tester.PumpWidget(widgets.NewNumberInput("n", 1, numeric.Inclusive(0, 50)))
	tester.Engine().Focus("n")

	tester.TypeText("2")
	tester.PressKey(input.KeyArrowUp)
	tester.Shortcut(input.TextSelectAll)
	tester.TypeText("7")

	var values []int
	for _, msg := range tester.TakeMessages() {
		values = append(values, msg.(widgets.NumberChanged[int]).Value)
	}
	want := []int{12, 13, 7}
	if len(values) != len(want) {
		t.Fatalf("expected %v, got %v", want, values)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("message %d: expected %d, got %d", i, want[i], values[i])
		}
	}
}

func TestScrollAt(t *testing.T) {
	tester := NewWidgetTester()
	tester.PumpWidget(widgets.NewNumberInput("n", 1, numeric.Inclusive(0, 50)))
	center := tester.Find(ByType[*widgets.NumberInput[int]]()).Bounds().Center()

	if status := tester.ScrollAt(center, -1); status != input.Captured {
		t.Errorf("expected Captured, got %v", status)
	}
	msgs := tester.TakeMessages()
	if len(msgs) != 1 || msgs[0].(widgets.NumberChanged[int]).Value != 0 {
		t.Errorf("expected one decrement to 0, got %v", msgs)
	}
}
