package widgets_test

import (
	"testing"

	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/input"
	gallerytest "github.com/go-drift/fluent-gallery/pkg/testing"
	"github.com/go-drift/fluent-gallery/pkg/widgets"
)

type saved struct{}

func TestButton_TapPublishesMessage(t *testing.T) {
	tester := gallerytest.NewWidgetTester()
	tester.PumpWidget(widgets.ButtonOf("Save", saved{}))

	if err := tester.Tap(gallerytest.ByText("Save")); err != nil {
		t.Fatal(err)
	}
	msgs := tester.TakeMessages()
	if len(msgs) != 1 || msgs[0] != (saved{}) {
		t.Fatalf("expected one saved message, got %v", msgs)
	}
}

func TestButton_ReleaseOutsideCancels(t *testing.T) {
	tester := gallerytest.NewWidgetTester()
	tester.PumpWidget(widgets.ButtonOf("Save", saved{}))
	bounds := tester.Find(gallerytest.ByType[widgets.Button]()).Bounds()

	if status := tester.PressAt(bounds.Center()); status != input.Captured {
		t.Fatalf("expected press to be captured, got %v", status)
	}
	tester.ReleaseAt(graphics.Offset{X: bounds.Right + 50, Y: bounds.Bottom + 50})

	if msgs := tester.TakeMessages(); len(msgs) != 0 {
		t.Errorf("expected no messages, got %v", msgs)
	}
}

func TestButton_Disabled(t *testing.T) {
	tests := []struct {
		name   string
		button widgets.Button
	}{
		{name: "flag", button: widgets.ButtonOf("Save", saved{}).WithDisabled(true)},
		{name: "nil message", button: widgets.ButtonOf("Save", nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := gallerytest.NewWidgetTester()
			tester.PumpWidget(tt.button)
			center := tester.Find(gallerytest.ByType[widgets.Button]()).Bounds().Center()

			if status := tester.TapAt(center); status != input.Ignored {
				t.Errorf("expected disabled button to ignore the press, got %v", status)
			}
			if interaction := tester.Engine().MouseInteraction(); interaction != input.InteractionIdle {
				t.Errorf("expected idle interaction, got %v", interaction)
			}
			if msgs := tester.TakeMessages(); len(msgs) != 0 {
				t.Errorf("expected no messages, got %v", msgs)
			}
		})
	}
}

func TestButton_DefaultPadding(t *testing.T) {
	tester := gallerytest.NewWidgetTester()
	tester.PumpWidget(widgets.ButtonOf("Save", saved{}))

	button := tester.Find(gallerytest.ByType[widgets.Button]()).Bounds()
	label := tester.Find(gallerytest.ByType[widgets.Text]()).Bounds()

	if got := label.Left - button.Left; got != 12 {
		t.Errorf("expected horizontal padding 12, got %v", got)
	}
	if got := label.Top - button.Top; got != 6 {
		t.Errorf("expected vertical padding 6, got %v", got)
	}
}
