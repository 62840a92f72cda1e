package testing

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/engine"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/input"
	"github.com/go-drift/fluent-gallery/pkg/theme"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
)

// WidgetTester provides isolated widget testing without a window.
// It drives the same build, layout, event, and paint phases as the desktop
// shell with a memory clipboard and a recording canvas.
//
// A tester runs either a bare widget (PumpWidget), collecting the messages
// it publishes, or a whole engine.Program (PumpProgram), which also feeds
// the messages to the program and rebuilds its view.
type WidgetTester struct {
	env       *core.Env
	clipboard *input.MemoryClipboard
	log       *logrus.Entry
	size      graphics.Size

	engine   *engine.Engine
	runtime  *engine.Runtime
	messages []any
}

// NewWidgetTester creates a tester with the bundled fonts and the light
// theme.
func NewWidgetTester() *WidgetTester {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &WidgetTester{
		env: &core.Env{
			Fonts:      graphics.DefaultFontManager(),
			Typography: core.Typography{UIFamily: graphics.DefaultFamily},
			Catalog:    theme.DefaultLightTheme(),
		},
		clipboard: input.NewMemoryClipboard(),
		log:       logrus.NewEntry(logger),
		size:      graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
	}
}

// SetSize sets the logical surface size.
func (t *WidgetTester) SetSize(size graphics.Size) {
	t.size = size
	if t.engine != nil {
		t.engine.Resize(size)
	}
}

// SetTheme replaces the theme used by bare widgets. Programs supply their
// own theme.
func (t *WidgetTester) SetTheme(td *theme.ThemeData) {
	t.env.Catalog = td
}

// Env returns the environment shared with the engine.
func (t *WidgetTester) Env() *core.Env {
	return t.env
}

// Clipboard returns the clipboard widgets read and write.
func (t *WidgetTester) Clipboard() *input.MemoryClipboard {
	return t.clipboard
}

// Engine returns the engine of the pumped widget or program.
func (t *WidgetTester) Engine() *engine.Engine {
	return t.engine
}

// PumpWidget mounts widget, or rebuilds the mounted tree with it, and lays
// it out. State survives where the new widget matches the old one.
func (t *WidgetTester) PumpWidget(widget core.Widget) {
	if t.engine == nil || t.runtime != nil {
		t.runtime = nil
		t.engine = engine.New(t.env, t.clipboard, t.log)
		t.engine.Resize(t.size)
	}
	t.engine.Build(widget)
	t.engine.Layout()
}

// PumpProgram mounts a program and builds its first view.
func (t *WidgetTester) PumpProgram(program engine.Program) {
	t.runtime = engine.NewRuntime(program, t.env, t.clipboard, t.log)
	t.engine = t.runtime.Engine()
	t.engine.Resize(t.size)
	t.engine.Layout()
}

// Dispatch delivers ev and returns the status. Published messages are
// recorded, and handed to the program when one is mounted.
func (t *WidgetTester) Dispatch(ev input.Event) input.Status {
	if t.engine == nil {
		return input.Ignored
	}
	status, msgs := t.engine.Dispatch(ev)
	t.messages = append(t.messages, msgs...)
	if t.runtime != nil {
		t.runtime.Deliver(msgs...)
	}
	return status
}

// Messages returns every message published since the last TakeMessages.
func (t *WidgetTester) Messages() []any {
	return t.messages
}

// TakeMessages returns the recorded messages and clears them.
func (t *WidgetTester) TakeMessages() []any {
	msgs := t.messages
	t.messages = nil
	return msgs
}

// Find evaluates finder against the current view.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	if t.engine == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{nodes: finder.Evaluate(t.engine.Inspect()), finder: finder}
}

// Paint records one frame and returns its display list.
func (t *WidgetTester) Paint() *graphics.DisplayList {
	recorder := &graphics.PictureRecorder{}
	canvas := recorder.BeginRecording(t.size)
	if t.engine != nil {
		t.engine.Paint(canvas)
	}
	return recorder.EndRecording()
}
