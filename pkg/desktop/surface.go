package desktop

import (
	"image"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/go-drift/fluent-gallery/pkg/engine"
	"github.com/go-drift/fluent-gallery/pkg/errors"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/input"
)

// Surface is a fyne widget that paints a Runtime and feeds it input.
type Surface struct {
	widget.BaseWidget

	runtime *engine.Runtime
	raster  *canvas.Raster
	minSize fyne.Size
	log     *logrus.Entry

	// onFrame receives the inspected tree after every paint.
	onFrame func(*engine.TreeNode)
}

var (
	_ fyne.Widget        = (*Surface)(nil)
	_ fyne.Focusable     = (*Surface)(nil)
	_ fyne.Tabbable      = (*Surface)(nil)
	_ fyne.Scrollable    = (*Surface)(nil)
	_ fyne.Shortcutable  = (*Surface)(nil)
	_ desktop.Mouseable  = (*Surface)(nil)
	_ desktop.Hoverable  = (*Surface)(nil)
	_ desktop.Keyable    = (*Surface)(nil)
	_ desktop.Cursorable = (*Surface)(nil)
)

// NewSurface creates a surface for runtime.
func NewSurface(runtime *engine.Runtime, log *logrus.Entry) *Surface {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	s := &Surface{
		runtime: runtime,
		minSize: fyne.NewSize(1, 1),
		log:     log.WithField("component", "desktop"),
	}
	s.raster = canvas.NewRaster(s.draw)
	s.ExtendBaseWidget(s)
	return s
}

// SetMinSize sets the smallest size the window may shrink the surface to.
func (s *Surface) SetMinSize(size fyne.Size) {
	s.minSize = size
}

// OnFrame registers a callback that receives the inspected view after
// every paint.
func (s *Surface) OnFrame(fn func(*engine.TreeNode)) {
	s.onFrame = fn
}

func (s *Surface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.raster)
}

func (s *Surface) MinSize() fyne.Size {
	return s.minSize
}

// Resize forwards the logical size to the runtime.
func (s *Surface) Resize(size fyne.Size) {
	s.BaseWidget.Resize(size)
	s.runtime.Resize(graphics.Size{Width: float64(size.Width), Height: float64(size.Height)})
}

// draw paints at the logical size; fyne scales the raster to the device.
func (s *Surface) draw(int, int) image.Image {
	defer errors.Recover("desktop.paint")

	size := s.Size()
	w := int(math.Ceil(float64(size.Width)))
	h := int(math.Ceil(float64(size.Height)))
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	surface := graphics.NewImageCanvas(w, h)
	s.runtime.Paint(surface)
	if s.onFrame != nil {
		s.onFrame(s.runtime.Engine().Inspect())
	}
	return surface.Image()
}

// Deliver hands messages to the program and repaints. It must run on the
// UI goroutine.
func (s *Surface) Deliver(msgs ...any) {
	func() {
		defer errors.Recover("desktop.deliver")
		s.runtime.Deliver(msgs...)
	}()
	s.refresh()
}

func (s *Surface) dispatch(ev input.Event) input.Status {
	status := input.Ignored
	func() {
		defer errors.Recover("desktop.dispatch")
		status = s.runtime.Dispatch(ev)
	}()
	s.refresh()
	return status
}

func (s *Surface) refresh() {
	if s.runtime.Engine().NeedsPaint() {
		s.raster.Refresh()
	}
}

func (s *Surface) moveTo(p fyne.Position) {
	s.dispatch(input.CursorMoved{Position: translatePosition(p)})
}

func (s *Surface) modifiers() input.Modifiers {
	app := fyne.CurrentApp()
	if app == nil {
		return 0
	}
	if d, ok := app.Driver().(desktop.Driver); ok {
		return translateModifiers(d.CurrentKeyModifiers())
	}
	return 0
}

func (s *Surface) requestFocus() {
	app := fyne.CurrentApp()
	if app == nil {
		return
	}
	if c := app.Driver().CanvasForObject(s); c != nil && c.Focused() != s {
		c.Focus(s)
	}
}

// MouseIn implements desktop.Hoverable.
func (s *Surface) MouseIn(ev *desktop.MouseEvent) { s.moveTo(ev.Position) }

// MouseMoved implements desktop.Hoverable.
func (s *Surface) MouseMoved(ev *desktop.MouseEvent) { s.moveTo(ev.Position) }

// MouseOut implements desktop.Hoverable.
func (s *Surface) MouseOut() { s.dispatch(input.CursorLeft{}) }

// MouseDown implements desktop.Mouseable.
func (s *Surface) MouseDown(ev *desktop.MouseEvent) {
	s.requestFocus()
	button, ok := translateButton(ev.Button)
	if !ok {
		return
	}
	s.moveTo(ev.Position)
	s.dispatch(input.ButtonPressed{Button: button})
}

// MouseUp implements desktop.Mouseable.
func (s *Surface) MouseUp(ev *desktop.MouseEvent) {
	button, ok := translateButton(ev.Button)
	if !ok {
		return
	}
	s.moveTo(ev.Position)
	s.dispatch(input.ButtonReleased{Button: button})
}

// Scrolled implements fyne.Scrollable. Horizontal scrolling is dropped.
func (s *Surface) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY == 0 {
		return
	}
	s.moveTo(ev.Position)
	s.dispatch(input.WheelScrolled{Delta: graphics.Offset{X: float64(ev.Scrolled.DX), Y: float64(ev.Scrolled.DY)}})
}

// Cursor implements desktop.Cursorable.
func (s *Surface) Cursor() desktop.Cursor {
	return cursorFor(s.runtime.Engine().MouseInteraction())
}

// FocusGained implements fyne.Focusable.
func (s *Surface) FocusGained() {}

// FocusLost implements fyne.Focusable.
func (s *Surface) FocusLost() {}

// AcceptsTab keeps Tab inside the view so widgets can cycle focus.
func (s *Surface) AcceptsTab() bool { return true }

// TypedRune implements fyne.Focusable.
func (s *Surface) TypedRune(r rune) {
	s.dispatch(input.KeyPressed{Key: input.KeyCharacter, Text: string(r), Modifiers: s.modifiers()})
}

// TypedKey implements fyne.Focusable.
func (s *Surface) TypedKey(ev *fyne.KeyEvent) {
	key, ok := translateKey(ev.Name)
	if !ok {
		return
	}
	s.dispatch(input.KeyPressed{Key: key, Modifiers: s.modifiers()})
}

// KeyDown implements desktop.Keyable. Presses are delivered by TypedKey,
// which also repeats.
func (s *Surface) KeyDown(*fyne.KeyEvent) {}

// KeyUp implements desktop.Keyable.
func (s *Surface) KeyUp(ev *fyne.KeyEvent) {
	key, ok := translateKey(ev.Name)
	if !ok {
		return
	}
	s.dispatch(input.KeyReleased{Key: key, Modifiers: s.modifiers()})
}

// TypedShortcut implements fyne.Shortcutable.
func (s *Surface) TypedShortcut(shortcut fyne.Shortcut) {
	ev, ok := translateShortcut(shortcut)
	if !ok {
		s.log.WithField("shortcut", shortcut.ShortcutName()).Trace("unhandled shortcut")
		return
	}
	s.dispatch(ev)
}
