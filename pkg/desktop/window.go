package desktop

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/engine"
)

// Options configures the window.
type Options struct {
	AppID   string
	Title   string
	Size    fyne.Size
	MinSize fyne.Size
	Log     *logrus.Entry

	// Debug, if set, receives the inspected view after every paint.
	Debug *engine.DebugServer
}

// Window is a fyne window showing one program.
type Window struct {
	app     fyne.App
	window  fyne.Window
	surface *Surface
	runtime *engine.Runtime
}

// NewWindow creates the fyne application and a window for program. The
// window is not shown until ShowAndRun.
func NewWindow(program engine.Program, env *core.Env, opts Options) *Window {
	log := opts.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	var a fyne.App
	if opts.AppID != "" {
		a = app.NewWithID(opts.AppID)
	} else {
		a = app.New()
	}
	return newWindow(a, program, env, opts, log)
}

func newWindow(a fyne.App, program engine.Program, env *core.Env, opts Options, log *logrus.Entry) *Window {
	runtime := engine.NewRuntime(program, env, NewClipboard(a.Clipboard()), log)
	surface := NewSurface(runtime, log)
	if opts.MinSize.Width > 0 && opts.MinSize.Height > 0 {
		surface.SetMinSize(opts.MinSize)
	}
	if opts.Debug != nil {
		surface.OnFrame(opts.Debug.Publish)
		opts.Debug.SetTimings(runtime.Timings())
	}

	w := a.NewWindow(opts.Title)
	w.SetPadded(false)
	w.SetContent(surface)
	if opts.Size.Width > 0 && opts.Size.Height > 0 {
		w.Resize(opts.Size)
	}

	return &Window{app: a, window: w, surface: surface, runtime: runtime}
}

// Runtime returns the runtime driving the window.
func (w *Window) Runtime() *engine.Runtime {
	return w.runtime
}

// Surface returns the widget the view is painted into.
func (w *Window) Surface() *Surface {
	return w.surface
}

// Deliver schedules msgs for the program on the UI goroutine. It is safe
// to call from any goroutine.
func (w *Window) Deliver(msgs ...any) {
	fyne.Do(func() {
		w.surface.Deliver(msgs...)
	})
}

// SetTitle schedules a title change on the UI goroutine.
func (w *Window) SetTitle(title string) {
	fyne.Do(func() {
		w.window.SetTitle(title)
	})
}

// ShowAndRun shows the window and runs the fyne event loop until the
// window closes.
func (w *Window) ShowAndRun() {
	w.window.Canvas().Focus(w.surface)
	w.window.ShowAndRun()
}

// Close closes the window, which ends ShowAndRun.
func (w *Window) Close() {
	fyne.Do(w.window.Close)
}
