package engine

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/input"
	"github.com/go-drift/fluent-gallery/pkg/style"
)

// Program is an application driven by messages.
//
// View builds the whole widget tree from the program's state. Update
// receives every message widgets publish, in publish order. Theme supplies
// the style catalog for the next view.
type Program interface {
	Update(msg any)
	View() core.Widget
	Theme() style.Catalog
}

// Runtime connects a Program to an Engine: events go to the engine,
// published messages go to Update, and the view is rebuilt once per
// dispatch that produced messages.
type Runtime struct {
	program Program
	engine  *Engine
	timings *PaintTimings
	log     *logrus.Entry
}

// NewRuntime builds the program's first view.
func NewRuntime(program Program, env *core.Env, clipboard input.Clipboard, log *logrus.Entry) *Runtime {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	r := &Runtime{
		program: program,
		engine:  New(env, clipboard, log),
		timings: NewPaintTimings(0),
		log:     log.WithField("component", "runtime"),
	}
	r.Rebuild()
	return r
}

// Engine returns the underlying engine.
func (r *Runtime) Engine() *Engine {
	return r.engine
}

// Rebuild applies the program's theme and installs a fresh view.
func (r *Runtime) Rebuild() {
	if env := r.engine.Env(); env != nil {
		env.Catalog = r.program.Theme()
	}
	r.engine.Build(r.program.View())
}

// Dispatch delivers ev and feeds the published messages to the program.
func (r *Runtime) Dispatch(ev input.Event) input.Status {
	status, msgs := r.engine.Dispatch(ev)
	r.Deliver(msgs...)
	return status
}

// Deliver hands messages to the program and rebuilds the view once.
func (r *Runtime) Deliver(msgs ...any) {
	if len(msgs) == 0 {
		return
	}
	for _, msg := range msgs {
		r.log.WithField("message", fmt.Sprintf("%T", msg)).Debug("update")
		r.program.Update(msg)
	}
	r.Rebuild()
}

// Resize forwards to the engine.
func (r *Runtime) Resize(size graphics.Size) {
	r.engine.Resize(size)
}

// Paint forwards to the engine and records how long it took.
func (r *Runtime) Paint(canvas graphics.Canvas) {
	start := time.Now()
	r.engine.Paint(canvas)
	r.timings.Add(time.Since(start))
}

// Timings returns the durations of recent paints.
func (r *Runtime) Timings() *PaintTimings {
	return r.timings
}
