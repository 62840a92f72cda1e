package errors

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// LogHandler is an ErrorHandler that writes through logrus.
type LogHandler struct {
	// Logger receives the entries. Nil uses the logrus standard logger.
	Logger *logrus.Logger
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

func (h *LogHandler) logger() *logrus.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return logrus.StandardLogger()
}

// HandleError logs a FluentError. Font errors are logged as warnings since
// the caller always has a fallback.
func (h *LogHandler) HandleError(err *FluentError) {
	if err == nil {
		return
	}
	entry := h.logger().WithFields(logrus.Fields{
		"op":   err.Op,
		"kind": err.Kind.String(),
	})
	if h.Verbose && err.StackTrace != "" {
		entry = entry.WithField("stack", err.StackTrace)
	}
	var layoutErr *LayoutError
	if errors.As(err.Err, &layoutErr) {
		entry = entry.WithField("widget", layoutErr.Widget)
	}
	if err.Kind == KindFont {
		entry.Warn(err.Err)
		return
	}
	entry.Error(err.Err)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	entry := h.logger().WithField("kind", KindPanic.String())
	if err.Op != "" {
		entry = entry.WithField("op", err.Op)
	}
	if h.Verbose && err.StackTrace != "" {
		entry = entry.WithField("stack", err.StackTrace)
	}
	entry.Errorf("recovered panic: %v", err.Value)
}
