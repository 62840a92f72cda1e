package core

// Shell collects the messages widgets publish while handling events.
type Shell struct {
	messages    []any
	redraw      bool
	invalidated bool
}

// Publish queues msg for delivery to the program.
func (s *Shell) Publish(msg any) {
	if msg == nil {
		return
	}
	s.messages = append(s.messages, msg)
}

// Messages returns the queued messages in publish order.
func (s *Shell) Messages() []any {
	return s.messages
}

// Drain returns and clears the queued messages.
func (s *Shell) Drain() []any {
	msgs := s.messages
	s.messages = nil
	return msgs
}

// RequestRedraw asks for a repaint without a rebuild.
func (s *Shell) RequestRedraw() {
	s.redraw = true
}

// InvalidateLayout asks for a new layout pass.
func (s *Shell) InvalidateLayout() {
	s.invalidated = true
	s.redraw = true
}

// NeedsRedraw reports whether a repaint was requested.
func (s *Shell) NeedsRedraw() bool {
	return s.redraw || len(s.messages) > 0
}

// LayoutInvalidated reports whether a layout pass was requested.
func (s *Shell) LayoutInvalidated() bool {
	return s.invalidated
}

// Reset clears the redraw and layout flags.
func (s *Shell) Reset() {
	s.redraw = false
	s.invalidated = false
}
