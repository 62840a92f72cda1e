package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/go-drift/fluent-gallery/pkg/graphics"
)

// DebugServer serves the most recently published view over HTTP for
// inspection while the gallery runs.
//
// The engine is only touched on the UI thread, so the UI thread publishes
// snapshots and the handlers read the latest one.
//
//	GET /health        {"status":"ok"}
//	GET /tree          the TreeNode of the last published frame
//	GET /hit?x=&y=     widget types under a point
//	GET /timings       paint duration summary
type DebugServer struct {
	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
	tree     *TreeNode
	timings  *PaintTimings
	log      *logrus.Entry
}

// NewDebugServer creates a stopped server.
func NewDebugServer(log *logrus.Entry) *DebugServer {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &DebugServer{log: log.WithField("component", "debug-server")}
}

// Start listens on addr and serves in the background. It returns the bound
// port, which is useful when addr requests an ephemeral port.
func (s *DebugServer) Start(addr string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		return s.listener.Addr().(*net.TCPAddr).Port, nil
	}

	// Bind first to fail fast on port conflicts.
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return 0, fmt.Errorf("debug server listen: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/tree", s.handleTree)
	mux.HandleFunc("/hit", s.handleHit)
	mux.HandleFunc("/timings", s.handleTimings)

	server := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	s.server = server
	s.listener = listener

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.mu.Lock()
			s.server = nil
			s.listener = nil
			s.mu.Unlock()
			s.log.WithError(err).Error("debug server stopped")
		}
	}()

	port := listener.Addr().(*net.TCPAddr).Port
	s.log.WithField("port", port).Info("debug server listening")
	return port, nil
}

// Stop gracefully shuts down the server.
func (s *DebugServer) Stop() {
	s.mu.Lock()
	server := s.server
	s.server = nil
	s.listener = nil
	s.mu.Unlock()

	if server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		s.log.WithError(err).Warn("debug server shutdown")
	}
}

// Publish replaces the snapshot served by /tree and /hit.
func (s *DebugServer) Publish(tree *TreeNode) {
	s.mu.Lock()
	s.tree = tree
	s.mu.Unlock()
}

// SetTimings selects the paint timings served by /timings.
func (s *DebugServer) SetTimings(timings *PaintTimings) {
	s.mu.Lock()
	s.timings = timings
	s.mu.Unlock()
}

func (s *DebugServer) snapshot() *TreeNode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree
}

func (s *DebugServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *DebugServer) handleTree(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	tree := s.snapshot()
	if tree == nil {
		http.Error(w, "no view published", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, tree)
}

func (s *DebugServer) handleHit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	x, errX := strconv.ParseFloat(r.URL.Query().Get("x"), 64)
	y, errY := strconv.ParseFloat(r.URL.Query().Get("y"), 64)
	if errX != nil || errY != nil {
		http.Error(w, "x and y must be numbers", http.StatusBadRequest)
		return
	}
	tree := s.snapshot()
	if tree == nil {
		http.Error(w, "no view published", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, struct {
		Path []string `json:"path"`
	}{Path: hitPath(tree, graphics.Offset{X: x, Y: y})})
}

func (s *DebugServer) handleTimings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.mu.Lock()
	timings := s.timings
	s.mu.Unlock()
	if timings == nil {
		http.Error(w, "no timings attached", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, timings.Summary())
}

func writeJSON(w http.ResponseWriter, v any) {
	// Encode to buffer first so we can catch errors
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		http.Error(w, fmt.Sprintf("json encode error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
