package config

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch resolves dir again whenever gallery.yaml or .env changes and passes
// the result to fn. Events that leave both files byte-identical are dropped.
// The watcher is installed before Watch returns and runs until ctx is done.
// fn is called from the watcher goroutine.
func Watch(ctx context.Context, dir string, fn func(*Resolved, error)) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	// Watch the directory: editors replace files instead of writing them.
	if err := watcher.Add(abs); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", abs, err)
	}

	last := contentHash(abs)
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !relevant(event) {
					continue
				}
				hash := contentHash(abs)
				if bytes.Equal(hash, last) {
					continue
				}
				last = hash
				fn(Resolve(abs))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fn(nil, fmt.Errorf("watch %s: %w", abs, err))
			}
		}
	}()
	return nil
}

func relevant(event fsnotify.Event) bool {
	switch filepath.Base(event.Name) {
	case FileName, ".env":
	default:
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)
}

func contentHash(dir string) []byte {
	h := sha256.New()
	for _, name := range []string{FileName, ".env"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			h.Write([]byte{0})
			continue
		}
		h.Write([]byte{1})
		h.Write(data)
	}
	return h.Sum(nil)
}
