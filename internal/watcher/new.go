package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/brief-flow/internal/logger"
)

// settleDelay gives the writer a moment to finish before the file is read.
const settleDelay = 500 * time.Millisecond

// New creates a Watcher on inboxDir. Files are handled strictly one at a
// time: the pipeline allows a single in-flight job, so the watcher never
// dispatches concurrently.
func New(inboxDir string, handler EventHandler, log logger.Logger) (Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := w.Add(inboxDir); err != nil {
		w.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		inboxDir: inboxDir,
		handler:  handler,
		logger:   log,
		watcher:  w,
	}, nil
}
