package recorder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/nguyentantai21042004/brief-flow/internal/logger"
)

const (
	// MaxDuration is the hard recording cap; reaching it stops the capture
	// automatically and notifies the caller.
	MaxDuration = 2 * time.Hour

	// TickInterval is the cadence of elapsed-time callbacks.
	TickInterval = time.Second
)

// Recorder drives a capture Backend through the recording state machine
// and owns the elapsed-time ticker.
type Recorder struct {
	mu        sync.Mutex
	backend   Backend
	logger    logger.Logger
	outputDir string

	sess     *session
	path     string
	stopTick chan struct{}

	// Injected time source and limits, overridable in tests the way the
	// session's clock is.
	now          func() time.Time
	tickInterval time.Duration
	maxDuration  time.Duration

	// OnTick receives the elapsed recording time (paused intervals
	// excluded) every TickInterval while recording.
	OnTick func(elapsed time.Duration)
	// OnAutoStop fires when the MaxDuration cap stops the recording.
	OnAutoStop func()
}

func New(backend Backend, outputDir string, log logger.Logger) *Recorder {
	return &Recorder{
		backend:      backend,
		logger:       log,
		outputDir:    outputDir,
		now:          time.Now,
		tickInterval: TickInterval,
		maxDuration:  MaxDuration,
	}
}

// Start begins a new recording into a timestamped file and returns its path.
func (r *Recorder) Start(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sess != nil && r.sess.state != StateStopped {
		return "", fmt.Errorf("a recording is already in progress")
	}

	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(r.outputDir, r.now().Format("recording-20060102-150405")+".wav")

	if err := r.backend.Start(ctx, path); err != nil {
		return "", err
	}

	r.sess = newSession(r.now)
	r.sess.start()
	r.path = path
	r.stopTick = make(chan struct{})
	go r.tickLoop(ctx, r.stopTick)

	r.logger.Info(ctx, "Recording started: %s", path)
	return path, nil
}

// Pause suspends the capture. A no-op unless currently recording.
func (r *Recorder) Pause(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sess == nil || !r.sess.pause() {
		return nil
	}
	if err := r.backend.Pause(); err != nil {
		r.sess.resume()
		return fmt.Errorf("pause capture: %w", err)
	}
	r.logger.Debug(ctx, "Recording paused")
	return nil
}

// Resume continues a paused capture. A no-op unless currently paused.
func (r *Recorder) Resume(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sess == nil || !r.sess.resume() {
		return nil
	}
	if err := r.backend.Resume(); err != nil {
		r.sess.pause()
		return fmt.Errorf("resume capture: %w", err)
	}
	r.logger.Debug(ctx, "Recording resumed")
	return nil
}

// Stop finalizes the capture and returns the recorded file path and the
// effective recorded duration. The backend is released unconditionally.
func (r *Recorder) Stop(ctx context.Context) (string, time.Duration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stopLocked(ctx)
}

// Elapsed returns the current recorded time, excluding paused intervals.
func (r *Recorder) Elapsed() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sess == nil {
		return 0
	}
	return r.sess.elapsed()
}

// State returns the current lifecycle state.
func (r *Recorder) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sess == nil {
		return StateIdle
	}
	return r.sess.state
}

func (r *Recorder) stopLocked(ctx context.Context) (string, time.Duration, error) {
	if r.sess == nil || !r.sess.stop() {
		return "", 0, fmt.Errorf("no recording in progress")
	}

	if r.stopTick != nil {
		close(r.stopTick)
		r.stopTick = nil
	}

	elapsed := r.sess.elapsed()
	err := r.backend.Stop()
	if err != nil {
		r.logger.Warn(ctx, "Capture stop reported: %v", err)
	}

	r.logger.Info(ctx, "Recording stopped after %s: %s", elapsed.Round(time.Second), r.path)
	return r.path, elapsed, err
}

// tickLoop drives OnTick and enforces the MaxDuration cap. The loop exits
// when the recording stops, so no repeating timer outlives the session.
func (r *Recorder) tickLoop(ctx context.Context, stop <-chan struct{}) {
	ticker := time.NewTicker(r.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.mu.Lock()
			if r.sess == nil || r.sess.state == StateStopped {
				r.mu.Unlock()
				return
			}
			elapsed := r.sess.elapsed()
			onTick := r.OnTick
			if elapsed >= r.maxDuration {
				onAutoStop := r.OnAutoStop
				_, _, _ = r.stopLocked(ctx)
				r.mu.Unlock()
				if onAutoStop != nil {
					onAutoStop()
				}
				return
			}
			r.mu.Unlock()
			if onTick != nil {
				onTick(elapsed)
			}
		}
	}
}
