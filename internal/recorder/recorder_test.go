package recorder

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nguyentantai21042004/brief-flow/internal/logger"
)

type fakeBackend struct {
	mu       sync.Mutex
	started  bool
	paused   int
	resumed  int
	stopped  int
	startErr error
}

func (f *fakeBackend) Start(ctx context.Context, outputPath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.startErr != nil {
		return f.startErr
	}
	f.started = true
	return nil
}

func (f *fakeBackend) Pause() error  { f.mu.Lock(); defer f.mu.Unlock(); f.paused++; return nil }
func (f *fakeBackend) Resume() error { f.mu.Lock(); defer f.mu.Unlock(); f.resumed++; return nil }
func (f *fakeBackend) Stop() error   { f.mu.Lock(); defer f.mu.Unlock(); f.stopped++; return nil }

func newTestRecorder(t *testing.T, backend Backend) *Recorder {
	t.Helper()
	return New(backend, t.TempDir(), logger.NewWithWriter("error", os.Stderr))
}

func TestStartStop(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{}
	r := newTestRecorder(t, backend)

	path, err := r.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(path, "recording-") || !strings.HasSuffix(path, ".wav") {
		t.Errorf("path = %q, want timestamped wav name", path)
	}
	if r.State() != StateRecording {
		t.Errorf("State() = %v, want recording", r.State())
	}

	gotPath, _, err := r.Stop(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if gotPath != path {
		t.Errorf("Stop path = %q, want %q", gotPath, path)
	}
	if backend.stopped != 1 {
		t.Errorf("backend.stopped = %d, want 1", backend.stopped)
	}
}

func TestStartWhileRecordingRejected(t *testing.T) {
	ctx := context.Background()
	r := newTestRecorder(t, &fakeBackend{})

	if _, err := r.Start(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Start(ctx); err == nil {
		t.Error("second Start() should fail")
	}
	r.Stop(ctx)
}

func TestStartPermissionErrorPropagates(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{startErr: ErrPermission}
	r := newTestRecorder(t, backend)

	_, err := r.Start(ctx)
	if !errors.Is(err, ErrPermission) {
		t.Errorf("error = %v, want ErrPermission", err)
	}
	if r.State() != StateIdle {
		t.Errorf("State() = %v, want idle after failed start", r.State())
	}
}

func TestPauseResumeDelegation(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{}
	r := newTestRecorder(t, backend)

	// No-ops before start.
	if err := r.Pause(ctx); err != nil {
		t.Fatal(err)
	}
	if backend.paused != 0 {
		t.Error("backend paused before start")
	}

	r.Start(ctx)
	if err := r.Pause(ctx); err != nil {
		t.Fatal(err)
	}
	if r.State() != StatePaused {
		t.Errorf("State() = %v, want paused", r.State())
	}

	// Double pause is a no-op, backend called once.
	r.Pause(ctx)
	if backend.paused != 1 {
		t.Errorf("backend.paused = %d, want 1", backend.paused)
	}

	r.Resume(ctx)
	if backend.resumed != 1 {
		t.Errorf("backend.resumed = %d, want 1", backend.resumed)
	}

	r.Stop(ctx)
}

func TestStopWithoutStart(t *testing.T) {
	r := newTestRecorder(t, &fakeBackend{})
	if _, _, err := r.Stop(context.Background()); err == nil {
		t.Error("Stop() without Start() should fail")
	}
}

func TestAutoStopAtMaxDuration(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{}
	clock := newFakeClock()

	r := newTestRecorder(t, backend)
	r.now = clock.now
	r.tickInterval = time.Millisecond
	r.maxDuration = 10 * time.Minute

	var autoStops atomic.Int32
	stopped := make(chan struct{})
	r.OnAutoStop = func() {
		if autoStops.Add(1) == 1 {
			close(stopped)
		}
	}

	if _, err := r.Start(ctx); err != nil {
		t.Fatal(err)
	}

	clock.advance(11 * time.Minute)

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("auto-stop never fired after crossing the cap")
	}

	if r.State() != StateStopped {
		t.Errorf("State() = %v, want stopped", r.State())
	}
	if backend.stopped != 1 {
		t.Errorf("backend.stopped = %d, want 1", backend.stopped)
	}

	// The ticker is gone: further time passing must not re-fire the notice.
	clock.advance(time.Hour)
	time.Sleep(20 * time.Millisecond)
	if got := autoStops.Load(); got != 1 {
		t.Errorf("OnAutoStop fired %d times, want 1", got)
	}
}
