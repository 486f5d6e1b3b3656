package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/brief-flow/internal/logger"
)

type fakeFiles struct {
	states      []genai.FileState
	getCalls    int
	deleteCalls int
	deleteErr   error
	uploadErr   error
}

func (f *fakeFiles) upload(ctx context.Context, r io.Reader, mimeType string) (*genai.File, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	// Consume the reader the way the HTTP client would.
	if _, err := io.Copy(io.Discard, r); err != nil {
		return nil, err
	}
	return &genai.File{Name: "files/test", URI: "https://files/test", State: genai.FileStateProcessing}, nil
}

func (f *fakeFiles) get(ctx context.Context, name string) (*genai.File, error) {
	state := f.states[min(f.getCalls, len(f.states)-1)]
	f.getCalls++
	return &genai.File{Name: name, URI: "https://files/test", State: state}, nil
}

func (f *fakeFiles) delete(ctx context.Context, name string) error {
	f.deleteCalls++
	return f.deleteErr
}

func newTestUploader(files filesAPI, timeout time.Duration) *implUploader {
	return &implUploader{
		files:    files,
		logger:   logger.NewWithWriter("error", os.Stderr),
		interval: time.Millisecond,
		timeout:  timeout,
	}
}

func writeTestFile(t *testing.T, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "a.mp3")
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestUploadReportsProgress(t *testing.T) {
	u := newTestUploader(&fakeFiles{}, time.Second)
	path := writeTestFile(t, 1<<16)

	var lastSent, total int64
	h, err := u.Upload(context.Background(), path, "audio/mp3", func(sent, tot int64) {
		lastSent, total = sent, tot
	})
	if err != nil {
		t.Fatal(err)
	}
	if h.Name != "files/test" {
		t.Errorf("Name = %q", h.Name)
	}
	if lastSent != 1<<16 || total != 1<<16 {
		t.Errorf("progress = %d/%d, want %d/%d", lastSent, total, 1<<16, 1<<16)
	}
}

func TestUploadError(t *testing.T) {
	u := newTestUploader(&fakeFiles{uploadErr: fmt.Errorf("HTTP 503")}, time.Second)
	path := writeTestFile(t, 16)

	if _, err := u.Upload(context.Background(), path, "audio/mp3", nil); err == nil {
		t.Fatal("want error")
	}
}

func TestWaitActiveSucceeds(t *testing.T) {
	files := &fakeFiles{states: []genai.FileState{
		genai.FileStateProcessing,
		genai.FileStateProcessing,
		genai.FileStateActive,
	}}
	u := newTestUploader(files, time.Second)

	h := &Handle{Name: "files/test"}
	if err := u.WaitActive(context.Background(), h); err != nil {
		t.Fatal(err)
	}
	if files.getCalls != 3 {
		t.Errorf("getCalls = %d, want 3", files.getCalls)
	}
}

func TestWaitActiveFailsFast(t *testing.T) {
	files := &fakeFiles{states: []genai.FileState{genai.FileStateFailed}}
	u := newTestUploader(files, time.Second)

	err := u.WaitActive(context.Background(), &Handle{Name: "files/test"})
	if err == nil {
		t.Fatal("want error for FAILED state")
	}
	if errors.Is(err, ErrPollTimeout) {
		t.Error("FAILED state must not be reported as a timeout")
	}
	if files.getCalls != 1 {
		t.Errorf("getCalls = %d, want 1 (fail fast)", files.getCalls)
	}
}

func TestWaitActiveTimesOut(t *testing.T) {
	files := &fakeFiles{states: []genai.FileState{genai.FileStateProcessing}}
	u := newTestUploader(files, 10*time.Millisecond)

	err := u.WaitActive(context.Background(), &Handle{Name: "files/test"})
	if !errors.Is(err, ErrPollTimeout) {
		t.Fatalf("error = %v, want ErrPollTimeout", err)
	}
}

func TestCleanupSwallowsErrors(t *testing.T) {
	files := &fakeFiles{deleteErr: fmt.Errorf("HTTP 404")}
	u := newTestUploader(files, time.Second)

	// Must not panic or propagate.
	u.Cleanup(context.Background(), &Handle{Name: "files/test"})
	if files.deleteCalls != 1 {
		t.Errorf("deleteCalls = %d, want 1", files.deleteCalls)
	}

	// Nil and empty handles are no-ops.
	u.Cleanup(context.Background(), nil)
	u.Cleanup(context.Background(), &Handle{})
	if files.deleteCalls != 1 {
		t.Errorf("deleteCalls = %d, want still 1", files.deleteCalls)
	}
}
