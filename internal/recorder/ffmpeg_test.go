package recorder

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/brief-flow/internal/config"
	"github.com/nguyentantai21042004/brief-flow/internal/logger"
)

func newTestBackend(t *testing.T) *ffmpegBackend {
	t.Helper()
	cfg := config.RecordingConfig{InputFlag: "pulse", Device: "default", SampleRate: 16000}
	return NewFFmpegBackend(cfg, logger.NewWithWriter("error", os.Stderr)).(*ffmpegBackend)
}

func TestStopClosesStderrLog(t *testing.T) {
	b := newTestBackend(t)

	f, err := os.Create(filepath.Join(t.TempDir(), "capture.ffmpeg.log"))
	if err != nil {
		t.Fatal(err)
	}
	b.logFile = f

	if err := b.Stop(); err != nil {
		t.Fatal(err)
	}

	if b.logFile != nil {
		t.Error("log handle still held after Stop")
	}
	if _, err := f.Write([]byte("x")); !errors.Is(err, os.ErrClosed) {
		t.Errorf("write after Stop = %v, want closed file", err)
	}
}

func TestClassifyStartFailure(t *testing.T) {
	tests := []struct {
		name           string
		stderr         string
		wantPermission bool
	}{
		{"permission denied", "avfoundation: Permission denied", true},
		{"not authorized", "audio device is not authorized", true},
		{"generic failure", "Unknown input format: nope", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBackend(t)
			b.logPath = filepath.Join(t.TempDir(), "capture.ffmpeg.log")
			if err := os.WriteFile(b.logPath, []byte(tt.stderr), 0o644); err != nil {
				t.Fatal(err)
			}

			err := b.classifyStartFailure()
			if err == nil {
				t.Fatal("want error")
			}
			if errors.Is(err, ErrPermission) != tt.wantPermission {
				t.Errorf("error = %v, wantPermission = %v", err, tt.wantPermission)
			}
		})
	}
}
