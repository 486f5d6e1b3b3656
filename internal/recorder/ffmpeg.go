package recorder

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/nguyentantai21042004/brief-flow/internal/config"
	"github.com/nguyentantai21042004/brief-flow/internal/logger"
)

// ffmpegBackend captures the default input device with ffmpeg.
// Pause/resume are implemented with SIGSTOP/SIGCONT on the ffmpeg process,
// so the output file stays a single continuous capture.
type ffmpegBackend struct {
	cfg     config.RecordingConfig
	logger  logger.Logger
	cmd     *exec.Cmd
	logPath string
	logFile *os.File
}

// NewFFmpegBackend returns a Backend recording via the ffmpeg binary.
func NewFFmpegBackend(cfg config.RecordingConfig, log logger.Logger) Backend {
	return &ffmpegBackend{cfg: cfg, logger: log}
}

func (b *ffmpegBackend) Start(ctx context.Context, outputPath string) error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return fmt.Errorf("ffmpeg not found in PATH: %w", err)
	}

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-f", b.cfg.InputFlag,
		"-i", b.cfg.Device,
		"-ac", "1",
		"-ar", strconv.Itoa(b.cfg.SampleRate),
		"-y",
		outputPath,
	)

	// Keep ffmpeg's stderr for diagnostics and permission classification.
	b.logPath = outputPath + ".ffmpeg.log"
	if logFile, err := os.Create(b.logPath); err == nil {
		cmd.Stderr = logFile
		b.logFile = logFile
	}

	if err := cmd.Start(); err != nil {
		b.closeLog()
		return fmt.Errorf("start capture: %w", err)
	}
	b.cmd = cmd

	// Device-open failures make ffmpeg exit almost immediately. Give it a
	// moment and classify the failure instead of reporting success.
	time.Sleep(500 * time.Millisecond)
	if b.cmd.ProcessState != nil || !processAlive(cmd) {
		b.closeLog()
		err := b.classifyStartFailure()
		b.cmd = nil
		return err
	}

	return nil
}

func (b *ffmpegBackend) closeLog() {
	if b.logFile != nil {
		b.logFile.Close()
		b.logFile = nil
	}
}

func (b *ffmpegBackend) Pause() error {
	if b.cmd == nil || b.cmd.Process == nil {
		return fmt.Errorf("no capture in progress")
	}
	return b.cmd.Process.Signal(syscall.SIGSTOP)
}

func (b *ffmpegBackend) Resume() error {
	if b.cmd == nil || b.cmd.Process == nil {
		return fmt.Errorf("no capture in progress")
	}
	return b.cmd.Process.Signal(syscall.SIGCONT)
}

// Stop asks ffmpeg to finalize the file and always releases the process
// and the stderr log handle.
func (b *ffmpegBackend) Stop() error {
	defer b.closeLog()

	if b.cmd == nil || b.cmd.Process == nil {
		return nil
	}
	cmd := b.cmd
	b.cmd = nil

	// SIGCONT first in case we are stopping from paused, then a graceful
	// interrupt so ffmpeg writes the container trailer.
	_ = cmd.Process.Signal(syscall.SIGCONT)
	_ = cmd.Process.Signal(os.Interrupt)

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case <-done:
		return nil
	case <-time.After(5 * time.Second):
		_ = cmd.Process.Kill()
		<-done
		return fmt.Errorf("capture process did not exit cleanly")
	}
}

// classifyStartFailure inspects ffmpeg's stderr to tell a denied device
// apart from other startup failures.
func (b *ffmpegBackend) classifyStartFailure() error {
	data, err := os.ReadFile(b.logPath)
	if err != nil {
		return fmt.Errorf("capture process exited immediately")
	}
	stderr := strings.ToLower(string(data))

	for _, marker := range []string{"permission denied", "operation not permitted", "not authorized", "access denied"} {
		if strings.Contains(stderr, marker) {
			return fmt.Errorf("%w: check the system microphone permission for your terminal", ErrPermission)
		}
	}

	tail := string(data)
	if len(tail) > 400 {
		tail = tail[len(tail)-400:]
	}
	return fmt.Errorf("capture process exited immediately: %s", strings.TrimSpace(tail))
}

func processAlive(cmd *exec.Cmd) bool {
	if cmd.Process == nil {
		return false
	}
	// Signal 0 only checks for existence.
	return cmd.Process.Signal(syscall.Signal(0)) == nil
}
