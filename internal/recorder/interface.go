package recorder

import (
	"context"
	"errors"
)

// ErrPermission marks microphone/device access denials. Surfaced with its
// own user-facing message, distinct from other capture failures.
var ErrPermission = errors.New("microphone access denied")

// Backend is a capture implementation. The state machine above it does not
// care how audio is captured, only that these calls succeed.
type Backend interface {
	// Start begins capturing to outputPath.
	Start(ctx context.Context, outputPath string) error
	// Pause suspends capture without finalizing the file.
	Pause() error
	// Resume continues a paused capture.
	Resume() error
	// Stop finalizes the file and releases the device. Must release
	// unconditionally, even when finalizing fails.
	Stop() error
}
