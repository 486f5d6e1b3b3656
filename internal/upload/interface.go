package upload

import "context"

// Handle references bytes stored on the remote file service. It is
// ephemeral: whatever the outcome of a run, the remote file must be
// deleted afterwards.
type Handle struct {
	Name     string
	URI      string
	MIMEType string
}

// ProgressFunc receives upload progress as bytes sent out of total.
type ProgressFunc func(sent, total int64)

// Uploader moves large audio files to the remote file service and manages
// their lifecycle.
type Uploader interface {
	// Upload streams the file at path to the remote service.
	Upload(ctx context.Context, path, mimeType string, onProgress ProgressFunc) (*Handle, error)
	// WaitActive polls until the remote file is ready for use, the remote
	// marks it failed, or the timeout elapses.
	WaitActive(ctx context.Context, h *Handle) error
	// Cleanup deletes the remote file, swallowing errors. Safe to call on
	// both success and failure paths.
	Cleanup(ctx context.Context, h *Handle)
}
