package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"google.golang.org/genai"
)

// ErrPollTimeout marks a remote file that never became ready within budget.
var ErrPollTimeout = errors.New("remote file was not ready in time")

// Upload streams the file to the remote service, reporting progress as
// bytes are consumed from the local file.
func (u *implUploader) Upload(ctx context.Context, path, mimeType string, onProgress ProgressFunc) (*Handle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	var r io.Reader = f
	if onProgress != nil {
		r = &progressReader{r: f, total: info.Size(), onProgress: onProgress}
	}

	u.logger.Info(ctx, "Uploading %s (%d bytes) to the file service", path, info.Size())

	remote, err := u.files.upload(ctx, r, mimeType)
	if err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}

	return &Handle{Name: remote.Name, URI: remote.URI, MIMEType: mimeType}, nil
}

// WaitActive polls every PollInterval until the file is ACTIVE. A FAILED
// state fails fast; exceeding the timeout yields ErrPollTimeout.
func (u *implUploader) WaitActive(ctx context.Context, h *Handle) error {
	deadline := time.Now().Add(u.timeout)

	for {
		remote, err := u.files.get(ctx, h.Name)
		if err != nil {
			return fmt.Errorf("check remote file state: %w", err)
		}

		switch remote.State {
		case genai.FileStateActive:
			if h.URI == "" {
				h.URI = remote.URI
			}
			return nil
		case genai.FileStateFailed:
			return fmt.Errorf("remote file processing failed")
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("%w (waited %s)", ErrPollTimeout, u.timeout)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(u.interval):
		}
	}
}

// Cleanup deletes the remote file. Errors are logged and swallowed: the
// remote service expires files on its own eventually, and cleanup must
// never mask the outcome of the run itself.
func (u *implUploader) Cleanup(ctx context.Context, h *Handle) {
	if h == nil || h.Name == "" {
		return
	}
	if err := u.files.delete(ctx, h.Name); err != nil {
		u.logger.Warn(ctx, "Failed to delete remote file %s: %v", h.Name, err)
		return
	}
	u.logger.Debug(ctx, "Deleted remote file %s", h.Name)
}

// progressReader counts bytes as the HTTP client consumes them.
type progressReader struct {
	r          io.Reader
	total      int64
	sent       int64
	onProgress ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		p.onProgress(p.sent, p.total)
	}
	return n, err
}
