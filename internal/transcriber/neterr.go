package transcriber

import (
	"errors"
	"io"
	"net"
	"net/url"
	"syscall"
)

// isNetworkError classifies transport-level failures that justify retrying
// the same payload over the buffered path. API-level rejections (bad
// request, quota, safety blocks) are not retried.
func isNetworkError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	return errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.EPIPE)
}
