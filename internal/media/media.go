package media

import (
	"errors"
	"fmt"
	"time"
)

// ErrValidation marks rejections that must block a run before any network
// call is made (bad extension, oversize file).
var ErrValidation = errors.New("validation failed")

const (
	// MaxFileSize is the hard intake limit.
	MaxFileSize = 100 << 20

	// InlineLimit is the largest payload sent inline with a generation
	// request. Stays under the API's 20 MB request cap after base64 framing.
	InlineLimit = 15 << 20

	// ChunkThreshold is the per-chunk duration above which a recording is
	// split into sequential transcription passes.
	ChunkThreshold = 15 * time.Minute
)

// mimeTypes maps the accepted audio extensions to the MIME types the
// generation API understands.
var mimeTypes = map[string]string{
	".mp3":  "audio/mp3",
	".wav":  "audio/wav",
	".m4a":  "audio/mp4",
	".aac":  "audio/aac",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
	".aiff": "audio/aiff",
	".opus": "audio/opus",
}

// SelectedFile is an accepted intake file. Duration is advisory: a failed
// probe leaves it nil and processing continues on the inline path.
type SelectedFile struct {
	Path     string
	Name     string
	Size     int64
	MIMEType string
	Duration *time.Duration
	Warnings []string
}

// AcceptedExtension reports whether ext (with leading dot, any case) is an
// accepted audio format.
func AcceptedExtension(ext string) bool {
	_, ok := mimeTypes[normalizeExt(ext)]
	return ok
}

// FormatSize renders a byte count in human-readable units for messages.
func FormatSize(n int64) string {
	switch {
	case n >= 1<<30:
		return fmt.Sprintf("%.1f GiB", float64(n)/float64(1<<30))
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/float64(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/float64(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
