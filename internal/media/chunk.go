package media

import (
	"fmt"
	"os"
	"time"
)

// Chunk is one byte-range slice of an oversized recording. Slices are
// byte-aligned, not time-aligned: a boundary can cut mid-frame, which the
// transcription model tolerates. This is a deliberate approximation.
type Chunk struct {
	Index    int
	Data     []byte
	MIMEType string
}

// ShouldChunk reports whether a recording of the given duration needs to be
// split into sequential transcription passes.
func ShouldChunk(duration time.Duration) bool {
	return duration > ChunkThreshold
}

// ChunkCount returns ceil(duration/ChunkThreshold).
func ChunkCount(duration time.Duration) int {
	if duration <= 0 {
		return 1
	}
	n := int((duration + ChunkThreshold - 1) / ChunkThreshold)
	if n < 1 {
		return 1
	}
	return n
}

// Split slices the selected file into ChunkCount contiguous,
// approximately-equal byte ranges, each inheriting the parent MIME type.
func Split(sel *SelectedFile, duration time.Duration) ([]Chunk, error) {
	data, err := os.ReadFile(sel.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", sel.Path, err)
	}

	n := ChunkCount(duration)
	chunks := make([]Chunk, 0, n)
	size := len(data)

	for i := 0; i < n; i++ {
		start := size * i / n
		end := size * (i + 1) / n
		chunks = append(chunks, Chunk{
			Index:    i,
			Data:     data[start:end],
			MIMEType: sel.MIMEType,
		})
	}

	return chunks, nil
}
