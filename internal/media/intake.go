package media

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Select validates the file at path and probes its duration. Rejections
// wrap ErrValidation; a failed duration probe is not a rejection.
func (m *implIntake) Select(ctx context.Context, path string) (*SelectedFile, error) {
	ext := normalizeExt(filepath.Ext(path))
	mimeType, ok := mimeTypes[ext]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported file type %q (accepted: %s)",
			ErrValidation, ext, strings.Join(acceptedExtensions(), ", "))
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("%w: file is %s, maximum is %s",
			ErrValidation, FormatSize(info.Size()), FormatSize(MaxFileSize))
	}

	sel := &SelectedFile{
		Path:     path,
		Name:     filepath.Base(path),
		Size:     info.Size(),
		MIMEType: mimeType,
	}

	if d, err := m.probeDuration(ctx, path); err != nil {
		// Advisory only: chunking decisions fall back to size.
		m.logger.Debug(ctx, "Duration probe failed for %s: %v", path, err)
	} else {
		sel.Duration = &d
	}

	sel.Warnings = deriveWarnings(sel)
	return sel, nil
}

// deriveWarnings tells the user ahead of time which processing path a file
// will take. These are notices, never rejections.
func deriveWarnings(sel *SelectedFile) []string {
	var warnings []string
	if sel.Size > InlineLimit {
		warnings = append(warnings,
			fmt.Sprintf("file is %s, will be uploaded to the API before transcription", FormatSize(sel.Size)))
	}
	if sel.Duration != nil && *sel.Duration > ChunkThreshold {
		n := ChunkCount(*sel.Duration)
		warnings = append(warnings,
			fmt.Sprintf("recording is %s, will be split into %d parts", sel.Duration.Round(time.Second), n))
	}
	return warnings
}

// probeDuration asks ffprobe for the container duration in seconds.
func (m *implIntake) probeDuration(ctx context.Context, path string) (time.Duration, error) {
	out, err := m.executor.Execute(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		return 0, err
	}

	secs, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe output %q: %w", strings.TrimSpace(out), err)
	}
	if secs <= 0 || math.IsNaN(secs) || math.IsInf(secs, 0) {
		return 0, fmt.Errorf("implausible duration %v", secs)
	}
	return time.Duration(secs * float64(time.Second)), nil
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimSpace(ext))
}

func acceptedExtensions() []string {
	exts := make([]string, 0, len(mimeTypes))
	for ext := range mimeTypes {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
