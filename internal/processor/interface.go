package processor

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/brief-flow/internal/history"
)

// ErrJobInFlight rejects submissions while another job is running. Exactly
// one job may be active at a time; there is deliberately no cancellation
// API for a job once submitted.
var ErrJobInFlight = errors.New("another job is already running")

// Progress reports pipeline advancement to the caller: transcription fills
// 0-70%, summarization 70-95%, finalization 95-100%.
type Progress struct {
	Percent int
	Stage   string
	Detail  string
}

// Callbacks receive live updates during a run. All fields are optional.
type Callbacks struct {
	OnProgress func(Progress)
	// OnDelta receives transcript fragments as they stream in.
	OnDelta func(delta string)
	// OnWarning receives intake notices (chunking, remote upload).
	OnWarning func(warning string)
}

// Result is a completed run: the recorded history entry plus the paths of
// the exported artifacts.
type Result struct {
	Entry        history.Entry
	MarkdownPath string
	DocxPath     string
}

// Processor runs the full intake -> transcribe -> summarize -> export ->
// record pipeline for one audio file.
type Processor interface {
	Process(ctx context.Context, path string, cb Callbacks) (*Result, error)
}
