package processor

import (
	"sync/atomic"

	"github.com/nguyentantai21042004/brief-flow/internal/config"
	"github.com/nguyentantai21042004/brief-flow/internal/history"
	"github.com/nguyentantai21042004/brief-flow/internal/logger"
	"github.com/nguyentantai21042004/brief-flow/internal/media"
	"github.com/nguyentantai21042004/brief-flow/internal/summarizer"
	"github.com/nguyentantai21042004/brief-flow/internal/transcriber"
	"github.com/nguyentantai21042004/brief-flow/internal/upload"
)

// Deps are the pipeline stages the processor sequences.
type Deps struct {
	Intake      media.Intake
	Transcriber transcriber.Transcriber
	Summarizer  summarizer.Summarizer
	Uploader    upload.Uploader
	History     *history.History
	Logger      logger.Logger
	// APIKey is only checked for presence; an empty key fails validation
	// before any network call.
	APIKey string
}

type implProcessor struct {
	cfg  *config.Config
	deps Deps
	busy atomic.Bool
}

// New creates a Processor. Job state (the in-flight flag, the current
// file, the accumulating result) is owned here and nowhere else.
func New(cfg *config.Config, deps Deps) Processor {
	return &implProcessor{
		cfg:  cfg,
		deps: deps,
	}
}
