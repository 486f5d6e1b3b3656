package transcriber

import (
	"google.golang.org/genai"

	"github.com/nguyentantai21042004/brief-flow/internal/logger"
)

type implTranscriber struct {
	sourceLanguage string
	logger         logger.Logger

	// Two named strategies behind one interface: streamed is preferred,
	// buffered is the one-shot fallback for network-class stream failures.
	streamed strategy
	buffered strategy
}

// New creates a Transcriber calling the given Gemini model.
func New(client *genai.Client, model, sourceLanguage string, log logger.Logger) Transcriber {
	return &implTranscriber{
		sourceLanguage: sourceLanguage,
		logger:         log,
		streamed:       &streamedStrategy{client: client, model: model},
		buffered:       &bufferedStrategy{client: client, model: model},
	}
}
