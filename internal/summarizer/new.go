package summarizer

import (
	"google.golang.org/genai"

	"github.com/nguyentantai21042004/brief-flow/internal/logger"
)

type implSummarizer struct {
	client *genai.Client
	model  string
	logger logger.Logger
}

// New creates a Summarizer calling the given Gemini model.
func New(client *genai.Client, model string, log logger.Logger) Summarizer {
	return &implSummarizer{
		client: client,
		model:  model,
		logger: log,
	}
}
