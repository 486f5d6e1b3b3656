package summarizer

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Summarize sends the transcript with the rendered instruction prompt and
// parses the structured JSON response.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string, opts Options) (*Result, error) {
	prompt := buildPrompt(transcript, opts)

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0.2),
	}

	s.logger.Debug(ctx, "Requesting summary from %s (detail=%s, tone=%s)", s.model, opts.Detail, opts.Tone)

	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), cfg)
	if err != nil {
		return nil, fmt.Errorf("generate summary: %w", err)
	}

	text := responseText(result)
	if text == "" {
		return nil, fmt.Errorf("%w: empty response from model", ErrUnparsableSummary)
	}

	return parseResult(text)
}

func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil {
			text += part.Text
		}
	}
	return text
}
