package transcriber

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// strategy is one way of obtaining a transcript for prepared request contents.
type strategy interface {
	name() string
	run(ctx context.Context, contents []*genai.Content, onDelta DeltaFunc) (string, error)
}

// Transcribe prefers the streamed strategy and falls back to the buffered
// one exactly once, and only when streaming failed with a network-class
// error. Any other failure propagates immediately.
func (t *implTranscriber) Transcribe(ctx context.Context, src Source, onDelta DeltaFunc) (string, error) {
	contents, err := buildContents(src, buildPrompt(t.sourceLanguage))
	if err != nil {
		return "", err
	}

	var streamedAny bool
	track := func(delta string) {
		streamedAny = true
		if onDelta != nil {
			onDelta(delta)
		}
	}

	text, err := t.streamed.run(ctx, contents, track)
	if err != nil {
		if !isNetworkError(err) {
			return "", fmt.Errorf("transcribe (%s): %w", t.streamed.name(), err)
		}
		t.logger.Warn(ctx, "Streamed transcription failed (%v), retrying buffered", err)

		// If the stream already surfaced a prefix, the fallback's full text
		// would repeat it; the caller gets the result via the return value.
		fallbackDelta := onDelta
		if streamedAny {
			fallbackDelta = nil
		}
		text, err = t.buffered.run(ctx, contents, fallbackDelta)
		if err != nil {
			return "", fmt.Errorf("transcribe (%s): %w", t.buffered.name(), err)
		}
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("transcription produced no text")
	}
	return text, nil
}

// buildContents assembles the instruction prompt plus the audio payload,
// inline or by remote file reference.
func buildContents(src Source, prompt string) ([]*genai.Content, error) {
	parts := []*genai.Part{genai.NewPartFromText(prompt)}

	switch {
	case src.RemoteURI != "":
		parts = append(parts, genai.NewPartFromURI(src.RemoteURI, src.MIMEType))
	case len(src.Data) > 0:
		parts = append(parts, genai.NewPartFromBytes(src.Data, src.MIMEType))
	default:
		return nil, fmt.Errorf("transcription source has neither inline data nor a remote reference")
	}

	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}, nil
}

type streamedStrategy struct {
	client *genai.Client
	model  string
}

func (s *streamedStrategy) name() string { return "streamed" }

func (s *streamedStrategy) run(ctx context.Context, contents []*genai.Content, onDelta DeltaFunc) (string, error) {
	var sb strings.Builder
	for resp, err := range s.client.Models.GenerateContentStream(ctx, s.model, contents, nil) {
		if err != nil {
			return "", err
		}
		delta := responseText(resp)
		if delta == "" {
			continue
		}
		sb.WriteString(delta)
		if onDelta != nil {
			onDelta(delta)
		}
	}
	return sb.String(), nil
}

type bufferedStrategy struct {
	client *genai.Client
	model  string
}

func (b *bufferedStrategy) name() string { return "buffered" }

func (b *bufferedStrategy) run(ctx context.Context, contents []*genai.Content, onDelta DeltaFunc) (string, error) {
	resp, err := b.client.Models.GenerateContent(ctx, b.model, contents, nil)
	if err != nil {
		return "", err
	}
	text := responseText(resp)
	if text != "" && onDelta != nil {
		onDelta(text)
	}
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			text += part.Text
		}
	}
	return text
}
