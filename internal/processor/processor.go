package processor

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nguyentantai21042004/brief-flow/internal/exporter"
	"github.com/nguyentantai21042004/brief-flow/internal/media"
	"github.com/nguyentantai21042004/brief-flow/internal/summarizer"
	"github.com/nguyentantai21042004/brief-flow/internal/transcriber"
)

// Progress milestones. Transcription owns the range up to
// transcribeDone, summarization up to summarizeDone.
const (
	transcribeStart = 10
	transcribeDone  = 70
	summarizeDone   = 95
	finalizeDone    = 100
)

// Process runs the whole pipeline for one audio file. Any stage failure
// aborts the remainder; a remote file allocated along the way is cleaned
// up whatever the outcome.
func (p *implProcessor) Process(ctx context.Context, path string, cb Callbacks) (*Result, error) {
	if !p.busy.CompareAndSwap(false, true) {
		return nil, ErrJobInFlight
	}
	defer p.busy.Store(false)

	started := time.Now()
	log := p.deps.Logger

	// Pre-conditions: nothing below makes a network call until both hold.
	if p.deps.APIKey == "" {
		return nil, fmt.Errorf("%w: no API key configured, run `briefflow config set-key`", media.ErrValidation)
	}

	sel, err := p.deps.Intake.Select(ctx, path)
	if err != nil {
		return nil, err
	}
	for _, w := range sel.Warnings {
		log.Info(ctx, "Notice: %s", w)
		if cb.OnWarning != nil {
			cb.OnWarning(w)
		}
	}

	report(cb, Progress{Percent: transcribeStart, Stage: "transcribing"})

	transcript, err := p.transcribe(ctx, sel, cb)
	if err != nil {
		return nil, err
	}
	report(cb, Progress{Percent: transcribeDone, Stage: "summarizing"})

	sum, err := p.deps.Summarizer.Summarize(ctx, transcript, summarizer.Options{
		Detail:            p.cfg.Summary.Detail,
		OutputLanguage:    p.cfg.Summary.OutputLanguage,
		Tone:              p.cfg.Summary.Tone,
		PrioritizeActions: p.cfg.Summary.PrioritizeActions,
	})
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}
	report(cb, Progress{Percent: summarizeDone, Stage: "finalizing"})

	result, err := p.finalize(ctx, sel, transcript, sum)
	if err != nil {
		return nil, err
	}
	report(cb, Progress{Percent: finalizeDone, Stage: "done"})

	log.Info(ctx, "Processed %s in %s", sel.Name, time.Since(started).Round(time.Second))
	return result, nil
}

// transcribe picks the processing path by size and duration: remote upload
// for payloads over the inline limit, sequential chunks for long
// recordings, a single inline call otherwise.
func (p *implProcessor) transcribe(ctx context.Context, sel *media.SelectedFile, cb Callbacks) (string, error) {
	switch {
	case sel.Size > media.InlineLimit:
		return p.transcribeRemote(ctx, sel, cb)
	case sel.Duration != nil && media.ShouldChunk(*sel.Duration):
		return p.transcribeChunked(ctx, sel, cb)
	default:
		return p.transcribeInline(ctx, sel, cb)
	}
}

func (p *implProcessor) transcribeInline(ctx context.Context, sel *media.SelectedFile, cb Callbacks) (string, error) {
	data, err := os.ReadFile(sel.Path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", sel.Path, err)
	}

	text, err := p.deps.Transcriber.Transcribe(ctx, transcriber.Source{
		Data:     data,
		MIMEType: sel.MIMEType,
	}, cb.OnDelta)
	if err != nil {
		return "", err
	}
	return text, nil
}

// transcribeChunked processes chunks strictly in order, one at a time, and
// joins the partial transcripts in chunk order.
func (p *implProcessor) transcribeChunked(ctx context.Context, sel *media.SelectedFile, cb Callbacks) (string, error) {
	chunks, err := media.Split(sel, *sel.Duration)
	if err != nil {
		return "", err
	}
	p.deps.Logger.Info(ctx, "Transcribing %s in %d parts", sel.Name, len(chunks))

	parts := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		report(cb, Progress{
			Percent: transcribeStart + (transcribeDone-transcribeStart)*i/len(chunks),
			Stage:   "transcribing",
			Detail:  fmt.Sprintf("part %d/%d", i+1, len(chunks)),
		})

		text, err := p.deps.Transcriber.Transcribe(ctx, transcriber.Source{
			Data:     chunk.Data,
			MIMEType: chunk.MIMEType,
		}, cb.OnDelta)
		if err != nil {
			return "", fmt.Errorf("part %d/%d: %w", i+1, len(chunks), err)
		}
		parts = append(parts, strings.TrimSpace(text))
	}

	return strings.Join(parts, "\n\n"), nil
}

// transcribeRemote uploads the file, waits until the remote side marks it
// ready, transcribes by reference, and always deletes the remote file.
func (p *implProcessor) transcribeRemote(ctx context.Context, sel *media.SelectedFile, cb Callbacks) (string, error) {
	handle, err := p.deps.Uploader.Upload(ctx, sel.Path, sel.MIMEType, func(sent, total int64) {
		if total <= 0 {
			return
		}
		// Upload progress occupies the first slice of the transcription range.
		pct := transcribeStart + int(int64(20)*sent/total)
		report(cb, Progress{Percent: pct, Stage: "uploading"})
	})
	if err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}
	// Remote files are ephemeral: delete whatever happens from here on.
	defer p.deps.Uploader.Cleanup(ctx, handle)

	if err := p.deps.Uploader.WaitActive(ctx, handle); err != nil {
		return "", err
	}
	report(cb, Progress{Percent: transcribeStart + 25, Stage: "transcribing"})

	text, err := p.deps.Transcriber.Transcribe(ctx, transcriber.Source{
		RemoteURI: handle.URI,
		MIMEType:  handle.MIMEType,
	}, cb.OnDelta)
	if err != nil {
		return "", err
	}
	return text, nil
}

// finalize exports the artifacts and records the run in history. History is
// only written once every stage has succeeded.
func (p *implProcessor) finalize(ctx context.Context, sel *media.SelectedFile, transcript string, sum *summarizer.Result) (*Result, error) {
	doc := exporter.Document{
		Title:       titleFor(sel.Name),
		FileName:    sel.Name,
		CreatedAt:   time.Now(),
		Transcript:  transcript,
		Summary:     sum.Summary,
		ActionItems: sum.ActionItems,
	}

	mdPath, err := exporter.WriteMarkdown(p.cfg.Paths.Output, doc)
	if err != nil {
		return nil, err
	}
	docxPath, err := exporter.WriteDocx(p.cfg.Paths.Output, doc)
	if err != nil {
		return nil, err
	}

	entry := p.deps.History.Record(ctx, sel.Name, transcript, sum.Summary, sum.ActionItems)

	return &Result{
		Entry:        entry,
		MarkdownPath: mdPath,
		DocxPath:     docxPath,
	}, nil
}

func titleFor(fileName string) string {
	base := fileName
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return strings.TrimSpace(base)
}

func report(cb Callbacks, p Progress) {
	if cb.OnProgress != nil {
		cb.OnProgress(p)
	}
}
