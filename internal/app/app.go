package app

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/brief-flow/internal/config"
	"github.com/nguyentantai21042004/brief-flow/internal/history"
	"github.com/nguyentantai21042004/brief-flow/internal/logger"
	"github.com/nguyentantai21042004/brief-flow/internal/media"
	"github.com/nguyentantai21042004/brief-flow/internal/processor"
	"github.com/nguyentantai21042004/brief-flow/internal/recorder"
	"github.com/nguyentantai21042004/brief-flow/internal/secrets"
	"github.com/nguyentantai21042004/brief-flow/internal/store"
	"github.com/nguyentantai21042004/brief-flow/internal/summarizer"
	"github.com/nguyentantai21042004/brief-flow/internal/transcriber"
	"github.com/nguyentantai21042004/brief-flow/internal/upload"
	"github.com/nguyentantai21042004/brief-flow/pkg/executor"
)

// App wires the full pipeline from configuration. Everything a command
// needs hangs off here.
type App struct {
	Config      *config.Config
	Logger      logger.Logger
	Store       store.Store
	Credentials *secrets.Credentials
	History     *history.History
	Recorder    *recorder.Recorder
	Processor   processor.Processor

	// APIKey is the resolved credential at startup. Empty means not yet
	// configured; processing fails validation before any network call.
	APIKey string
}

// New builds the application graph. The Gemini client is only created when
// a credential is present; without one the pipeline stages stay nil, which
// is safe because the processor rejects jobs on an empty key first.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.New(cfg.Logging.Level)

	st := store.New(cfg.Storage, log)
	creds := secrets.NewCredentials(st)
	hist := history.New(st)
	apiKey := creds.Load(ctx)

	var (
		trans transcriber.Transcriber
		summ  summarizer.Summarizer
		up    upload.Uploader
	)
	if apiKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("create gemini client: %w", err)
		}
		trans = transcriber.New(client, cfg.Gemini.TranscribeModel, cfg.Gemini.SourceLanguage, log)
		summ = summarizer.New(client, cfg.Gemini.SummarizeModel, log)
		up = upload.New(client, log)
	}

	proc := processor.New(cfg, processor.Deps{
		Intake:      media.New(executor.New(), log),
		Transcriber: trans,
		Summarizer:  summ,
		Uploader:    up,
		History:     hist,
		Logger:      log,
		APIKey:      apiKey,
	})

	rec := recorder.New(recorder.NewFFmpegBackend(cfg.Recording, log), cfg.Paths.Temp, log)

	return &App{
		Config:      cfg,
		Logger:      log,
		Store:       st,
		Credentials: creds,
		History:     hist,
		Recorder:    rec,
		Processor:   proc,
		APIKey:      apiKey,
	}, nil
}
