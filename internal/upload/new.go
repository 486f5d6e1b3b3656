package upload

import (
	"context"
	"io"
	"time"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/brief-flow/internal/logger"
)

const (
	// PollInterval is the fixed wait between remote file status checks.
	PollInterval = 3 * time.Second

	// PollTimeout bounds how long a file may stay in the processing state
	// before the run is failed.
	PollTimeout = 5 * time.Minute
)

// filesAPI is the slice of the remote file service the uploader needs.
// Narrowed to an interface so the poll loop is testable without a client.
type filesAPI interface {
	upload(ctx context.Context, r io.Reader, mimeType string) (*genai.File, error)
	get(ctx context.Context, name string) (*genai.File, error)
	delete(ctx context.Context, name string) error
}

type implUploader struct {
	files    filesAPI
	logger   logger.Logger
	interval time.Duration
	timeout  time.Duration
}

// New creates an Uploader backed by the Gemini Files API.
func New(client *genai.Client, log logger.Logger) Uploader {
	return &implUploader{
		files:    &genaiFiles{client: client},
		logger:   log,
		interval: PollInterval,
		timeout:  PollTimeout,
	}
}

type genaiFiles struct {
	client *genai.Client
}

func (g *genaiFiles) upload(ctx context.Context, r io.Reader, mimeType string) (*genai.File, error) {
	return g.client.Files.Upload(ctx, r, &genai.UploadFileConfig{MIMEType: mimeType})
}

func (g *genaiFiles) get(ctx context.Context, name string) (*genai.File, error) {
	return g.client.Files.Get(ctx, name, nil)
}

func (g *genaiFiles) delete(ctx context.Context, name string) error {
	_, err := g.client.Files.Delete(ctx, name, nil)
	return err
}
