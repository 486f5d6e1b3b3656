package media

import (
	"github.com/nguyentantai21042004/brief-flow/internal/logger"
	"github.com/nguyentantai21042004/brief-flow/pkg/executor"
)

type implIntake struct {
	executor executor.Executor
	logger   logger.Logger
}

// New creates an Intake backed by ffprobe for duration probing.
func New(exec executor.Executor, log logger.Logger) Intake {
	return &implIntake{
		executor: exec,
		logger:   log,
	}
}
