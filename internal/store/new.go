package store

import (
	"github.com/nguyentantai21042004/brief-flow/internal/config"
	"github.com/nguyentantai21042004/brief-flow/internal/logger"
)

// New selects the backend once from configuration. There is no per-call
// probing: the chosen implementation handles every operation for the
// lifetime of the process.
func New(cfg config.StorageConfig, log logger.Logger) Store {
	switch cfg.Backend {
	case "memory":
		return NewMemory()
	default:
		return NewFile(cfg.StateDir, log)
	}
}
