package store

import (
	"context"
	"encoding/json"
)

// Store is a small key-value blob store. Operations never fail from the
// caller's point of view: storage problems degrade to "absent" on reads and
// no-ops on writes, so a broken state dir can never block a processing run.
type Store interface {
	// Get returns the stored value and whether it was present and well-formed.
	Get(ctx context.Context, key string) (json.RawMessage, bool)
	Set(ctx context.Context, key string, value any)
	Remove(ctx context.Context, key string)
}
