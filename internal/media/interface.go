package media

import "context"

// Intake validates a candidate audio file and probes its duration.
type Intake interface {
	Select(ctx context.Context, path string) (*SelectedFile, error)
}
