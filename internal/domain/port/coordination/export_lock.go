package coordination

import "context"

// ReleaseFunc gives up a held lock
type ReleaseFunc func(ctx context.Context) error

// ExportLock serializes export runs across service instances
type ExportLock interface {
	// Acquire takes the lock or returns ErrExportInProgress when another holder has it
	Acquire(ctx context.Context) (ReleaseFunc, error)
}
