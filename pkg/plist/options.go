package plist

import (
	"io"
	"log/slog"
)

// UpdateOptions controls Update behavior. A nil *UpdateOptions is valid
// and means "write in place, no backup".
type UpdateOptions struct {
	// CreateBackup copies the file to <path>.bak before the first write.
	// An existing backup is left as is.
	CreateBackup bool

	// DryRun computes the change without touching the filesystem.
	// Update still reports whether the file would change.
	DryRun bool

	// DiffOut receives a unified diff (XML rendering) of the change when
	// the document changes. Optional.
	DiffOut io.Writer

	// Logger receives debug and info records. Nil discards them.
	Logger *slog.Logger
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func (o *UpdateOptions) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return discardLogger
	}
	return o.Logger
}
