// Package writer exposes sinks for property list emission.
package writer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joshuapare/plistkit/pkg/types"
)

// EncodeFunc serializes a document into w.
type EncodeFunc func(w io.Writer) error

// Sink receives a serialized document.
type Sink interface {
	WriteDocument(encode EncodeFunc) error
}

// Test seams.
var (
	createTemp = os.CreateTemp
	osRename   = os.Rename
	osRemove   = os.Remove
	copyModeFn = copyMode
	osChtimes  = os.Chtimes
)

// TempPattern is the name pattern of the temporary file created next to
// the target during an atomic write.
const TempPattern = ".plist.tmp_*"

// FileWriter writes a document to a filesystem path atomically.
type FileWriter struct {
	Path string
}

var _ Sink = (*FileWriter)(nil)

// WriteDocument implements Sink via WriteAtomic.
func (w *FileWriter) WriteDocument(encode EncodeFunc) error {
	return WriteAtomic(w.Path, encode)
}

// WriteAtomic replaces the file at path with the output of encode.
//
// The temporary file is created in the target's directory so the final
// rename stays on one filesystem. Permission bits of the existing target
// are carried over where the platform has them. Until the rename
// succeeds the target is untouched, and the temporary file is removed on
// every failure path.
func WriteAtomic(path string, encode EncodeFunc) error {
	return writeAtomic(path, path, encode)
}

// writeAtomic is WriteAtomic with the permission source given separately.
func writeAtomic(path, modeFrom string, encode EncodeFunc) error {
	dir := filepath.Dir(path)
	tmpFile, err := createTemp(dir, TempPattern)
	if err != nil {
		return types.IOError("create temp file", dir, err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	success := false
	defer func() {
		if !success {
			if tmpFile != nil {
				_ = tmpFile.Close()
			}
			_ = osRemove(tmpPath)
		}
	}()

	if encodeErr := encode(tmpFile); encodeErr != nil {
		return &types.Error{Kind: types.ErrKindIO, Msg: "write temp file", Path: tmpPath, Err: encodeErr}
	}

	if modeErr := copyModeFn(tmpFile, modeFrom); modeErr != nil {
		return types.IOError("copy permissions", modeFrom, modeErr)
	}

	// Sync to disk
	if syncErr := tmpFile.Sync(); syncErr != nil {
		return types.IOError("sync temp file", tmpPath, syncErr)
	}

	// Close before rename
	closeErr := tmpFile.Close()
	tmpFile = nil
	if closeErr != nil {
		return types.IOError("close temp file", tmpPath, closeErr)
	}

	// Atomic rename
	if renameErr := osRename(tmpPath, path); renameErr != nil {
		return &types.Error{
			Kind: types.ErrKindIO,
			Msg:  fmt.Sprintf("rename %s", filepath.Base(tmpPath)),
			Path: path,
			Err:  renameErr,
		}
	}
	success = true

	// The data is in place; a failed directory sync only weakens crash
	// durability of the rename itself.
	_ = syncDir(dir)
	return nil
}
