package writer

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/joshuapare/plistkit/pkg/types"
)

// BackupSuffix is appended to a file name to form its backup sibling.
const BackupSuffix = ".bak"

// BackupPath returns the backup location for path.
func BackupPath(path string) string { return path + BackupSuffix }

// Backup copies path to <path>.bak unless a backup already exists. The
// first backup is never overwritten, so it always holds the pristine
// file no matter how many updates follow.
//
// The copy is byte-for-byte and keeps the original's permission bits and
// modification time. Returns the backup path and whether it was created
// by this call. When the bytes are in place but the timestamps could not
// be copied, created is true and err is non-nil; callers may treat that
// as a warning.
func Backup(path string) (string, bool, error) {
	bak := BackupPath(path)
	if _, err := os.Lstat(bak); err == nil {
		return bak, false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return bak, false, types.IOError("stat backup", bak, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return bak, false, types.IOError("stat source", path, err)
	}
	src, err := os.Open(path)
	if err != nil {
		return bak, false, types.IOError("open source", path, err)
	}
	defer src.Close()

	err = writeAtomic(bak, path, func(w io.Writer) error {
		_, copyErr := io.Copy(w, src)
		return copyErr
	})
	if err != nil {
		return bak, false, err
	}

	if err := osChtimes(bak, info.ModTime(), info.ModTime()); err != nil {
		return bak, true, types.IOError("copy timestamps", bak, err)
	}
	return bak, true, nil
}
