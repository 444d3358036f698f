//go:build unix

package writer

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// copyMode applies the permission bits of src to f. A missing src is not
// an error: there is nothing to preserve.
func copyMode(f *os.File, src string) error {
	var st unix.Stat_t
	if err := unix.Stat(src, &st); err != nil {
		if errors.Is(err, unix.ENOENT) {
			return nil
		}
		return err
	}
	return unix.Fchmod(int(f.Fd()), uint32(st.Mode)&0o7777)
}

// syncDir fsyncs a directory so a completed rename survives a crash.
func syncDir(dir string) error {
	fd, err := unix.Open(dir, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return err
	}
	defer unix.Close(fd)
	return unix.Fsync(fd)
}
