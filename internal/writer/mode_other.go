//go:build !unix

package writer

import "os"

// copyMode is a no-op on platforms without POSIX permission bits. The
// temporary file keeps the platform default, which is what a freshly
// written file would get anyway.
func copyMode(_ *os.File, _ string) error { return nil }

// syncDir is a no-op; directories cannot be fsynced portably here.
func syncDir(_ string) error { return nil }
