//go:build !unix

package preflight

import (
	"os"
	"path/filepath"
)

// checkAccess probes by opening the directory or creating a scratch file;
// permission bits are not meaningful here.
func checkAccess(path string, mode AccessMode) error {
	switch mode {
	case AccessReadWrite:
		f, err := os.CreateTemp(path, ".scam-probe-*")
		if err != nil {
			return err
		}
		name := f.Name()
		_ = f.Close()
		return os.Remove(filepath.Clean(name))
	default:
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		return f.Close()
	}
}
