//go:build unix

package preflight

import "golang.org/x/sys/unix"

func checkAccess(path string, mode AccessMode) error {
	bits := uint32(unix.R_OK | unix.X_OK)
	switch mode {
	case AccessReadWrite:
		bits |= unix.W_OK
	case AccessExecute:
		bits = unix.X_OK
	}
	return unix.Access(path, bits)
}
