package preflight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"scam/internal/preset"
	"scam/internal/schema"
)

// CheckSchema verifies the default-values file loads and defines keys.
func CheckSchema(path string) Result {
	const name = "Schema"
	sch, err := schema.LoadFile(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	if sch.Len() == 0 {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: no keys defined)", path)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d keys in %d sections)", path, sch.Len(), len(sch.Sections()))}
}

// CheckDirectoryAccess verifies that the directory exists with the requested
// permissions.
func CheckDirectoryAccess(name, path string, mode AccessMode) Result {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := checkAccess(path, mode); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s ok)", path, mode)}
}

// CheckCreatableDir passes when the directory is writable, or when it is
// missing but its nearest existing parent is writable.
func CheckCreatableDir(name, path string) Result {
	if _, err := os.Stat(path); err == nil {
		return CheckDirectoryAccess(name, path, AccessReadWrite)
	}
	parent := filepath.Dir(path)
	for {
		if _, err := os.Stat(parent); err == nil {
			break
		}
		next := filepath.Dir(parent)
		if next == parent {
			break
		}
		parent = next
	}
	if err := checkAccess(parent, AccessReadWrite); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: cannot create under %s: %v)", path, parent, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (will be created)", path)}
}

// CheckPresets parses every preset file in dir. A missing directory passes
// with nothing to check.
func CheckPresets(name, dir, exclude string) Result {
	names, err := preset.List(dir)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", dir, err)}
	}
	checked := 0
	for _, n := range names {
		if n+preset.Extension == exclude {
			continue
		}
		if _, err := preset.Load(filepath.Join(dir, n+preset.Extension)); err != nil {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", n, err)}
		}
		checked++
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d presets parse", checked)}
}

// CheckPacker verifies the packer binary exists and is executable.
func CheckPacker(command string) Result {
	const name = "Packer"
	if command == "" {
		return Result{Name: name, Detail: "command not configured"}
	}
	path, err := exec.LookPath(command)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("binary %q not found", command)}
	}
	if err := checkAccess(path, AccessExecute); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not executable: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: path}
}
