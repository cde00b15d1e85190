// Package paths resolves the process-scoped directories the hosting
// application works from: the executable location, the project directory
// containing it and the assets directory underneath. Resolution happens
// lazily on first use and the result is fixed for the lifetime of the
// process.
package paths

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"

	"github.com/keymint/keymint/tracing"
)

const assetsDirName = "assets"

var (
	once       sync.Once
	executable string
	resolveErr error
)

// Init pins the executable path explicitly instead of asking the
// operating system. Hosts call it early in main (typically with
// os.Args[0]); tests use it to point the package at a scratch directory.
// Only the first resolution wins - later Init calls and lazy resolution
// are no-ops once the paths are fixed.
func Init(execPath string) {
	once.Do(func() {
		executable, resolveErr = filepath.Abs(execPath)
	})
}

func resolve() {
	once.Do(func() {
		exe, err := os.Executable()
		if err != nil {
			resolveErr = err
			return
		}
		executable, resolveErr = filepath.Abs(exe)
	})
}

// Initialized reports whether the paths have been resolved yet, by
// either Init or a previous accessor call.
func Initialized() bool {
	return executable != "" || resolveErr != nil
}

// Executable returns the absolute path of the running binary.
func Executable() (string, error) {
	resolve()
	return executable, resolveErr
}

// ProjectDir returns the directory containing the executable.
func ProjectDir() (string, error) {
	exe, err := Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// AssetsDir returns the assets directory under ProjectDir. The directory
// is not required to exist; see EnsureAssetsDir.
func AssetsDir() (string, error) {
	dir, err := ProjectDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, assetsDirName), nil
}

// EnsureAssetsDir returns the assets directory, creating it when absent.
func EnsureAssetsDir(ctx context.Context) (string, error) {
	ctx, span := tracing.StartSpan(ctx, "paths.ensureAssetsDir")
	var err error
	defer func() { tracing.EndSpan(span, err) }()

	dir, err := AssetsDir()
	if err != nil {
		return "", err
	}
	fs := afs.New()
	exists, err := fs.Exists(ctx, dir)
	if err != nil {
		return "", err
	}
	if !exists {
		if err = fs.Create(ctx, dir, file.DefaultDirOsMode, true); err != nil {
			return "", err
		}
	}
	span.WithAttributes(map[string]string{"dir": dir})
	return dir, nil
}
