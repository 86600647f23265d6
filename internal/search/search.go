// Package search implements the library-search fallback cascade spec.md
// §4.7 describes, ported directly from
// original_source/windows_library.cpp's WindowsLibrary::FindLibrary:
// paths already absolute or "./"-relative pass straight through; other
// names are resolved against a process-wide search list materialized
// once, in a fixed order.
package search

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/clouds56-contrib/linoodle/internal/config"
	"github.com/clouds56-contrib/linoodle/internal/diag"
)

var (
	once  sync.Once
	paths []string
)

func materialize() {
	config.Init()

	if ldLibraryPath := config.LDLibraryPath(); ldLibraryPath != "" {
		for _, p := range strings.Split(ldLibraryPath, ":") {
			if p != "" {
				paths = append(paths, p)
			}
		}
	}

	paths = append(paths, "/lib", "/usr/lib")

	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Dir(exe))
	}

	// original_source also appends the directory of the shared library
	// containing the loader itself, found via dladdr() on the address
	// of FindLibrary. Go has no dladdr equivalent without cgo, and this
	// loader is always linked into its caller's binary rather than
	// shipped as its own .so, so that entry is dropped rather than
	// faked (documented gap, see DESIGN.md).

	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, cwd)
	}

	if diag.Verbose {
		for _, p := range paths {
			diag.Println("search path:", p)
		}
	}
}

// FindLibrary resolves name to a filesystem path using the cascade
// above. Paths already absolute or explicitly relative ("./...") are
// returned unchanged without touching the search list at all. If no
// candidate exists anywhere on the list, name is returned unchanged so
// the caller's subsequent open/parse attempt produces the failure.
func FindLibrary(name string) string {
	if strings.HasPrefix(name, "/") || strings.HasPrefix(name, "./") {
		return name
	}

	once.Do(materialize)

	candidates := []string{name}
	if !strings.HasSuffix(name, ".dll") {
		candidates = append(candidates, name+".dll")
	}

	for _, dir := range paths {
		for _, candidate := range candidates {
			full := filepath.Join(dir, candidate)
			if _, err := os.Stat(full); err == nil {
				return full
			}
		}
	}
	return name
}
