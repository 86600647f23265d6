// Package config reads the handful of environment variables this loader
// consults (spec section 6) through github.com/xyproto/env, the same
// env-reading dependency the rest of this codebase's lineage already
// carries, and wires the debug flag into internal/diag exactly once.
package config

import (
	"sync"

	"github.com/xyproto/env/v2"

	"github.com/clouds56-contrib/linoodle/internal/diag"
)

const (
	envLDLibraryPath = "LD_LIBRARY_PATH"
	envDebug         = "LINOODLE_DEBUG"
)

var once sync.Once

// Init reads LINOODLE_DEBUG and wires internal/diag.Verbose from it. It is
// idempotent and safe to call from multiple entry points (FindLibrary and
// Load both depend on it having run).
func Init() {
	once.Do(func() {
		diag.Verbose = env.Bool(envDebug)
	})
}

// LDLibraryPath returns the raw LD_LIBRARY_PATH value, or "" if unset.
func LDLibraryPath() string {
	return env.Str(envLDLibraryPath)
}
