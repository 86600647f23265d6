// Package diag is the loader's minimal debug-logging facility: a single
// process-wide verbosity flag and a pair of helpers that write to stderr
// when it is set. It mirrors how the rest of this lineage of code gates
// diagnostic output on a package-level flag rather than pulling in a
// structured logging library.
package diag

import (
	"fmt"
	"os"
)

// Verbose gates every Printf/Println call in this package. internal/config
// sets it from LINOODLE_DEBUG the first time config.Init runs (at the
// latest on the first search-list lookup); cmd/linoodle-load additionally
// turns it on for its -v flag.
var Verbose bool

// Printf writes a formatted diagnostic line to stderr if Verbose is set.
func Printf(format string, args ...any) {
	if !Verbose {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

// Println writes a diagnostic line to stderr if Verbose is set.
func Println(args ...any) {
	if !Verbose {
		return
	}
	fmt.Fprintln(os.Stderr, args...)
}
