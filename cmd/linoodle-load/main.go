// Command linoodle-load is a manual smoke harness, not the library's
// deliverable surface: point it at a PE32+ DLL and it loads it, reports
// what it found, and exits. Modeled on the teacher's cffi_demo.go, which
// exists for the same reason — a runnable sanity check a developer reaches
// for before trusting the package in a real host process.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/clouds56-contrib/linoodle/internal/config"
	"github.com/clouds56-contrib/linoodle/internal/diag"
	"github.com/clouds56-contrib/linoodle/internal/loader"
)

func main() {
	verbose := flag.Bool("v", false, "enable diagnostic logging")
	flag.Parse()
	// Run config.Init first so its LINOODLE_DEBUG read cannot later
	// overwrite the -v setting when Load consults the search list.
	config.Init()
	if *verbose {
		diag.Verbose = true
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: linoodle-load [-v] <dll-name-or-path>")
		os.Exit(2)
	}
	name := flag.Arg(0)

	fmt.Printf("=== linoodle-load: %s ===\n\n", name)

	lib, err := loader.Load(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load failed: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := lib.Unload(); err != nil {
			fmt.Fprintf(os.Stderr, "unload: %v\n", err)
		}
	}()

	fmt.Printf("mapped at base %#x\n\n", lib.Base())

	fmt.Println("exports:")
	names := exportNames(lib)
	for _, n := range names {
		addr, _ := lib.Export(n)
		fmt.Printf("  %s -> %#x\n", n, addr)
	}

	fmt.Printf("\n=== %d export(s) ===\n", len(names))
}

func exportNames(lib *loader.Library) []string {
	var names []string
	for _, n := range probeCommonNames() {
		if _, ok := lib.Export(n); ok {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

// probeCommonNames is a small, hand-maintained list of export names this
// harness knows to look for, since Library deliberately exposes no way to
// enumerate every export at once (see internal/loader.Library.Export).
func probeCommonNames() []string {
	return []string{
		"OodleLZ_Decompress",
		"OodleLZ_Compress",
		"OodleLZ_CompressOptions_GetDefault",
		"OodleLZ_GetCompressedBufferSizeNeeded",
		"OodleLZ_GetDecodeBufferSize",
	}
}
