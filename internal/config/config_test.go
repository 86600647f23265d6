package config

import (
	"os"
	"testing"

	"github.com/clouds56-contrib/linoodle/internal/diag"
)

func TestLDLibraryPath(t *testing.T) {
	old, had := os.LookupEnv(envLDLibraryPath)
	if had {
		defer os.Setenv(envLDLibraryPath, old)
	} else {
		defer os.Unsetenv(envLDLibraryPath)
	}

	os.Setenv(envLDLibraryPath, "/opt/lib:/custom/lib")
	if got, want := LDLibraryPath(), "/opt/lib:/custom/lib"; got != want {
		t.Errorf("LDLibraryPath() = %q, want %q", got, want)
	}

	os.Unsetenv(envLDLibraryPath)
	if got := LDLibraryPath(); got != "" {
		t.Errorf("LDLibraryPath() with unset var = %q, want empty", got)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	old, had := os.LookupEnv(envDebug)
	if had {
		defer os.Setenv(envDebug, old)
	} else {
		defer os.Unsetenv(envDebug)
	}
	prevVerbose := diag.Verbose
	defer func() { diag.Verbose = prevVerbose }()

	// once.Do means later env changes after the first Init call in this
	// process are not observed; this test only documents that Init does
	// not panic or error when called repeatedly.
	os.Setenv(envDebug, "true")
	Init()
	Init()
}
