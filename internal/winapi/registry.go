// Package winapi is the in-process Windows API shim: a name-indexed
// table mapping (module, symbol) to host-provided function pointers
// that a loaded DLL's import slots are bound against.
//
// Grounded on original_source/windows_library.cpp's
// `WindowsAPI::GetInstance().GetFunction(modName, symName)` call during
// import binding, and on the minimal surface linoodle.cpp's oo2core DLL
// is observed needing: memory allocation, synchronization primitives,
// thread-local storage, time, and a handful of msvcrt string/memory
// functions.
package winapi

import "strings"

type key struct {
	module string
	symbol string
}

func newKey(module, symbol string) key {
	return key{module: strings.ToLower(module), symbol: symbol}
}

var registry = map[key]uintptr{}

// Register stores addr — a pointer already callable under the
// Microsoft x64 convention — as the implementation of (module, symbol).
// Later registrations for the same pair overwrite earlier ones.
func Register(module, symbol string, addr uintptr) {
	registry[newKey(module, symbol)] = addr
}

// GetFunction returns the registered pointer for (module, symbol), or 0
// if nothing is registered — the loader leaves such import slots as the
// parser produced them, tolerating unresolved imports per spec.
func GetFunction(module, symbol string) uintptr {
	return registry[newKey(module, symbol)]
}
