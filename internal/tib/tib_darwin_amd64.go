package tib

/*
#include <pthread.h>

static pthread_key_t linoodle_tib_key;
static pthread_once_t linoodle_tib_once = PTHREAD_ONCE_INIT;

static void linoodle_make_tib_key(void) {
	pthread_key_create(&linoodle_tib_key, 0);
}

static void linoodle_set_tib(void *p) {
	pthread_once(&linoodle_tib_once, linoodle_make_tib_key);
	pthread_setspecific(linoodle_tib_key, p);
}

static void *linoodle_get_tib(void) {
	pthread_once(&linoodle_tib_once, linoodle_make_tib_key);
	return pthread_getspecific(linoodle_tib_key);
}

static unsigned long long linoodle_self(void) {
	return (unsigned long long)(uintptr_t)pthread_self();
}
*/
import "C"

import "unsafe"

// osThreadKey identifies the calling OS thread. macOS has no gettid(2);
// pthread_self returns a stable, per-thread opaque identity instead.
func osThreadKey() int64 {
	return int64(C.linoodle_self())
}

// SetupCall zeroes the calling thread's TIB and stores its address in a
// process-wide thread-specific-data slot, mirroring
// windows_library.cpp's macOS branch: "use the thread-specific data
// (TSD) APIs to achieve a similar effect" since there is no direct gs
// -base syscall on this platform. TIBFromTSD reads the slot back; no
// internal/winapi shim function calls it.
func SetupCall() error {
	t := currentTIB()
	C.linoodle_set_tib(unsafe.Pointer(t))
	return nil
}

// TIBFromTSD returns the calling thread's TIB via the pthread TSD slot
// SetupCall populated, for shim code that cannot rely on a gs-relative
// read the way Linux can.
func TIBFromTSD() *TIB {
	return (*TIB)(C.linoodle_get_tib())
}
