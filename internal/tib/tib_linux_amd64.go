package tib

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// osThreadKey identifies the calling OS thread. gettid(2) is stable for
// the life of the thread and distinct across threads, which is all this
// package needs.
func osThreadKey() int64 {
	return int64(unix.Gettid())
}

// SetupCall zeroes the calling thread's TIB and installs its address as
// the gs segment base, so Windows code generated as `mov rax, gs:[n]`
// reads zeroed memory instead of faulting. Grounded on
// windows_library.cpp's `syscall(__NR_arch_prctl, ARCH_SET_GS, &s_tib)`.
func SetupCall() error {
	t := currentTIB()
	_, _, errno := unix.Syscall(unix.SYS_ARCH_PRCTL, unix.ARCH_SET_GS, uintptr(unsafe.Pointer(t)), 0)
	if errno != 0 {
		return errno
	}
	return nil
}
