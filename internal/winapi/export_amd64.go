package winapi

/*
#include <stdint.h>
*/
import "C"

// These are the Go-callable halves of the shim: plain exported
// functions whose every parameter and result (where there is one) is a
// uint64, matched to the
// Microsoft x64 convention on the C side by cabi_amd64.go's
// __attribute__((ms_abi)) forwarders. Keeping the shape uniform here
// means the only place that has to reason about the DLL's actual
// calling convention is the tiny C layer, not this file.

//export linoodle_goGetSystemInfo
func linoodle_goGetSystemInfo(lpSystemInfo C.uint64_t) {
	getSystemInfo(uintptr(lpSystemInfo))
}

//export linoodle_goVirtualAlloc
func linoodle_goVirtualAlloc(lpAddress, dwSize, flAllocationType, flProtect C.uint64_t) C.uint64_t {
	return C.uint64_t(virtualAlloc(uintptr(lpAddress), uintptr(dwSize), uintptr(flAllocationType), uintptr(flProtect)))
}

//export linoodle_goVirtualFree
func linoodle_goVirtualFree(lpAddress, dwSize, dwFreeType C.uint64_t) C.uint64_t {
	return C.uint64_t(virtualFree(uintptr(lpAddress), uintptr(dwSize), uintptr(dwFreeType)))
}

//export linoodle_goVirtualProtect
func linoodle_goVirtualProtect(lpAddress, dwSize, flNewProtect, lpflOldProtect C.uint64_t) C.uint64_t {
	return C.uint64_t(virtualProtect(uintptr(lpAddress), uintptr(dwSize), uintptr(flNewProtect), uintptr(lpflOldProtect)))
}

//export linoodle_goTlsAlloc
func linoodle_goTlsAlloc() C.uint64_t {
	return C.uint64_t(tlsAlloc())
}

//export linoodle_goTlsFree
func linoodle_goTlsFree(dwTlsIndex C.uint64_t) C.uint64_t {
	return C.uint64_t(tlsFree(uintptr(dwTlsIndex)))
}

//export linoodle_goTlsGetValue
func linoodle_goTlsGetValue(dwTlsIndex C.uint64_t) C.uint64_t {
	return C.uint64_t(tlsGetValue(uintptr(dwTlsIndex)))
}

//export linoodle_goTlsSetValue
func linoodle_goTlsSetValue(dwTlsIndex, lpTlsValue C.uint64_t) C.uint64_t {
	return C.uint64_t(tlsSetValue(uintptr(dwTlsIndex), uintptr(lpTlsValue)))
}

//export linoodle_goInitializeCriticalSection
func linoodle_goInitializeCriticalSection(lpCriticalSection C.uint64_t) {
	initializeCriticalSection(uintptr(lpCriticalSection))
}

//export linoodle_goEnterCriticalSection
func linoodle_goEnterCriticalSection(lpCriticalSection C.uint64_t) {
	enterCriticalSection(uintptr(lpCriticalSection))
}

//export linoodle_goLeaveCriticalSection
func linoodle_goLeaveCriticalSection(lpCriticalSection C.uint64_t) {
	leaveCriticalSection(uintptr(lpCriticalSection))
}

//export linoodle_goDeleteCriticalSection
func linoodle_goDeleteCriticalSection(lpCriticalSection C.uint64_t) {
	deleteCriticalSection(uintptr(lpCriticalSection))
}

//export linoodle_goCreateThread
func linoodle_goCreateThread(lpThreadAttributes, dwStackSize, lpStartAddress, lpParameter, dwCreationFlags, lpThreadId C.uint64_t) C.uint64_t {
	return C.uint64_t(createThread(uintptr(lpThreadAttributes), uintptr(dwStackSize), uintptr(lpStartAddress), uintptr(lpParameter), uintptr(dwCreationFlags), uintptr(lpThreadId)))
}

//export linoodle_goGetCurrentThreadId
func linoodle_goGetCurrentThreadId() C.uint64_t {
	return C.uint64_t(getCurrentThreadID())
}

//export linoodle_goQueryPerformanceCounter
func linoodle_goQueryPerformanceCounter(lpPerformanceCount C.uint64_t) C.uint64_t {
	return C.uint64_t(queryPerformanceCounter(uintptr(lpPerformanceCount)))
}

//export linoodle_goQueryPerformanceFrequency
func linoodle_goQueryPerformanceFrequency(lpFrequency C.uint64_t) C.uint64_t {
	return C.uint64_t(queryPerformanceFrequency(uintptr(lpFrequency)))
}

//export linoodle_goGetTickCount64
func linoodle_goGetTickCount64() C.uint64_t {
	return C.uint64_t(getTickCount64())
}

//export linoodle_goSleep
func linoodle_goSleep(dwMilliseconds C.uint64_t) {
	sleepMillis(uintptr(dwMilliseconds))
}

//export linoodle_goMemcpy
func linoodle_goMemcpy(dst, src, n C.uint64_t) C.uint64_t {
	return C.uint64_t(memcpy(uintptr(dst), uintptr(src), uintptr(n)))
}

//export linoodle_goMemmove
func linoodle_goMemmove(dst, src, n C.uint64_t) C.uint64_t {
	return C.uint64_t(memmove(uintptr(dst), uintptr(src), uintptr(n)))
}

//export linoodle_goMemset
func linoodle_goMemset(dst, c, n C.uint64_t) C.uint64_t {
	return C.uint64_t(memset(uintptr(dst), uintptr(c), uintptr(n)))
}

//export linoodle_goStrlen
func linoodle_goStrlen(s C.uint64_t) C.uint64_t {
	return C.uint64_t(strlen(uintptr(s)))
}

//export linoodle_goMalloc
func linoodle_goMalloc(size C.uint64_t) C.uint64_t {
	return C.uint64_t(mallocHeap(uintptr(size)))
}

//export linoodle_goFree
func linoodle_goFree(ptr C.uint64_t) {
	freeHeap(uintptr(ptr))
}
