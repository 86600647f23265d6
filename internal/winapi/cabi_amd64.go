package winapi

/*
#include <stdint.h>
#include "_cgo_export.h"

// Every shim function the loaded DLL can import is typed here with
// __attribute__((ms_abi)) — the same GCC/Clang extension
// original_source/linoodle.cpp uses for its own DLL function pointers —
// so the compiler emits a Microsoft x64 entry sequence that unpacks
// rcx/rdx/r8/r9 and any stack arguments before handing off to the
// ordinary Go function cgo exports from export_amd64.go. No hand-written assembly is
// involved on either side of this boundary.

__attribute__((ms_abi)) void linoodle_GetSystemInfo(uint64_t lpSystemInfo) {
	linoodle_goGetSystemInfo(lpSystemInfo);
}

__attribute__((ms_abi)) uint64_t linoodle_VirtualAlloc(uint64_t lpAddress, uint64_t dwSize, uint64_t flAllocationType, uint64_t flProtect) {
	return linoodle_goVirtualAlloc(lpAddress, dwSize, flAllocationType, flProtect);
}

__attribute__((ms_abi)) uint64_t linoodle_VirtualFree(uint64_t lpAddress, uint64_t dwSize, uint64_t dwFreeType) {
	return linoodle_goVirtualFree(lpAddress, dwSize, dwFreeType);
}

__attribute__((ms_abi)) uint64_t linoodle_VirtualProtect(uint64_t lpAddress, uint64_t dwSize, uint64_t flNewProtect, uint64_t lpflOldProtect) {
	return linoodle_goVirtualProtect(lpAddress, dwSize, flNewProtect, lpflOldProtect);
}

__attribute__((ms_abi)) uint64_t linoodle_TlsAlloc(void) {
	return linoodle_goTlsAlloc();
}

__attribute__((ms_abi)) uint64_t linoodle_TlsFree(uint64_t dwTlsIndex) {
	return linoodle_goTlsFree(dwTlsIndex);
}

__attribute__((ms_abi)) uint64_t linoodle_TlsGetValue(uint64_t dwTlsIndex) {
	return linoodle_goTlsGetValue(dwTlsIndex);
}

__attribute__((ms_abi)) uint64_t linoodle_TlsSetValue(uint64_t dwTlsIndex, uint64_t lpTlsValue) {
	return linoodle_goTlsSetValue(dwTlsIndex, lpTlsValue);
}

__attribute__((ms_abi)) void linoodle_InitializeCriticalSection(uint64_t lpCriticalSection) {
	linoodle_goInitializeCriticalSection(lpCriticalSection);
}

__attribute__((ms_abi)) void linoodle_EnterCriticalSection(uint64_t lpCriticalSection) {
	linoodle_goEnterCriticalSection(lpCriticalSection);
}

__attribute__((ms_abi)) void linoodle_LeaveCriticalSection(uint64_t lpCriticalSection) {
	linoodle_goLeaveCriticalSection(lpCriticalSection);
}

__attribute__((ms_abi)) void linoodle_DeleteCriticalSection(uint64_t lpCriticalSection) {
	linoodle_goDeleteCriticalSection(lpCriticalSection);
}

__attribute__((ms_abi)) uint64_t linoodle_CreateThread(uint64_t lpThreadAttributes, uint64_t dwStackSize, uint64_t lpStartAddress, uint64_t lpParameter, uint64_t dwCreationFlags, uint64_t lpThreadId) {
	return linoodle_goCreateThread(lpThreadAttributes, dwStackSize, lpStartAddress, lpParameter, dwCreationFlags, lpThreadId);
}

__attribute__((ms_abi)) uint64_t linoodle_GetCurrentThreadId(void) {
	return linoodle_goGetCurrentThreadId();
}

__attribute__((ms_abi)) uint64_t linoodle_QueryPerformanceCounter(uint64_t lpPerformanceCount) {
	return linoodle_goQueryPerformanceCounter(lpPerformanceCount);
}

__attribute__((ms_abi)) uint64_t linoodle_QueryPerformanceFrequency(uint64_t lpFrequency) {
	return linoodle_goQueryPerformanceFrequency(lpFrequency);
}

__attribute__((ms_abi)) uint64_t linoodle_GetTickCount64(void) {
	return linoodle_goGetTickCount64();
}

__attribute__((ms_abi)) void linoodle_Sleep(uint64_t dwMilliseconds) {
	linoodle_goSleep(dwMilliseconds);
}

__attribute__((ms_abi)) uint64_t linoodle_memcpy(uint64_t dst, uint64_t src, uint64_t n) {
	return linoodle_goMemcpy(dst, src, n);
}

__attribute__((ms_abi)) uint64_t linoodle_memmove(uint64_t dst, uint64_t src, uint64_t n) {
	return linoodle_goMemmove(dst, src, n);
}

__attribute__((ms_abi)) uint64_t linoodle_memset(uint64_t dst, uint64_t c, uint64_t n) {
	return linoodle_goMemset(dst, c, n);
}

__attribute__((ms_abi)) uint64_t linoodle_strlen(uint64_t s) {
	return linoodle_goStrlen(s);
}

__attribute__((ms_abi)) uint64_t linoodle_malloc(uint64_t size) {
	return linoodle_goMalloc(size);
}

__attribute__((ms_abi)) void linoodle_free(uint64_t ptr) {
	linoodle_goFree(ptr);
}

static void *linoodle_addr_GetSystemInfo              = (void*)linoodle_GetSystemInfo;
static void *linoodle_addr_VirtualAlloc               = (void*)linoodle_VirtualAlloc;
static void *linoodle_addr_VirtualFree                = (void*)linoodle_VirtualFree;
static void *linoodle_addr_VirtualProtect             = (void*)linoodle_VirtualProtect;
static void *linoodle_addr_TlsAlloc                   = (void*)linoodle_TlsAlloc;
static void *linoodle_addr_TlsFree                    = (void*)linoodle_TlsFree;
static void *linoodle_addr_TlsGetValue                = (void*)linoodle_TlsGetValue;
static void *linoodle_addr_TlsSetValue                = (void*)linoodle_TlsSetValue;
static void *linoodle_addr_InitializeCriticalSection   = (void*)linoodle_InitializeCriticalSection;
static void *linoodle_addr_EnterCriticalSection        = (void*)linoodle_EnterCriticalSection;
static void *linoodle_addr_LeaveCriticalSection        = (void*)linoodle_LeaveCriticalSection;
static void *linoodle_addr_DeleteCriticalSection       = (void*)linoodle_DeleteCriticalSection;
static void *linoodle_addr_CreateThread                = (void*)linoodle_CreateThread;
static void *linoodle_addr_GetCurrentThreadId          = (void*)linoodle_GetCurrentThreadId;
static void *linoodle_addr_QueryPerformanceCounter     = (void*)linoodle_QueryPerformanceCounter;
static void *linoodle_addr_QueryPerformanceFrequency   = (void*)linoodle_QueryPerformanceFrequency;
static void *linoodle_addr_GetTickCount64              = (void*)linoodle_GetTickCount64;
static void *linoodle_addr_Sleep                       = (void*)linoodle_Sleep;
static void *linoodle_addr_memcpy                      = (void*)linoodle_memcpy;
static void *linoodle_addr_memmove                     = (void*)linoodle_memmove;
static void *linoodle_addr_memset                      = (void*)linoodle_memset;
static void *linoodle_addr_strlen                      = (void*)linoodle_strlen;
static void *linoodle_addr_malloc                      = (void*)linoodle_malloc;
static void *linoodle_addr_free                        = (void*)linoodle_free;
*/
import "C"

func init() {
	Register("kernel32.dll", "GetSystemInfo", uintptr(C.linoodle_addr_GetSystemInfo))
	Register("kernel32.dll", "VirtualAlloc", uintptr(C.linoodle_addr_VirtualAlloc))
	Register("kernel32.dll", "VirtualFree", uintptr(C.linoodle_addr_VirtualFree))
	Register("kernel32.dll", "VirtualProtect", uintptr(C.linoodle_addr_VirtualProtect))
	Register("kernel32.dll", "TlsAlloc", uintptr(C.linoodle_addr_TlsAlloc))
	Register("kernel32.dll", "TlsFree", uintptr(C.linoodle_addr_TlsFree))
	Register("kernel32.dll", "TlsGetValue", uintptr(C.linoodle_addr_TlsGetValue))
	Register("kernel32.dll", "TlsSetValue", uintptr(C.linoodle_addr_TlsSetValue))
	Register("kernel32.dll", "InitializeCriticalSection", uintptr(C.linoodle_addr_InitializeCriticalSection))
	Register("kernel32.dll", "EnterCriticalSection", uintptr(C.linoodle_addr_EnterCriticalSection))
	Register("kernel32.dll", "LeaveCriticalSection", uintptr(C.linoodle_addr_LeaveCriticalSection))
	Register("kernel32.dll", "DeleteCriticalSection", uintptr(C.linoodle_addr_DeleteCriticalSection))
	Register("kernel32.dll", "CreateThread", uintptr(C.linoodle_addr_CreateThread))
	Register("kernel32.dll", "GetCurrentThreadId", uintptr(C.linoodle_addr_GetCurrentThreadId))
	Register("kernel32.dll", "QueryPerformanceCounter", uintptr(C.linoodle_addr_QueryPerformanceCounter))
	Register("kernel32.dll", "QueryPerformanceFrequency", uintptr(C.linoodle_addr_QueryPerformanceFrequency))
	Register("kernel32.dll", "GetTickCount64", uintptr(C.linoodle_addr_GetTickCount64))
	Register("kernel32.dll", "Sleep", uintptr(C.linoodle_addr_Sleep))

	Register("msvcrt.dll", "memcpy", uintptr(C.linoodle_addr_memcpy))
	Register("msvcrt.dll", "memmove", uintptr(C.linoodle_addr_memmove))
	Register("msvcrt.dll", "memset", uintptr(C.linoodle_addr_memset))
	Register("msvcrt.dll", "strlen", uintptr(C.linoodle_addr_strlen))
	Register("msvcrt.dll", "malloc", uintptr(C.linoodle_addr_malloc))
	Register("msvcrt.dll", "free", uintptr(C.linoodle_addr_free))
}
