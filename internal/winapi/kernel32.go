package winapi

import (
	"runtime"
	"sync"
	"time"
	"unsafe"

	"github.com/clouds56-contrib/linoodle/internal/abi"
	"github.com/clouds56-contrib/linoodle/internal/diag"
	"github.com/clouds56-contrib/linoodle/internal/memmap"
	"github.com/clouds56-contrib/linoodle/internal/tib"
)

const (
	processorArchitectureAMD64 = 9
	pageSize                   = 4096
)

type systemInfo struct {
	wProcessorArchitecture     uint16
	wReserved                  uint16
	dwPageSize                 uint32
	lpMinimumApplicationAddr   uint64
	lpMaximumApplicationAddr   uint64
	dwActiveProcessorMask      uint64
	dwNumberOfProcessors       uint32
	dwProcessorType            uint32
	dwAllocationGranularity    uint32
	wProcessorLevel            uint16
	wProcessorRevision         uint16
}

// getSystemInfo fills the SYSTEM_INFO-shaped block at lpSystemInfo with
// plausible values; the loaded DLL is only ever observed reading
// dwPageSize and dwNumberOfProcessors.
func getSystemInfo(lpSystemInfo uintptr) {
	si := (*systemInfo)(unsafe.Pointer(lpSystemInfo))
	*si = systemInfo{
		wProcessorArchitecture:  processorArchitectureAMD64,
		dwPageSize:              pageSize,
		dwActiveProcessorMask:   1,
		dwNumberOfProcessors:    uint32(runtime.NumCPU()),
		dwAllocationGranularity: pageSize,
	}
}

var (
	allocMu  sync.Mutex
	allocs   = map[uintptr]*memmap.Region{}
)

const (
	memCommit  = 0x00001000
	memReserve = 0x00002000
)

const (
	pageNoAccess  = 0x01
	pageReadOnly  = 0x02
	pageReadWrite = 0x04
	pageExecute   = 0x10
	pageExecRead  = 0x20
	pageExecRW    = 0x40
)

func pageProtectToUnixProt(flProtect uintptr) int {
	const (
		protRead  = 0x1
		protWrite = 0x2
		protExec  = 0x4
	)
	switch flProtect & 0xff {
	case pageNoAccess:
		return 0
	case pageReadOnly:
		return protRead
	case pageReadWrite:
		return protRead | protWrite
	case pageExecute:
		return protExec
	case pageExecRead:
		return protExec | protRead
	case pageExecRW:
		return protExec | protRead | protWrite
	default:
		return protRead | protWrite
	}
}

// virtualAlloc ignores the caller's requested address (lpAddress) —
// this shim never tries to honor a specific base — and reserves a fresh
// anonymous region of dwSize bytes, tracked so VirtualFree/VirtualProtect
// can find it again by base address.
func virtualAlloc(lpAddress, dwSize, flAllocationType, flProtect uintptr) uintptr {
	if dwSize == 0 {
		return 0
	}
	region, err := memmap.Reserve(int(dwSize))
	if err != nil {
		diag.Printf("winapi: VirtualAlloc(%d): %v\n", dwSize, err)
		return 0
	}
	base := region.Base()
	allocMu.Lock()
	allocs[base] = region
	allocMu.Unlock()
	return base
}

func virtualFree(lpAddress, dwSize, dwFreeType uintptr) uintptr {
	allocMu.Lock()
	region, ok := allocs[lpAddress]
	if ok {
		delete(allocs, lpAddress)
	}
	allocMu.Unlock()
	if !ok {
		return 0
	}
	if err := region.Release(); err != nil {
		diag.Printf("winapi: VirtualFree(%#x): %v\n", lpAddress, err)
		return 0
	}
	return 1
}

func virtualProtect(lpAddress, dwSize, flNewProtect, lpflOldProtect uintptr) uintptr {
	allocMu.Lock()
	var owner *memmap.Region
	var base uintptr
	for b, r := range allocs {
		if r.Contains(lpAddress) {
			owner, base = r, b
			break
		}
	}
	allocMu.Unlock()
	if owner == nil {
		return 0
	}
	if lpflOldProtect != 0 {
		*(*uint32)(unsafe.Pointer(lpflOldProtect)) = pageReadWrite
	}
	offset := int(lpAddress - base)
	if err := owner.Protect(offset, int(dwSize), pageProtectToUnixProt(flNewProtect)); err != nil {
		diag.Printf("winapi: VirtualProtect(%#x): %v\n", lpAddress, err)
		return 0
	}
	return 1
}

var (
	tlsMu    sync.Mutex
	tlsNext  uintptr = 1
	tlsSlots         = map[uintptr]bool{}
	tlsValue         = map[[2]uintptr]uintptr{} // [index, threadID] -> value
)

func tlsAlloc() uintptr {
	tlsMu.Lock()
	defer tlsMu.Unlock()
	idx := tlsNext
	tlsNext++
	tlsSlots[idx] = true
	return idx
}

func tlsFree(dwTlsIndex uintptr) uintptr {
	tlsMu.Lock()
	defer tlsMu.Unlock()
	if !tlsSlots[dwTlsIndex] {
		return 0
	}
	delete(tlsSlots, dwTlsIndex)
	for k := range tlsValue {
		if k[0] == dwTlsIndex {
			delete(tlsValue, k)
		}
	}
	return 1
}

func tlsGetValue(dwTlsIndex uintptr) uintptr {
	tlsMu.Lock()
	defer tlsMu.Unlock()
	return tlsValue[[2]uintptr{dwTlsIndex, uintptr(tib.CurrentThreadID())}]
}

func tlsSetValue(dwTlsIndex, lpTlsValue uintptr) uintptr {
	tlsMu.Lock()
	defer tlsMu.Unlock()
	tlsValue[[2]uintptr{dwTlsIndex, uintptr(tib.CurrentThreadID())}] = lpTlsValue
	return 1
}

var (
	csMu  sync.Mutex
	csSet = map[uintptr]*sync.Mutex{}
)

func initializeCriticalSection(lpCriticalSection uintptr) {
	csMu.Lock()
	defer csMu.Unlock()
	if _, ok := csSet[lpCriticalSection]; !ok {
		csSet[lpCriticalSection] = &sync.Mutex{}
	}
}

func enterCriticalSection(lpCriticalSection uintptr) {
	csMu.Lock()
	m, ok := csSet[lpCriticalSection]
	csMu.Unlock()
	if !ok {
		return
	}
	m.Lock()
}

func leaveCriticalSection(lpCriticalSection uintptr) {
	csMu.Lock()
	m, ok := csSet[lpCriticalSection]
	csMu.Unlock()
	if !ok {
		return
	}
	m.Unlock()
}

func deleteCriticalSection(lpCriticalSection uintptr) {
	csMu.Lock()
	defer csMu.Unlock()
	delete(csSet, lpCriticalSection)
}

// createThread spawns a goroutine locked to its own OS thread, installs
// a TIB for it, then invokes lpStartAddress under the Microsoft x64
// convention with lpParameter as its sole argument — the DLL's thread
// entry points are themselves MS-ABI code, same as every other export.
func createThread(lpThreadAttributes, dwStackSize, lpStartAddress, lpParameter, dwCreationFlags, lpThreadId uintptr) uintptr {
	started := make(chan uint32, 1)
	go func() {
		runtime.LockOSThread()
		started <- tib.CurrentThreadID()
		if err := tib.SetupCall(); err != nil {
			diag.Printf("winapi: CreateThread: SetupCall: %v\n", err)
			return
		}
		abi.CallMSABI(lpStartAddress, lpParameter)
	}()
	id := <-started
	if lpThreadId != 0 {
		*(*uint32)(unsafe.Pointer(lpThreadId)) = id
	}
	return uintptr(id)
}

func getCurrentThreadID() uintptr {
	return uintptr(tib.CurrentThreadID())
}

// perfCounterUnit is nanoseconds; QueryPerformanceFrequency reports it
// back so ratios computed by the DLL come out in real seconds.
const perfCounterUnit = 1e9

func queryPerformanceCounter(lpPerformanceCount uintptr) uintptr {
	*(*int64)(unsafe.Pointer(lpPerformanceCount)) = time.Now().UnixNano()
	return 1
}

func queryPerformanceFrequency(lpFrequency uintptr) uintptr {
	*(*int64)(unsafe.Pointer(lpFrequency)) = perfCounterUnit
	return 1
}

var processStart = time.Now()

func getTickCount64() uintptr {
	return uintptr(time.Since(processStart).Milliseconds())
}

func sleepMillis(dwMilliseconds uintptr) {
	time.Sleep(time.Duration(dwMilliseconds) * time.Millisecond)
}
