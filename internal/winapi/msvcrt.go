package winapi

import (
	"sync"
	"unsafe"
)

func memcpy(dst, src, n uintptr) uintptr {
	if n == 0 {
		return dst
	}
	d := unsafe.Slice((*byte)(unsafe.Pointer(dst)), n)
	s := unsafe.Slice((*byte)(unsafe.Pointer(src)), n)
	copy(d, s)
	return dst
}

// memmove relies on Go's copy() handling overlapping source and
// destination slices correctly, same as the C standard requires of
// memmove (but not memcpy).
func memmove(dst, src, n uintptr) uintptr {
	return memcpy(dst, src, n)
}

func memset(dst, c, n uintptr) uintptr {
	if n == 0 {
		return dst
	}
	d := unsafe.Slice((*byte)(unsafe.Pointer(dst)), n)
	b := byte(c)
	for i := range d {
		d[i] = b
	}
	return dst
}

func strlen(s uintptr) uintptr {
	var n uintptr
	for *(*byte)(unsafe.Pointer(s + n)) != 0 {
		n++
	}
	return n
}

// Host-heap allocations handed out to the DLL via malloc must stay
// reachable from Go's perspective — nothing else in this process holds
// a Go-visible reference to them — so the backing slices are pinned
// here until free() is called.
var (
	heapMu sync.Mutex
	heap   = map[uintptr][]byte{}
)

func mallocHeap(size uintptr) uintptr {
	if size == 0 {
		return 0
	}
	buf := make([]byte, size)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	heapMu.Lock()
	heap[addr] = buf
	heapMu.Unlock()
	return addr
}

func freeHeap(ptr uintptr) {
	if ptr == 0 {
		return
	}
	heapMu.Lock()
	delete(heap, ptr)
	heapMu.Unlock()
}
