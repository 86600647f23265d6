// Package memmap owns anonymous virtual-memory regions on behalf of the
// loader: reserve a page-aligned, zero-filled region of a fixed size,
// adjust per-range protection as the load pipeline progresses, and
// release the whole region exactly once.
//
// This is the Go analogue of original_source/windows_library.cpp's
// MappedMemory: a (pointer, size) pair that is exclusively owned and
// whose destructor is a no-op once released. Go has no destructors, so
// callers are responsible for calling Release when they are done (the
// loader does this via defer in internal/loader, and pkg/oodle never
// releases the region it owns for the process lifetime).
package memmap

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/clouds56-contrib/linoodle/internal/loaderr"
)

// Region is a contiguous anonymous mapping. The zero value is not usable;
// construct one with Reserve.
type Region struct {
	data     []byte
	released bool
}

// Reserve allocates size bytes of anonymous, readable-and-writable memory.
// The mapping is zero-filled on return, matching mmap(MAP_ANONYMOUS)'s
// guarantee that callers rely on for section tails whose VirtualSize
// exceeds their raw data length.
func Reserve(size int) (*Region, error) {
	if size <= 0 {
		return nil, loaderr.Newf(loaderr.AllocError, "invalid region size %d", size)
	}
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, loaderr.Wrapf(loaderr.AllocError, err, "mmap %d bytes", size)
	}
	return &Region{data: data}, nil
}

// Base returns the address of the first byte of the region.
func (r *Region) Base() uintptr {
	if len(r.data) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&r.data[0]))
}

// Size returns the region's byte size.
func (r *Region) Size() int {
	return len(r.data)
}

// Bytes returns the region's backing slice. Callers use this to copy
// headers and section data into place during Load.
func (r *Region) Bytes() []byte {
	return r.data
}

// Contains reports whether addr lies within [Base, Base+Size).
func (r *Region) Contains(addr uintptr) bool {
	base := r.Base()
	return addr >= base && addr < base+uintptr(r.Size())
}

// Protect changes the protection of the byte range [offset, offset+length)
// within the region. The region base is page aligned, so offset must be a
// multiple of the page size or mprotect fails (reported as AllocError);
// length need not be, as the kernel rounds it up to whole pages. This
// matches the original's direct mprotect calls over section
// VirtualAddress/VirtualSize ranges.
func (r *Region) Protect(offset, length int, prot int) error {
	if offset < 0 || length < 0 || offset+length > len(r.data) {
		return loaderr.Newf(loaderr.LayoutError, "protect range [%d,%d) outside region of size %d", offset, offset+length, len(r.data))
	}
	if length == 0 {
		return nil
	}
	if err := unix.Mprotect(r.data[offset:offset+length], prot); err != nil {
		return loaderr.Wrapf(loaderr.AllocError, err, "mprotect [%d,%d) prot=%#x", offset, offset+length, prot)
	}
	return nil
}

// Release unmaps the region. It is safe to call more than once; only the
// first call has an effect, mirroring MappedMemory's null-base no-op
// destructor.
func (r *Region) Release() error {
	if r.released || len(r.data) == 0 {
		r.released = true
		return nil
	}
	r.released = true
	data := r.data
	r.data = nil
	if err := unix.Munmap(data); err != nil {
		return loaderr.Wrapf(loaderr.AllocError, err, "munmap")
	}
	return nil
}
