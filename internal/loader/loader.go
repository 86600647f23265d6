// Package loader drives the load pipeline spec.md §4.5 specifies: find
// file, parse, allocate image, copy headers, copy sections, relocate,
// bind imports, set section permissions, collect exports, run entry
// point — in that strict order, failing fast on the first fatal
// condition and releasing whatever was acquired so far.
//
// Grounded on original_source/windows_library.cpp's
// WindowsLibrary::Load, RelocateImage, and the destructor's
// DLL_PROCESS_DETACH teardown.
package loader

import (
	"encoding/binary"

	"golang.org/x/sys/unix"

	"github.com/clouds56-contrib/linoodle/internal/abi"
	"github.com/clouds56-contrib/linoodle/internal/diag"
	"github.com/clouds56-contrib/linoodle/internal/loaderr"
	"github.com/clouds56-contrib/linoodle/internal/memmap"
	"github.com/clouds56-contrib/linoodle/internal/peimage"
	"github.com/clouds56-contrib/linoodle/internal/search"
	"github.com/clouds56-contrib/linoodle/internal/tib"
	"github.com/clouds56-contrib/linoodle/internal/winapi"
)

const (
	dllProcessDetach = 0
	dllProcessAttach = 1
)

const (
	dynamicBaseFlag = peimage.DllCharacteristicsDynamicBase
)

// Library is a successfully loaded DLL image: an owned mapping, a
// name->address export table, and the resolved entry-point address.
// Every stored export address lies within [Base, Base+Size).
type Library struct {
	region     *memmap.Region
	exports    map[string]uintptr
	entryPoint uintptr
}

// Base returns the address the image was mapped at.
func (l *Library) Base() uintptr {
	return l.region.Base()
}

// Export returns the resolved address of the named export, and whether
// it was found. Exports by ordinal are never resolved — spec.md §9
// leaves that behavior unspecified and this loader refuses to guess.
func (l *Library) Export(name string) (uintptr, bool) {
	addr, ok := l.exports[name]
	return addr, ok
}

// builder holds resources acquired mid-Load so any fatal error can
// release them before propagating — the Go analogue of
// windows_library.cpp's RAII-scoped MappedMemory, since Go has no
// destructors to rely on.
type builder struct {
	region   *memmap.Region
	released bool
}

func (b *builder) releaseOnError(err *error) {
	if *err != nil && !b.released {
		if relErr := b.region.Release(); relErr != nil {
			diag.Printf("loader: release after failed load: %v\n", relErr)
		}
	}
}

// Load resolves name to a file via internal/search, parses it as a
// PE32+ AMD64 image, maps it, relocates and binds it, and runs its
// entry point with DLL_PROCESS_ATTACH. On any fatal condition the
// partially acquired mapping is released and no partial Library is
// returned.
func Load(name string) (lib *Library, err error) {
	path := search.FindLibrary(name)

	img, err := peimage.Parse(path)
	if err != nil {
		return nil, err
	}

	region, err := memmap.Reserve(int(img.SizeOfImage))
	if err != nil {
		return nil, err
	}
	b := &builder{region: region}
	defer b.releaseOnError(&err)

	if err = copyHeaders(region, img); err != nil {
		return nil, err
	}
	if err = copySections(region, img); err != nil {
		return nil, err
	}

	if err = relocate(region, img); err != nil {
		return nil, err
	}

	if err = bindImports(region, img); err != nil {
		return nil, err
	}

	if err = lockPermissions(region, img); err != nil {
		return nil, err
	}

	exports, err := collectExports(region, img)
	if err != nil {
		return nil, err
	}

	entry := region.Base() + uintptr(img.AddressOfEntryPoint)
	if err = runEntryPoint(entry, region.Base(), dllProcessAttach); err != nil {
		return nil, err
	}

	b.released = true
	return &Library{region: region, exports: exports, entryPoint: entry}, nil
}

// Unload runs the DLL's entry point with DLL_PROCESS_DETACH, then
// releases the mapping. Matches windows_library.cpp's
// ~WindowsLibrary(): "SetupCall(); m_entryPoint(m_mapping,
// DLL_PROCESS_DETACH, nullptr);".
func (l *Library) Unload() error {
	if err := runEntryPoint(l.entryPoint, l.region.Base(), dllProcessDetach); err != nil {
		diag.Printf("loader: Unload: entry point: %v\n", err)
	}
	return l.region.Release()
}

func copyHeaders(region *memmap.Region, img *peimage.Image) error {
	if int(img.SizeOfHeaders) > region.Size() {
		return loaderr.Newf(loaderr.LayoutError, "header size %d exceeds image size %d", img.SizeOfHeaders, region.Size())
	}
	copy(region.Bytes(), img.RawHeader)
	return region.Protect(0, int(img.SizeOfHeaders), unix.PROT_READ)
}

func copySections(region *memmap.Region, img *peimage.Image) error {
	dst := region.Bytes()
	for _, s := range img.Sections {
		end := int(s.VirtualAddress) + len(s.RawData)
		if end > len(dst) {
			return loaderr.Newf(loaderr.LayoutError, "section %s at RVA %#x spans past the image (end %#x, image size %#x)", s.Name, s.VirtualAddress, end, len(dst))
		}
		copy(dst[s.VirtualAddress:], s.RawData)
	}
	return nil
}

func relocate(region *memmap.Region, img *peimage.Image) error {
	delta := uint64(region.Base()) - img.ImageBase
	if delta == 0 {
		return nil
	}
	if img.DllCharacteristics&dynamicBaseFlag == 0 {
		return loaderr.New(loaderr.UnsupportedImage, "image is not relocatable and was not mapped at its preferred base")
	}
	buf := region.Bytes()
	for _, r := range img.Relocations {
		switch r.Type {
		case peimage.RelocAbsolute:
			continue
		case peimage.RelocDir64:
			if int(r.RVA)+8 > len(buf) {
				return loaderr.Newf(loaderr.LayoutError, "relocation at RVA %#x outside image", r.RVA)
			}
			orig := binary.LittleEndian.Uint64(buf[r.RVA:])
			binary.LittleEndian.PutUint64(buf[r.RVA:], orig+delta)
		default:
			return loaderr.Newf(loaderr.UnsupportedImage, "unhandled relocation type %d", r.Type)
		}
	}
	return nil
}

func bindImports(region *memmap.Region, img *peimage.Image) error {
	buf := region.Bytes()
	for _, imp := range img.Imports {
		if int(imp.SlotRVA)+8 > len(buf) {
			return loaderr.Newf(loaderr.LayoutError, "import slot for %s!%s at RVA %#x outside image", imp.Module, imp.Symbol, imp.SlotRVA)
		}
		fn := winapi.GetFunction(imp.Module, imp.Symbol)
		if fn == 0 {
			diag.Printf("loader: unresolved import %s!%s\n", imp.Module, imp.Symbol)
			continue
		}
		binary.LittleEndian.PutUint64(buf[imp.SlotRVA:], uint64(fn))
	}
	return nil
}

func lockPermissions(region *memmap.Region, img *peimage.Image) error {
	for _, s := range img.Sections {
		prot := 0
		if s.Characteristics&peimage.SectionMemExecute != 0 {
			prot |= unix.PROT_EXEC
		}
		if s.Characteristics&peimage.SectionMemRead != 0 {
			prot |= unix.PROT_READ
		}
		if s.Characteristics&peimage.SectionMemWrite != 0 {
			prot |= unix.PROT_WRITE
		}
		if err := region.Protect(int(s.VirtualAddress), int(s.VirtualSize), prot); err != nil {
			return err
		}
	}
	return nil
}

func collectExports(region *memmap.Region, img *peimage.Image) (map[string]uintptr, error) {
	exports := make(map[string]uintptr, len(img.Exports))
	for _, e := range img.Exports {
		if int(e.RVA) >= region.Size() {
			return nil, loaderr.Newf(loaderr.LayoutError, "export %s at RVA %#x outside image", e.Name, e.RVA)
		}
		exports[e.Name] = region.Base() + uintptr(e.RVA)
	}
	return exports, nil
}

// runEntryPoint installs the calling thread's TIB and invokes entry
// under the Microsoft x64 convention with (imageBase, reason, 0),
// exactly as windows_library.cpp does at load and unload time.
func runEntryPoint(entry, imageBase uintptr, reason uintptr) error {
	if err := tib.SetupCall(); err != nil {
		return loaderr.Wrap(loaderr.InitFailed, "SetupCall before entry point", err)
	}
	result := abi.CallMSABI(entry, imageBase, reason, 0)
	if reason == dllProcessAttach && result == 0 {
		return loaderr.New(loaderr.InitFailed, "entry point returned FALSE")
	}
	return nil
}
