// Package oodle is the host-visible surface this loader exists to
// provide: five functions forwarding to a loaded oo2core DLL's exports,
// ported directly from original_source/linoodle.cpp's OodleWrapper —
// same five functions, same per-call SetupCall() discipline, same
// forwarding through the Microsoft x64 calling convention.
package oodle

import (
	"sync"

	"github.com/clouds56-contrib/linoodle/internal/abi"
	"github.com/clouds56-contrib/linoodle/internal/loader"
	"github.com/clouds56-contrib/linoodle/internal/loaderr"
	"github.com/clouds56-contrib/linoodle/internal/tib"
)

// DefaultLibraryName is the convention-named DLL this package loads on
// first use, matching linoodle.cpp's `WindowsLibrary::Load("oo2core_6_win64.dll")`.
const DefaultLibraryName = "oo2core_6_win64.dll"

var (
	once    sync.Once
	initErr error
	lib     *loader.Library

	decompress                  uintptr
	compress                    uintptr
	compressOptionsGetDefault   uintptr
	getCompressedBufferSizeNeed uintptr
	getDecodeBufferSize         uintptr
)

func ensureLoaded() error {
	once.Do(func() {
		lib, initErr = loader.Load(DefaultLibraryName)
		if initErr != nil {
			return
		}
		decompress = mustExport(lib, "OodleLZ_Decompress")
		compress = mustExport(lib, "OodleLZ_Compress")
		compressOptionsGetDefault = mustExport(lib, "OodleLZ_CompressOptions_GetDefault")
		getCompressedBufferSizeNeed = mustExport(lib, "OodleLZ_GetCompressedBufferSizeNeeded")
		getDecodeBufferSize = mustExport(lib, "OodleLZ_GetDecodeBufferSize")
	})
	return initErr
}

func mustExport(l *loader.Library, name string) uintptr {
	addr, ok := l.Export(name)
	if !ok && initErr == nil {
		initErr = loaderr.Newf(loaderr.NotFound, "export %s not found in %s", name, DefaultLibraryName)
	}
	return addr
}

func boolToUintptr(b bool) uintptr {
	if b {
		return 1
	}
	return 0
}

// Decompress forwards to OodleLZ_Decompress. Buffers are passed as raw
// addresses: callers are responsible for keeping the backing arrays
// alive and correctly sized for the duration of the call.
func Decompress(srcBuf uintptr, srcLen uintptr, dstBuf uintptr, dstLen uintptr, fuzz, crc, verbose int64, decBufBase uintptr, decBufSize uintptr, cb, cbCtx, scratch uintptr, scratchSize uintptr, threadPhase int64) (uint64, error) {
	if err := ensureLoaded(); err != nil {
		return 0, err
	}
	tib.SetupCall()
	return abi.CallMSABI(decompress,
		srcBuf, srcLen, dstBuf, dstLen,
		uintptr(fuzz), uintptr(crc), uintptr(verbose),
		decBufBase, decBufSize, cb, cbCtx, scratch, scratchSize,
		uintptr(threadPhase),
	), nil
}

// Compress forwards to OodleLZ_Compress.
func Compress(codec int64, srcBuf uintptr, srcLen uintptr, dstBuf uintptr, level int64, opts, dictionaryBase, lrm, scratch uintptr, scratchSize uintptr) (uint64, error) {
	if err := ensureLoaded(); err != nil {
		return 0, err
	}
	tib.SetupCall()
	return abi.CallMSABI(compress,
		uintptr(codec), srcBuf, srcLen, dstBuf, uintptr(level),
		opts, dictionaryBase, lrm, scratch, scratchSize,
	), nil
}

// CompressOptionsGetDefault forwards to OodleLZ_CompressOptions_GetDefault.
func CompressOptionsGetDefault(codec, level int64) (uintptr, error) {
	if err := ensureLoaded(); err != nil {
		return 0, err
	}
	tib.SetupCall()
	return uintptr(abi.CallMSABI(compressOptionsGetDefault, uintptr(codec), uintptr(level))), nil
}

// GetCompressedBufferSizeNeeded forwards to OodleLZ_GetCompressedBufferSizeNeeded.
func GetCompressedBufferSizeNeeded(srcLen uintptr) (uint64, error) {
	if err := ensureLoaded(); err != nil {
		return 0, err
	}
	tib.SetupCall()
	return abi.CallMSABI(getCompressedBufferSizeNeed, srcLen), nil
}

// GetDecodeBufferSize forwards to OodleLZ_GetDecodeBufferSize.
func GetDecodeBufferSize(srcLen uintptr, corruptionPossible bool) (uint64, error) {
	if err := ensureLoaded(); err != nil {
		return 0, err
	}
	tib.SetupCall()
	return abi.CallMSABI(getDecodeBufferSize, srcLen, boolToUintptr(corruptionPossible)), nil
}
