// Package abi crosses the one calling-convention boundary this loader
// cannot avoid: code mapped from a Windows DLL expects the Microsoft x64
// argument registers (rcx, rdx, r8, r9, then stack), while the host
// process runs under the System V AMD64 convention.
//
// original_source/linoodle.cpp types every DLL function pointer with
// GCC/Clang's __attribute__((ms_abi)) and lets the compiler generate the
// register shuffle. This package keeps that exact technique: a tiny cgo
// shim declares an ms_abi function-pointer type and calls through it, so
// the C compiler — not hand-rolled Go assembly — does the translation.
package abi

/*
#include <stdint.h>

typedef __attribute__((ms_abi)) uint64_t (*ms_abi_fn)(
	uint64_t, uint64_t, uint64_t, uint64_t, uint64_t, uint64_t, uint64_t,
	uint64_t, uint64_t, uint64_t, uint64_t, uint64_t, uint64_t, uint64_t);

static uint64_t linoodle_call_msabi(void *fn,
	uint64_t a0, uint64_t a1, uint64_t a2, uint64_t a3, uint64_t a4,
	uint64_t a5, uint64_t a6, uint64_t a7, uint64_t a8, uint64_t a9,
	uint64_t a10, uint64_t a11, uint64_t a12, uint64_t a13) {
	ms_abi_fn f = (ms_abi_fn)fn;
	return f(a0, a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11, a12, a13);
}
*/
import "C"

import "unsafe"

// MaxArgs is the widest Microsoft x64 call this package supports. It
// matches OodleLZ_Decompress, the most argument-heavy export pkg/oodle
// forwards.
const MaxArgs = 14

// CallMSABI invokes fn — an address inside a mapped DLL image, or any
// other function expecting the Microsoft x64 convention — passing args
// as raw 64-bit words. Omitted trailing arguments are padded with zero.
// Floating-point and aggregate arguments are out of scope: every
// registered export and shim this loader forwards is integer/pointer
// only (see internal/winapi and pkg/oodle).
//
// Callers must call tib.SetupCall on the same thread first so that gs
// resolves to a valid (if fake) Thread Information Block before fn runs.
func CallMSABI(fn uintptr, args ...uintptr) uint64 {
	if len(args) > MaxArgs {
		panic("abi: too many arguments for CallMSABI")
	}
	var a [MaxArgs]C.uint64_t
	for i, v := range args {
		a[i] = C.uint64_t(v)
	}
	return uint64(C.linoodle_call_msabi(
		unsafe.Pointer(fn), //nolint:govet // fn is a foreign code address, not a Go-managed pointer
		a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7],
		a[8], a[9], a[10], a[11], a[12], a[13],
	))
}
