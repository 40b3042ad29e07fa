package arena

import (
	"runtime"
	"unsafe"
)

// sizeOfT reports sizeof(T) the same way every generic helper below needs
// it, without requiring a caller-supplied value.
func sizeOfT[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// carveT carves sizeof(T) aligned bytes out of a and reinterprets them as a
// *T. zeroed controls whether the bytes are cleared first; callers that
// immediately overwrite every field can skip it.
func carveT[T any](a *Arena, zeroed bool) *T {
	b := a.AllocBytes(sizeOfT[T]())
	if zeroed && len(b) > 0 {
		clear(b)
	}
	return (*T)(unsafe.Pointer(&b[0]))
}

// Alloc carves room for one T out of a and returns a pointer to it, zeroed.
// The pointer stays valid for as long as a's backing block does.
func Alloc[T any](a *Arena) *T {
	return carveT[T](a, true)
}

// AllocZeroed is Alloc under another name, for callers who want to spell out
// the zeroing explicitly next to AllocUninitialized.
func AllocZeroed[T any](a *Arena) *T {
	return carveT[T](a, true)
}

// AllocUninitialized carves room for one T without clearing it first. The
// contents are whatever garbage was left in the arena's block; the caller
// must fully initialize the value before reading any field of it.
func AllocUninitialized[T any](a *Arena) *T {
	return carveT[T](a, false)
}

// AllocSlice carves room for n contiguous, uninitialized Ts and returns them
// as a slice. Returns nil for n <= 0 without touching the arena.
func AllocSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	b := a.AllocBytes(sizeOfT[T]() * n)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// AllocSliceZeroed is AllocSlice with the backing bytes cleared first, at
// the cost of the extra pass over the memory.
func AllocSliceZeroed[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	b := a.AllocBytes(sizeOfT[T]() * n)
	if len(b) > 0 {
		clear(b)
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// PtrAndKeepAlive pins a alive until this call returns t, so t's block
// cannot be collected out from under unsafe code still holding only t.
func PtrAndKeepAlive[T any](a *Arena, t *T) *T {
	runtime.KeepAlive(a)
	return t
}
