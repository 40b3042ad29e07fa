package arena

import (
	"runtime"
	"sync"
	"unsafe"
)

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// All operations are thread-safe but come with the overhead of mutex locking.
// Arena itself does no internal synchronization; callers sharing one across
// goroutines must serialize access themselves or go through SafeArena.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a new thread-safe arena with the given initial
// capacity. If initialCapacity <= 0, DefaultInitialCapacity is used.
func NewSafeArena(initialCapacity int) *SafeArena {
	return &SafeArena{a: NewArena(initialCapacity)}
}

// AllocBytes thread-safely allocates n bytes and returns a slice pointing to them.
// Returns nil if n <= 0.
func (s *SafeArena) AllocBytes(n int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocBytes(n)
}

// Require thread-safely ensures the current block has at least n free bytes.
func (s *SafeArena) Require(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Require(n)
}

// Remnant thread-safely returns the current block's unallocated tail.
func (s *SafeArena) Remnant() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Remnant()
}

// Contains thread-safely reports whether ptr lies within any owned block.
func (s *SafeArena) Contains(ptr unsafe.Pointer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Contains(ptr)
}

// Freeze thread-safely moves the current generation into the frozen slot.
func (s *SafeArena) Freeze(hint int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Freeze(hint)
}

// Thaw thread-safely destroys the frozen generation.
func (s *SafeArena) Thaw() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Thaw()
}

// Clear thread-safely destroys every block in both generations.
func (s *SafeArena) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Clear()
}

// Release thread-safely drops every block the arena owns. The arena remains
// usable afterward; a later allocation lazily recreates a block.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// Generic allocation functions for SafeArena.

// SafeAlloc thread-safely returns a pointer to a T stored inside the arena with zeroed memory.
func SafeAlloc[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.a)
}

// SafeAllocZeroed is identical to SafeAlloc - provided for API consistency.
func SafeAllocZeroed[T any](s *SafeArena) *T {
	return SafeAlloc[T](s)
}

// SafeAllocUninitialized thread-safely returns a *T without zeroing memory.
func SafeAllocUninitialized[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocUninitialized[T](s.a)
}

// SafeAllocSlice thread-safely allocates a slice of n elements of type T.
func SafeAllocSlice[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.a, n)
}

// SafeAllocSliceZeroed thread-safely allocates a slice of n elements with zeroed memory.
func SafeAllocSliceZeroed[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSliceZeroed[T](s.a, n)
}

// SafePtrAndKeepAlive thread-safely returns t and calls runtime.KeepAlive on the arena.
func SafePtrAndKeepAlive[T any](s *SafeArena, t *T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	runtime.KeepAlive(s.a)
	return t
}
