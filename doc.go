// Package arena implements a two-generation chunked bump allocator (memory
// arena) for Go, plus a typed fixed-size free-list layered on top of it.
//
// # Overview
//
// An arena allocator is a fast memory allocation strategy that allocates
// memory in large blocks and then hands out portions of those blocks on
// demand. This is particularly useful for:
//
//   - Request-scoped allocations in web servers
//   - Temporary object allocation with batch cleanup
//   - Reducing garbage collection pressure
//   - High-performance applications requiring predictable allocation patterns
//
// # Basic Usage
//
//	a := arena.NewArena(0) // Use default initial capacity
//	defer a.Release()      // Clean up when done
//
//	// Allocate raw bytes
//	buf := a.AllocBytes(1024)
//
//	// Allocate typed values
//	ptr := arena.Alloc[MyStruct](a)
//	slice := arena.AllocSlice[int](a, 100)
//
//	// Drop every block and start over
//	a.Clear()
//
// # Freeze and Thaw
//
// The arena holds at most two generations of blocks: a writable current
// generation and, between a Freeze and its matching Thaw, a read-only
// frozen one. Freeze detaches the current generation so a fresh one can
// absorb new allocations while callers finish reading the old one; Thaw
// discards the frozen generation once nothing refers to it anymore.
//
//	a.Freeze(0)        // current generation becomes frozen
//	a.AllocBytes(64)    // goes into a brand-new current generation
//	a.Thaw()            // drops the frozen generation
//
// # Thread Safety
//
// The basic Arena type is not thread-safe. For concurrent access, use SafeArena:
//
//	s := arena.NewSafeArena(0)
//	defer s.Release()
//
//	// All operations are thread-safe
//	buf := s.AllocBytes(1024)
//	ptr := arena.SafeAlloc[MyStruct](s)
//
// # Memory Layout
//
// The arena allocates memory in blocks (default 128 bytes for the first
// one). When a block fills up, a new one is allocated at roughly double the
// size of the last, so repeated small allocations do not thrash. Memory
// within a block is carved sequentially with pointer-size alignment.
//
// # Performance Characteristics
//
//   - Allocation: O(1) amortized
//   - Freeze: O(number of current-generation blocks), to total their capacity
//   - Thaw: O(1)
//   - Clear: O(1) (the block lists are dropped and left to the GC)
//   - Memory overhead: Minimal (just block metadata)
//
// # Important Notes
//
//   - Allocated memory is only valid while its owning block is live.
//   - No individual deallocation — use Clear, Thaw, or Release for bulk
//     cleanup.
//   - Memory is not automatically zeroed unless using Alloc, AllocZeroed, or
//     AllocSliceZeroed.
//   - FixedArena[T] layers an LIFO free-list on top of an Arena for objects
//     that get destroyed and re-created one at a time.
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Memory in use: %d bytes\n", m.AllocatedSize)
//	fmt.Printf("Reserved: %d bytes\n", m.ReservedSize)
package arena
