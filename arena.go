// Package arena implements a chunked bump allocator with two-generation
// freeze/thaw support.
// Typical usage: allocate a batch of temporary objects, Freeze() the
// generation holding them once a new batch needs to start, then Thaw() it
// once nothing references the old batch anymore.
package arena

import "unsafe"

// DefaultInitialCapacity is the capacity of an arena's first block when none
// is specified.
const DefaultInitialCapacity = 128

// growthFactor is the geometric growth rate applied to the next block's
// target capacity each time a new current-generation block is created.
const growthFactor = 2

// Arena is a two-generation chunked bump allocator. Not goroutine-safe; use
// SafeArena for concurrent access.
type Arena struct {
	current    generation
	frozen     generation
	nextCap    int // H: target capacity for the next current-generation block
	initialCap int

	selfHosted bool
	hostBuf    []byte // kept alive only for a self-contained arena
}

// NewArena creates an Arena whose first block, when needed, has the given
// capacity. If initialCapacity <= 0, DefaultInitialCapacity is used. Blocks
// are created lazily on first need.
func NewArena(initialCapacity int) *Arena {
	if initialCapacity <= 0 {
		initialCapacity = DefaultInitialCapacity
	}
	return &Arena{initialCap: initialCapacity, nextCap: initialCapacity}
}

// nextBlockCapacity is the growth policy: max(n, H), exact-fit for requests
// larger than the hint rather than doubled.
func (a *Arena) nextBlockCapacity(n int) int {
	if n > a.nextCap {
		return n
	}
	return a.nextCap
}

// ensureCurrent returns a current-generation block with at least n bytes of
// remaining space, creating one if necessary.
func (a *Arena) ensureCurrent(n int) *block {
	b := a.current.last()
	if b == nil || b.remaining() < n {
		cap := a.nextBlockCapacity(n)
		b = newBlock(cap)
		a.current.append(b)
		a.nextCap = int(float64(cap) * growthFactor)
	}
	return b
}

// AllocBytes returns n freshly reserved bytes carved from the current
// generation. Returns nil without creating or touching a block if n <= 0.
func (a *Arena) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	b := a.ensureCurrent(n)
	return b.alloc(n)
}

// Require ensures the current generation's block has at least n bytes of
// remaining space, without carving any of it. Used to pre-size the remnant
// before a temporary write.
func (a *Arena) Require(n int) {
	if n <= 0 {
		return
	}
	a.ensureCurrent(n)
}

// Remnant returns the entire unallocated tail of the current block, or nil
// if there is no current block. None of it is considered allocated until a
// later AllocBytes carves part of it; bytes past the next carve may be
// overwritten by a later allocation in the same block.
func (a *Arena) Remnant() []byte {
	b := a.current.last()
	if b == nil {
		return nil
	}
	return b.remnant()
}

// Size returns the bytes allocated from the current generation only.
func (a *Arena) Size() int {
	return a.current.size()
}

// AllocatedSize returns the bytes allocated across both generations.
func (a *Arena) AllocatedSize() int {
	return a.current.size() + a.frozen.size()
}

// ReservedSize returns the sum of capacities of every block in both
// generations.
func (a *Arena) ReservedSize() int {
	return a.current.reserved() + a.frozen.reserved()
}

// InitialCapacity returns the capacity the arena's first block is given,
// and the growth hint resets to after Clear.
func (a *Arena) InitialCapacity() int {
	return a.initialCap
}

// Remaining returns the bytes still free in the block that would serve the
// next allocation, or 0 if there is no current block.
func (a *Arena) Remaining() int {
	b := a.current.last()
	if b == nil {
		return 0
	}
	return b.remaining()
}

// Contains reports whether ptr lies within any block of either generation.
func (a *Arena) Contains(ptr unsafe.Pointer) bool {
	return a.current.contains(ptr) || a.frozen.contains(ptr)
}

// NumBlocks returns the number of blocks across both generations.
func (a *Arena) NumBlocks() int {
	return a.current.numBlocks() + a.frozen.numBlocks()
}

// Utilization returns AllocatedSize / ReservedSize, or 0 if ReservedSize is 0.
func (a *Arena) Utilization() float64 {
	reserved := a.ReservedSize()
	if reserved == 0 {
		return 0
	}
	return float64(a.AllocatedSize()) / float64(reserved)
}

// Freeze moves the entire current generation into the frozen slot and
// starts a new, empty current generation. After Freeze, Size() is 0 and the
// next new current-generation block will have capacity at least
// max(hint, the frozen generation's total reserved capacity) — large enough
// to absorb the next wave of allocations in a single block.
//
// Freeze panics if a frozen generation already exists, rather than
// guessing at thaw-then-freeze intent.
func (a *Arena) Freeze(hint int) {
	if a.frozen.numBlocks() != 0 {
		panic("arena: freeze called with a frozen generation already present")
	}
	frozenTotal := a.current.reserved()
	a.frozen = a.current
	a.current = generation{}

	next := hint
	if frozenTotal > next {
		next = frozenTotal
	}
	if next <= 0 {
		next = a.initialCap
	}
	a.nextCap = next
}

// Thaw destroys every block in the frozen generation. It is a no-op if
// nothing is frozen. The current generation is unchanged; pointers
// previously returned out of the frozen generation become dangling.
func (a *Arena) Thaw() {
	a.frozen.reset()
}

// Clear destroys every block in both generations and resets the growth hint
// to the initial capacity. After Clear, Size, AllocatedSize and
// ReservedSize are all 0.
func (a *Arena) Clear() {
	a.current.reset()
	a.frozen.reset()
	a.nextCap = a.initialCap
}

// MoveTo transfers ownership of a's blocks and growth state to dst. dst's
// own prior contents are discarded. a is left as if freshly constructed
// with DefaultInitialCapacity. Spans already handed out of a remain valid
// and are now contained by dst instead.
//
// A self-contained arena cannot be moved, since its own representation
// lives inside one of the blocks being transferred.
func (a *Arena) MoveTo(dst *Arena) {
	if a.selfHosted {
		panic("arena: a self-contained arena cannot be moved")
	}
	*dst = Arena{
		current:    a.current,
		frozen:     a.frozen,
		nextCap:    a.nextCap,
		initialCap: a.initialCap,
	}
	*a = Arena{initialCap: DefaultInitialCapacity, nextCap: DefaultInitialCapacity}
}

// Release drops every block the arena owns. For a self-contained arena,
// whose own struct lives inside its first block, the other blocks are
// dropped first and the hosting block's slice is read into a local before
// the arena's own fields are cleared, so no field is read through a's
// pointer after the bytes backing it have been let go.
func (a *Arena) Release() {
	if a.selfHosted {
		host := a.hostBuf
		a.current.reset()
		a.frozen.reset()
		a.hostBuf = nil
		_ = host
		return
	}
	a.current.reset()
	a.frozen.reset()
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() Metrics {
	return Metrics{
		Size:          a.Size(),
		AllocatedSize: a.AllocatedSize(),
		ReservedSize:  a.ReservedSize(),
		Remaining:     a.Remaining(),
		NumBlocks:     a.NumBlocks(),
		Utilization:   a.Utilization(),
	}
}
