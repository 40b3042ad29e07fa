package arena

import "unsafe"

// freeCell overlays a destroyed FixedArena[T] cell so its first word can
// hold the LIFO free-list's next pointer without needing a separate
// allocation.
type freeCell struct {
	next unsafe.Pointer
}

// FixedArena is a typed slab-style free-list for fixed-size objects, backed
// by an Arena. Cells are carved from the arena on demand and, once
// destroyed, reused in LIFO order without ever being returned to the arena.
type FixedArena[T any] struct {
	a        *Arena
	free     unsafe.Pointer // head of the free-list, or nil
	cellSize int
}

// NewFixedArena creates a FixedArena backed by a. The arena must outlive
// the FixedArena.
func NewFixedArena[T any](a *Arena) *FixedArena[T] {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size < int(unsafe.Sizeof(uintptr(0))) {
		size = int(unsafe.Sizeof(uintptr(0)))
	}
	return &FixedArena[T]{a: a, cellSize: size}
}

// Make returns a pointer to a freshly constructed, zeroed T. If the
// free-list is non-empty its head cell is reused (LIFO); otherwise a new
// cell is carved from the backing arena.
func (f *FixedArena[T]) Make() *T {
	if f.free != nil {
		cell := (*freeCell)(f.free)
		f.free = cell.next
		p := (*T)(unsafe.Pointer(cell))
		var zero T
		*p = zero
		return p
	}
	b := f.a.AllocBytes(f.cellSize)
	clear(b)
	return (*T)(unsafe.Pointer(&b[0]))
}

// Destroy runs T's zero value over *p and pushes the cell onto the
// free-list head, where the next Make() call will return it. The cell is
// never read as a T while it sits on the free-list.
func (f *FixedArena[T]) Destroy(p *T) {
	var zero T
	*p = zero
	cell := (*freeCell)(unsafe.Pointer(p))
	cell.next = f.free
	f.free = unsafe.Pointer(cell)
}
