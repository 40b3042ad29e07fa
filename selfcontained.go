package arena

import "unsafe"

// NewSelfContained builds an arena whose own representation lives inside
// the first block it allocates, rather than in a separately heap-allocated
// Arena struct. The returned pointer refers to the in-block instance. If
// initialCapacity <= 0, DefaultInitialCapacity is used.
//
// A self-contained arena cannot be moved (MoveTo panics) since moving would
// require relocating the struct out from under its own host block.
func NewSelfContained(initialCapacity int) *Arena {
	if initialCapacity <= 0 {
		initialCapacity = DefaultInitialCapacity
	}

	headerSize := int(alignUp(unsafe.Sizeof(Arena{})))
	buf := make([]byte, headerSize+initialCapacity)

	a := (*Arena)(unsafe.Pointer(&buf[0]))
	*a = Arena{
		initialCap: initialCapacity,
		nextCap:    initialCapacity,
		selfHosted: true,
		hostBuf:    buf,
	}
	a.current.append(&block{buf: buf[headerSize:]})
	return a
}
