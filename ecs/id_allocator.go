package ecs

import "sync/atomic"

var worldIDs atomic.Int64

// nextWorldID issues a process-unique world id.
func nextWorldID() int {
	return int(worldIDs.Add(1) - 1)
}

// IDAllocator issues entity ids for one world. Ids are reused LIFO from a
// free stack; absent reclaimed ids, allocation is monotonically increasing
// starting at 0. Each world owns its allocator, so tearing a world down
// leaves no process-wide bookkeeping behind.
//
// Not safe for concurrent use; a world is driven by a single thread.
type IDAllocator struct {
	next int
	free []int
}

// NewIDAllocator creates an allocator whose first issued id is 0.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{next: -1}
}

// NextID returns the most recently reclaimed id, or grows the id space by
// one when the free stack is empty.
func (a *IDAllocator) NextID() int {
	if n := len(a.free); n > 0 {
		id := a.free[n-1]
		a.free = a.free[:n-1]
		return id
	}
	a.next++
	return a.next
}

// Reclaim pushes id onto the free stack for reuse. The id is not validated:
// reclaiming an id that was never issued, or is already on the stack,
// corrupts future allocation. Callers own that precondition.
func (a *IDAllocator) Reclaim(id int) {
	a.free = append(a.free, id)
}
