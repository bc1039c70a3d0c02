package ecs

import "testing"

func TestIDAllocatorMonotonic(t *testing.T) {
	a := NewIDAllocator()
	for want := 0; want < 4; want++ {
		if id := a.NextID(); id != want {
			t.Fatalf("NextID = %d, want %d", id, want)
		}
	}
}

func TestIDAllocatorLIFOReuse(t *testing.T) {
	a := NewIDAllocator()
	a.NextID() // 0
	a.NextID() // 1
	a.NextID() // 2

	a.Reclaim(0)
	a.Reclaim(2)
	if id := a.NextID(); id != 2 {
		t.Fatalf("NextID = %d, want most recently reclaimed 2", id)
	}
	if id := a.NextID(); id != 0 {
		t.Fatalf("NextID = %d, want 0", id)
	}
	// free stack drained, back to growing the id space
	if id := a.NextID(); id != 3 {
		t.Fatalf("NextID = %d, want 3", id)
	}
}
