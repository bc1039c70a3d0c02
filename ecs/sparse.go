package ecs

// GrowFunc computes a new capacity from the current one. It must return a
// value strictly greater than its argument.
type GrowFunc func(current int) int

func defaultGrow(current int) int {
	if current < 8 {
		return 8
	}
	return current * 2
}

// Storage is a sparse set holding one component value per entity id. Values
// sit contiguously in a dense array for cache-friendly iteration; a sparse
// array maps entity id to dense index, giving O(1) add, lookup and remove.
//
// Removal is swap-remove: the last dense element relocates into the vacated
// slot, so dense indices are unstable across any mutating call. Never
// retain a dense index or a *T obtained from Ref/At across a mutation;
// re-resolve by id instead.
type Storage[T any] struct {
	dense  []T    // len is the dense capacity; occupied slots are [0, tail]
	owners []int  // owners[i] is the entity id owning dense[i]
	sparse []int  // sparse[id] is the dense index for id, if live
	tail   int    // index of the last occupied dense slot, -1 when empty
	hiID   int    // highest id ever inserted, -1 when empty

	growDense  GrowFunc
	growSparse GrowFunc
}

// NewStorage creates a storage with the given initial dense and sparse
// capacity.
func NewStorage[T any](capacity int) *Storage[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Storage[T]{
		dense:      make([]T, capacity),
		owners:     make([]int, capacity),
		sparse:     make([]int, capacity),
		tail:       -1,
		hiID:       -1,
		growDense:  defaultGrow,
		growSparse: defaultGrow,
	}
}

// SetGrowth overrides the dense and sparse growth functions. A nil argument
// keeps the current function.
func (s *Storage[T]) SetGrowth(dense, sparse GrowFunc) {
	if dense != nil {
		s.growDense = dense
	}
	if sparse != nil {
		s.growSparse = sparse
	}
}

// Add inserts a value for id without growing.
//
// Preconditions: id has no existing entry, id is within sparse capacity and
// a free dense slot exists. Re-adding a live id orphans the prior dense row
// and corrupts removal bookkeeping; this is not checked.
func (s *Storage[T]) Add(id int, value T) {
	s.tail++
	s.dense[s.tail] = value
	s.owners[s.tail] = id
	s.sparse[id] = s.tail
	if id > s.hiID {
		s.hiID = id
	}
}

// AddWithResize inserts a value for id, growing the sparse array when id
// reaches its capacity and the dense array when it is full.
//
// The no-existing-entry precondition of Add applies here too.
func (s *Storage[T]) AddWithResize(id int, value T) {
	if id >= len(s.sparse)-1 {
		target := len(s.sparse)
		for id >= target-1 {
			target = s.growSparse(target)
		}
		grown := make([]int, target)
		copy(grown, s.sparse)
		s.sparse = grown
	}
	if s.tail >= len(s.dense)-1 {
		target := s.growDense(len(s.dense))
		dense := make([]T, target)
		copy(dense, s.dense)
		s.dense = dense
		owners := make([]int, target)
		copy(owners, s.owners)
		s.owners = owners
	}
	s.Add(id, value)
}

// Contains reports whether id has an entry, returning its dense index.
// Absence (empty storage, id beyond hiID or sparse capacity, stale sparse
// slot) is an ordinary false result, never an error.
func (s *Storage[T]) Contains(id int) (int, bool) {
	if s.tail < 0 || id < 0 || id > s.hiID || id >= len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[id]
	if idx > s.tail || s.owners[idx] != id {
		return 0, false
	}
	return idx, true
}

// Remove deletes the entry for id, reporting whether one existed. The last
// dense element is swapped into the vacated slot; O(1), order-unstable.
func (s *Storage[T]) Remove(id int) bool {
	idx, ok := s.Contains(id)
	if !ok {
		return false
	}
	last := s.tail
	s.dense[idx] = s.dense[last]
	s.owners[idx] = s.owners[last]
	s.sparse[s.owners[idx]] = idx
	var zero T
	s.dense[last] = zero
	s.tail--
	return true
}

// Ref returns a mutable reference to the value for id, for in-place
// mutation without copying.
//
// Unchecked: calling Ref for an id without an entry is undefined. Guard
// untrusted ids with Contains first, and do not retain the pointer across
// a mutating call.
func (s *Storage[T]) Ref(id int) *T {
	return &s.dense[s.sparse[id]]
}

// Get returns a copy of the value for id.
func (s *Storage[T]) Get(id int) (T, bool) {
	idx, ok := s.Contains(id)
	if !ok {
		var zero T
		return zero, false
	}
	return s.dense[idx], true
}

// At returns a mutable reference to the dense slot i. Unchecked; i must be
// in [0, Count).
func (s *Storage[T]) At(i int) *T {
	return &s.dense[i]
}

// OwnerAt returns the entity id owning dense slot i. Unchecked.
func (s *Storage[T]) OwnerAt(i int) int {
	return s.owners[i]
}

// Data returns the occupied prefix of the dense array. The slice aliases
// the backing storage and is invalidated by any mutation.
func (s *Storage[T]) Data() []T {
	return s.dense[:s.tail+1]
}

// Owners returns the entity ids of the occupied dense slots, aliasing the
// backing storage.
func (s *Storage[T]) Owners() []int {
	return s.owners[:s.tail+1]
}

// Count returns the number of live entries.
func (s *Storage[T]) Count() int {
	return s.tail + 1
}

// Cap returns the dense capacity.
func (s *Storage[T]) Cap() int {
	return len(s.dense)
}

// SparseCap returns the sparse capacity; ids below it are addressable
// without a growth step.
func (s *Storage[T]) SparseCap() int {
	return len(s.sparse)
}

// Clear drops every entry without releasing allocated capacity.
func (s *Storage[T]) Clear() {
	s.tail = -1
	s.hiID = -1
}
