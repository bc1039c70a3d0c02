package ecs

// Entities manages entity lifecycle for one world: spawning, deferred and
// immediate destruction, and the mask-based multi-component queries.
type Entities struct {
	ids        *IDAllocator
	mapper     *ComponentMapper
	components *Components

	// Pending removals in insertion order, with a set alongside so that
	// re-enqueueing an id is a no-op.
	pending []int
	queued  map[int]struct{}
}

func newEntities(ids *IDAllocator, mapper *ComponentMapper, components *Components) *Entities {
	return &Entities{
		ids:        ids,
		mapper:     mapper,
		components: components,
		queued:     make(map[int]struct{}),
	}
}

// Spawn creates a live entity with no components attached and returns its
// id, ready for component attachment.
func (e *Entities) Spawn() int {
	id := e.ids.NextID()
	e.mapper.Insert(id)
	return id
}

// Remove marks id for destruction at the end of the current tick. Marking
// an already-marked id is a no-op. The entity stays fully visible to
// queries and storages until the flush, so systems may mark entities
// mid-iteration without invalidating that iteration.
func (e *Entities) Remove(id int) {
	if _, ok := e.queued[id]; ok {
		return
	}
	e.queued[id] = struct{}{}
	e.pending = append(e.pending, id)
}

// RemoveImmediate destroys id synchronously, bypassing the deferred queue.
// The caller accepts that any in-progress iteration over queries or dense
// views may be invalidated.
func (e *Entities) RemoveImmediate(id int) {
	e.destroy(id)
}

// destroy detaches every component id carries (in arbitrary type order),
// drops the mapper record, and reclaims the id.
//
// Destroying a non-live id is a no-op at the storage and mapper layer, but
// the id is reclaimed unconditionally: destroying the same id twice pushes
// it onto the free stack twice and corrupts future allocation. Callers own
// that precondition.
func (e *Entities) destroy(id int) {
	e.components.removeAll(id)
	e.mapper.Remove(id)
	e.ids.Reclaim(id)
}

// flush destroys every pending id in insertion order and clears the queue.
func (e *Entities) flush() {
	for _, id := range e.pending {
		e.destroy(id)
	}
	e.pending = e.pending[:0]
	clear(e.queued)
}

// All returns the dense view of every live entity record. The slice aliases
// the mapper's table; a spawn or destroy invalidates it.
func (e *Entities) All() []Entity {
	return e.mapper.All()
}

// Removals returns the ids currently marked for deferred destruction, in
// insertion order. The slice aliases the pending queue.
func (e *Entities) Removals() []int {
	return e.pending
}

// Alive reports whether id is a live entity.
func (e *Entities) Alive(id int) bool {
	return e.mapper.Contains(id)
}

// Count returns the number of live entities.
func (e *Entities) Count() int {
	return e.mapper.Count()
}
