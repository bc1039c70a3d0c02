package ecs

import (
	"errors"
	"reflect"
)

// ErrMaskExhausted is returned when registering more component types than
// the mask has bits for. This is unrecoverable: the registration order of a
// world is fixed at configuration time.
var ErrMaskExhausted = errors.New("ecs: component type limit exceeded")

// ComponentMapper owns the table of live entity records and the assignment
// of mask bits to component types. It is the single authority on which
// component types an entity carries; per-type storages hold the values.
type ComponentMapper struct {
	table *Storage[Entity]

	types []reflect.Type // index is the type's mask bit
	bits  map[reflect.Type]uint

	// Reusable result buffer for Entities. A query clears and refills it,
	// invalidating the previous result; one outstanding query at a time.
	results []Entity
}

// NewComponentMapper creates a mapper with the given initial entity
// capacity.
func NewComponentMapper(capacity int) *ComponentMapper {
	return &ComponentMapper{
		table: NewStorage[Entity](capacity),
		bits:  make(map[reflect.Type]uint),
	}
}

// RegisterType assigns the next unused mask bit to t. Registering a type
// twice returns its existing bit. The 65th distinct type fails with
// ErrMaskExhausted.
func (m *ComponentMapper) RegisterType(t reflect.Type) (uint, error) {
	if bit, ok := m.bits[t]; ok {
		return bit, nil
	}
	if len(m.types) >= MaxComponentTypes {
		return 0, ErrMaskExhausted
	}
	bit := uint(len(m.types))
	m.types = append(m.types, t)
	m.bits[t] = bit
	return bit, nil
}

// Bit returns the mask bit assigned to t.
func (m *ComponentMapper) Bit(t reflect.Type) (uint, bool) {
	bit, ok := m.bits[t]
	return bit, ok
}

// MaskOf builds the combined mask for the given types. ok is false when any
// type was never registered; no entity can match such a query.
func (m *ComponentMapper) MaskOf(types ...reflect.Type) (Mask, bool) {
	var mask Mask
	for _, t := range types {
		bit, ok := m.bits[t]
		if !ok {
			return 0, false
		}
		mask = mask.Set(bit)
	}
	return mask, true
}

// Insert registers a new live entity record with an empty mask.
func (m *ComponentMapper) Insert(id int) {
	m.table.AddWithResize(id, Entity{ID: id})
}

// Remove drops the record for id, reporting whether one existed.
func (m *ComponentMapper) Remove(id int) bool {
	return m.table.Remove(id)
}

// Contains reports whether id is a live entity.
func (m *ComponentMapper) Contains(id int) bool {
	_, ok := m.table.Contains(id)
	return ok
}

// SetBit marks component bit as attached on a live entity. Unchecked: id
// must be live.
func (m *ComponentMapper) SetBit(id int, bit uint) {
	rec := m.table.Ref(id)
	rec.Components = rec.Components.Set(bit)
}

// ClearBit marks component bit as detached on a live entity. Unchecked: id
// must be live.
func (m *ComponentMapper) ClearBit(id int, bit uint) {
	rec := m.table.Ref(id)
	rec.Components = rec.Components.Clear(bit)
}

// HasAll reports whether id is live and carries every component in mask.
func (m *ComponentMapper) HasAll(id int, mask Mask) bool {
	idx, ok := m.table.Contains(id)
	if !ok {
		return false
	}
	return m.table.At(idx).Components.HasAll(mask)
}

// Entities collects every live entity carrying all components in mask, in
// dense iteration order at scan time. The cost is linear in the live entity
// count, independent of how many types are registered.
//
// The returned slice is a single reusable buffer: a later call to Entities
// overwrites it, so consumers must finish with a result before issuing the
// next query.
func (m *ComponentMapper) Entities(mask Mask) []Entity {
	m.results = m.results[:0]
	for _, rec := range m.table.Data() {
		if rec.Components.HasAll(mask) {
			m.results = append(m.results, rec)
		}
	}
	return m.results
}

// All returns the dense view of every live entity record. The slice aliases
// the mapper's table and is invalidated by any structural change.
func (m *ComponentMapper) All() []Entity {
	return m.table.Data()
}

// TypesOf reverse-maps an entity's mask to the concrete component types it
// carries. Used during destruction to fan out storage removals.
func (m *ComponentMapper) TypesOf(id int) []reflect.Type {
	idx, ok := m.table.Contains(id)
	if !ok {
		return nil
	}
	mask := m.table.At(idx).Components
	out := make([]reflect.Type, 0, mask.Count())
	mask.Bits(func(bit uint) {
		out = append(out, m.types[bit])
	})
	return out
}

// Registered returns the number of registered component types.
func (m *ComponentMapper) Registered() int {
	return len(m.types)
}

// Count returns the number of live entities.
func (m *ComponentMapper) Count() int {
	return m.table.Count()
}

// Clear drops every entity record, keeping type registrations.
func (m *ComponentMapper) Clear() {
	m.table.Clear()
	m.results = nil
}
