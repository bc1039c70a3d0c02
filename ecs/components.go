package ecs

import (
	"errors"
	"reflect"
)

// ErrTypeNotRegistered is returned when a component type is used before
// Register.
var ErrTypeNotRegistered = errors.New("ecs: component type not registered")

// componentStore is the type-erased face of a Storage[T], enough for the
// destruction fan-out which only knows reflect.Types.
type componentStore interface {
	removeOwner(id int) bool
	clear()
	count() int
}

type typedStore[T any] struct {
	*Storage[T]
}

func (s typedStore[T]) removeOwner(id int) bool { return s.Remove(id) }
func (s typedStore[T]) clear()                  { s.Clear() }
func (s typedStore[T]) count() int              { return s.Count() }

// Components composes the per-type storages with the component mapper. All
// typed access goes through the package-level generic functions (Register,
// Add, Get, Remove, ...), which resolve the Storage[T] for a type and keep
// the entity's mask in sync with the storage contents.
type Components struct {
	mapper   *ComponentMapper
	stores   map[reflect.Type]componentStore
	capacity int
}

func newComponents(mapper *ComponentMapper, capacity int) *Components {
	return &Components{
		mapper:   mapper,
		stores:   make(map[reflect.Type]componentStore),
		capacity: capacity,
	}
}

// removeAll detaches every component the mapper records for id.
func (c *Components) removeAll(id int) {
	for _, t := range c.mapper.TypesOf(id) {
		c.stores[t].removeOwner(id)
	}
}

// clear drops every stored component, keeping registrations and capacity.
func (c *Components) clear() {
	for _, st := range c.stores {
		st.clear()
	}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Register assigns T a mask bit and creates its storage. capacity <= 0
// uses the world default. Registering a type twice is a no-op. Fails with
// ErrMaskExhausted once the mask width is spent.
func Register[T any](c *Components, capacity int) error {
	t := typeOf[T]()
	if _, ok := c.stores[t]; ok {
		return nil
	}
	if _, err := c.mapper.RegisterType(t); err != nil {
		return err
	}
	if capacity <= 0 {
		capacity = c.capacity
	}
	c.stores[t] = typedStore[T]{NewStorage[T](capacity)}
	return nil
}

func storeOf[T any](c *Components) (typedStore[T], bool) {
	st, ok := c.stores[typeOf[T]()]
	if !ok {
		return typedStore[T]{}, false
	}
	return st.(typedStore[T]), true
}

// Add attaches value to entity id, growing storage as needed.
//
// Unchecked fast path: T must be registered, id must be live, and id must
// not already carry a T. Violations are not detected; use TryAdd when the
// call site cannot guarantee them.
func Add[T any](c *Components, id int, value T) {
	t := typeOf[T]()
	st := c.stores[t].(typedStore[T])
	st.AddWithResize(id, value)
	c.mapper.SetBit(id, c.mapper.bits[t])
}

// TryAdd is the checked tier of Add: it reports false, attaching nothing,
// when T is unregistered, id is not live, or id already carries a T.
func TryAdd[T any](c *Components, id int, value T) bool {
	st, ok := storeOf[T](c)
	if !ok {
		return false
	}
	if !c.mapper.Contains(id) {
		return false
	}
	if _, ok := st.Contains(id); ok {
		return false
	}
	st.AddWithResize(id, value)
	c.mapper.SetBit(id, c.mapper.bits[typeOf[T]()])
	return true
}

// Has reports whether entity id carries a T.
func Has[T any](c *Components, id int) bool {
	st, ok := storeOf[T](c)
	if !ok {
		return false
	}
	_, ok = st.Contains(id)
	return ok
}

// Get returns a copy of the T attached to id.
func Get[T any](c *Components, id int) (T, bool) {
	st, ok := storeOf[T](c)
	if !ok {
		var zero T
		return zero, false
	}
	return st.Get(id)
}

// Ref returns a mutable reference to the T attached to id, for in-place
// mutation.
//
// Unchecked: undefined for an id that does not carry a T. The pointer is
// invalidated by the next structural change to the storage.
func Ref[T any](c *Components, id int) *T {
	st := c.stores[typeOf[T]()].(typedStore[T])
	return st.Ref(id)
}

// Remove detaches the T from id, reporting whether one was attached.
func Remove[T any](c *Components, id int) bool {
	st, ok := storeOf[T](c)
	if !ok {
		return false
	}
	if !st.Remove(id) {
		return false
	}
	c.mapper.ClearBit(id, c.mapper.bits[typeOf[T]()])
	return true
}

// OfType returns the dense view of every live T, in storage order. The
// slice aliases the backing storage; any attach or detach of a T
// invalidates it.
func OfType[T any](c *Components) []T {
	st, ok := storeOf[T](c)
	if !ok {
		return nil
	}
	return st.Data()
}

// OwnersOf returns the entity ids owning each element of OfType's view, in
// the same order, aliasing the backing storage.
func OwnersOf[T any](c *Components) []int {
	st, ok := storeOf[T](c)
	if !ok {
		return nil
	}
	return st.Owners()
}

// Count returns the number of live T components.
func Count[T any](c *Components) int {
	st, ok := storeOf[T](c)
	if !ok {
		return 0
	}
	return st.Count()
}
