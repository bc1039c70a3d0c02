package ecs

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrAlreadyUpdating is returned by BeginUpdate when a tick is open.
	ErrAlreadyUpdating = errors.New("ecs: BeginUpdate while already updating")
	// ErrNotUpdating is returned by EndUpdate when no tick is open.
	ErrNotUpdating = errors.New("ecs: EndUpdate without a matching BeginUpdate")
)

// updateState is the world's two-phase tick state.
type updateState int

const (
	readyToUpdate updateState = iota
	updating
)

// System is a polymorphic unit of game logic. Systems touch entity state
// exclusively through the world's Entities and Components facades, and run
// sequentially on the single thread driving the world.
type System interface {
	Init(w *World) error
	Update(w *World)
	Destroy(w *World)
}

// defaultCapacity is the initial entity/component capacity of a world.
const defaultCapacity = 256

// World composes the id allocator, the component mapper, the typed
// component storages and the entity lifecycle into one simulation. A tick
// is the pair BeginUpdate/EndUpdate; deferred destructions flush at exactly
// one well-defined point, inside EndUpdate.
//
// A world is single-threaded and fully synchronous: one logical thread
// mutates it between BeginUpdate and EndUpdate, and no operation suspends.
type World struct {
	id    int
	state updateState

	now   time.Time
	delta time.Duration

	ids        *IDAllocator
	mapper     *ComponentMapper
	components *Components
	entities   *Entities
	systems    []System
	events     EventQueue
}

// NewWorld creates an empty world with default capacity.
func NewWorld() *World {
	return NewWorldWithCapacity(defaultCapacity)
}

// NewWorldWithCapacity creates an empty world whose mapper and storages
// start at the given capacity.
func NewWorldWithCapacity(capacity int) *World {
	ids := NewIDAllocator()
	mapper := NewComponentMapper(capacity)
	components := newComponents(mapper, capacity)
	return &World{
		id:         nextWorldID(),
		ids:        ids,
		mapper:     mapper,
		components: components,
		entities:   newEntities(ids, mapper, components),
	}
}

// ID returns the world's process-unique id.
func (w *World) ID() int {
	return w.id
}

// Entities returns the entity lifecycle manager.
func (w *World) Entities() *Entities {
	return w.entities
}

// Components returns the typed component facade.
func (w *World) Components() *Components {
	return w.components
}

// Events returns the per-tick event queue. Events not drained by a system
// before EndUpdate are discarded.
func (w *World) Events() *EventQueue {
	return &w.events
}

// Now returns the timestamp of the current tick.
func (w *World) Now() time.Time {
	return w.now
}

// Delta returns the elapsed time between the previous tick and this one,
// zero on the first tick.
func (w *World) Delta() time.Duration {
	return w.delta
}

// AddSystem initializes s and appends it to the update order.
func (w *World) AddSystem(s System) error {
	if err := s.Init(w); err != nil {
		return fmt.Errorf("ecs: init system %T: %w", s, err)
	}
	w.systems = append(w.systems, s)
	return nil
}

// BeginUpdate opens a tick, recording its timestamp. Calling it while a
// tick is already open fails with ErrAlreadyUpdating and has no effect.
func (w *World) BeginUpdate(now time.Time) error {
	if w.state != readyToUpdate {
		return ErrAlreadyUpdating
	}
	if !w.now.IsZero() {
		w.delta = now.Sub(w.now)
	}
	w.now = now
	w.state = updating
	return nil
}

// EndUpdate closes the tick: every entity marked for removal is destroyed
// in insertion order, the pending queue is cleared, and undrained per-tick
// events are discarded. Calling it without an open tick fails with
// ErrNotUpdating and has no effect.
func (w *World) EndUpdate() error {
	if w.state != updating {
		return ErrNotUpdating
	}
	w.entities.flush()
	w.events.flush()
	w.state = readyToUpdate
	return nil
}

// Step runs one full tick: BeginUpdate, every system in registration
// order, EndUpdate.
func (w *World) Step(now time.Time) error {
	if err := w.BeginUpdate(now); err != nil {
		return err
	}
	for _, s := range w.systems {
		s.Update(w)
	}
	return w.EndUpdate()
}

// Destroy tears the world down: systems are destroyed in reverse
// registration order, then all component and entity state is dropped. The
// world must not be mid-tick.
func (w *World) Destroy() {
	for i := len(w.systems) - 1; i >= 0; i-- {
		w.systems[i].Destroy(w)
	}
	w.systems = nil
	w.components.clear()
	w.mapper.Clear()
	w.events.flush()
}
