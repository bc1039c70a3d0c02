package ecs

import (
	"errors"
	"testing"
	"time"
)

func TestWorldUpdateStateMachine(t *testing.T) {
	cases := []struct {
		name string
		run  func(w *World) error
		want error
	}{
		{
			"end_without_begin",
			func(w *World) error { return w.EndUpdate() },
			ErrNotUpdating,
		},
		{
			"double_begin",
			func(w *World) error {
				if err := w.BeginUpdate(time.Now()); err != nil {
					return err
				}
				return w.BeginUpdate(time.Now())
			},
			ErrAlreadyUpdating,
		},
		{
			"end_after_full_tick",
			func(w *World) error {
				if err := w.BeginUpdate(time.Now()); err != nil {
					return err
				}
				if err := w.EndUpdate(); err != nil {
					return err
				}
				return w.EndUpdate()
			},
			ErrNotUpdating,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld()
			if err := tc.run(w); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

// An out-of-sequence transition must not flush, clear, or otherwise touch
// world state.
func TestWorldGuardHasNoPartialEffect(t *testing.T) {
	w := NewWorld()
	em := w.Entities()
	id := em.Spawn()

	if err := w.BeginUpdate(time.Now()); err != nil {
		t.Fatalf("BeginUpdate: %v", err)
	}
	em.Remove(id)
	if err := w.BeginUpdate(time.Now()); !errors.Is(err, ErrAlreadyUpdating) {
		t.Fatalf("second BeginUpdate: %v", err)
	}
	// the failed transition must not have flushed the pending removal
	if !em.Alive(id) || len(em.Removals()) != 1 {
		t.Fatal("failed BeginUpdate perturbed pending state")
	}
	if err := w.EndUpdate(); err != nil {
		t.Fatalf("EndUpdate: %v", err)
	}
	if em.Alive(id) {
		t.Fatal("flush did not run on the real EndUpdate")
	}
}

type recordingSystem struct {
	inits    int
	updates  int
	destroys int
	onUpdate func(w *World)
}

func (s *recordingSystem) Init(*World) error { s.inits++; return nil }
func (s *recordingSystem) Update(w *World) {
	s.updates++
	if s.onUpdate != nil {
		s.onUpdate(w)
	}
}
func (s *recordingSystem) Destroy(*World) { s.destroys++ }

func TestWorldStepRunsSystems(t *testing.T) {
	w := NewWorld()
	s := &recordingSystem{}
	if err := w.AddSystem(s); err != nil {
		t.Fatalf("AddSystem: %v", err)
	}
	if s.inits != 1 {
		t.Fatalf("Init called %d times, want 1", s.inits)
	}
	for i := 0; i < 3; i++ {
		if err := w.Step(time.Now()); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	if s.updates != 3 {
		t.Fatalf("Update called %d times, want 3", s.updates)
	}
	w.Destroy()
	if s.destroys != 1 {
		t.Fatalf("Destroy called %d times, want 1", s.destroys)
	}
}

// Systems may mark entities for removal mid-tick; the flush happens in
// insertion order during EndUpdate.
func TestWorldFlushOrder(t *testing.T) {
	w := NewWorld()
	em := w.Entities()

	ids := []int{em.Spawn(), em.Spawn(), em.Spawn()}
	s := &recordingSystem{onUpdate: func(w *World) {
		// marked out of spawn order on purpose
		w.Entities().Remove(ids[2])
		w.Entities().Remove(ids[0])
	}}
	if err := w.AddSystem(s); err != nil {
		t.Fatalf("AddSystem: %v", err)
	}
	if err := w.Step(time.Now()); err != nil {
		t.Fatalf("Step: %v", err)
	}

	// freed LIFO in flush order 2, 0 -> reuse pops 0 first, then 2
	if id := em.Spawn(); id != ids[0] {
		t.Fatalf("Spawn = %d, want %d (last flushed)", id, ids[0])
	}
	if id := em.Spawn(); id != ids[2] {
		t.Fatalf("Spawn = %d, want %d", id, ids[2])
	}
}

func TestWorldEventsClearedOnEndUpdate(t *testing.T) {
	w := NewWorld()
	if err := w.BeginUpdate(time.Now()); err != nil {
		t.Fatalf("BeginUpdate: %v", err)
	}
	w.Events().Emit(Event{Type: "spawned", Data: 1})
	w.Events().Emit(Event{Type: "spawned", Data: 2})
	if w.Events().Len() != 2 {
		t.Fatalf("Len = %d, want 2", w.Events().Len())
	}
	if err := w.EndUpdate(); err != nil {
		t.Fatalf("EndUpdate: %v", err)
	}
	if w.Events().Len() != 0 {
		t.Fatal("events survived EndUpdate")
	}
}

func TestWorldDelta(t *testing.T) {
	w := NewWorld()
	base := time.Unix(0, 0)
	if err := w.Step(base); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if w.Delta() != 0 {
		t.Fatalf("Delta on first tick = %v, want 0", w.Delta())
	}
	if err := w.Step(base.Add(16 * time.Millisecond)); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if w.Delta() != 16*time.Millisecond {
		t.Fatalf("Delta = %v, want 16ms", w.Delta())
	}
}

func TestWorldIDsAreUnique(t *testing.T) {
	a, b := NewWorld(), NewWorld()
	if a.ID() == b.ID() {
		t.Fatalf("two worlds share id %d", a.ID())
	}
}
