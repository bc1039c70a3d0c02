package ecs

import (
	"errors"
	"testing"
)

type health struct{ Current, Max int }
type label struct{ Text string }

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w := NewWorldWithCapacity(16)
	if err := Register[health](w.Components(), 0); err != nil {
		t.Fatalf("Register[health]: %v", err)
	}
	if err := Register[label](w.Components(), 0); err != nil {
		t.Fatalf("Register[label]: %v", err)
	}
	return w
}

func TestComponentsRoundTrip(t *testing.T) {
	w := newTestWorld(t)
	c := w.Components()
	id := w.Entities().Spawn()

	Add(c, id, health{Current: 10, Max: 10})
	got, ok := Get[health](c, id)
	if !ok {
		t.Fatal("Get reported absent after Add")
	}
	if got != (health{10, 10}) {
		t.Fatalf("Get = %+v", got)
	}
	if !Has[health](c, id) {
		t.Fatal("Has = false after Add")
	}
	if Has[label](c, id) {
		t.Fatal("Has[label] = true, nothing attached")
	}
}

func TestComponentsRefMutation(t *testing.T) {
	w := newTestWorld(t)
	c := w.Components()
	id := w.Entities().Spawn()
	Add(c, id, health{Current: 10, Max: 10})

	Ref[health](c, id).Current -= 3
	if got, _ := Get[health](c, id); got.Current != 7 {
		t.Fatalf("Current = %d after Ref mutation, want 7", got.Current)
	}
}

func TestComponentsRemove(t *testing.T) {
	w := newTestWorld(t)
	c := w.Components()
	id := w.Entities().Spawn()
	Add(c, id, label{Text: "x"})

	if !Remove[label](c, id) {
		t.Fatal("Remove should report true for an attached component")
	}
	if Has[label](c, id) {
		t.Fatal("Has = true after Remove")
	}
	if Remove[label](c, id) {
		t.Fatal("second Remove should report false")
	}
	// the mask bit must be cleared too
	if len(With1[label](w.Entities())) != 0 {
		t.Fatal("query still matches after Remove")
	}
}

func TestComponentsTryAdd(t *testing.T) {
	w := newTestWorld(t)
	c := w.Components()
	id := w.Entities().Spawn()

	if !TryAdd(c, id, label{Text: "a"}) {
		t.Fatal("TryAdd should succeed on a live, empty entity")
	}
	if TryAdd(c, id, label{Text: "b"}) {
		t.Fatal("TryAdd should refuse a duplicate attach")
	}
	if got, _ := Get[label](c, id); got.Text != "a" {
		t.Fatalf("duplicate TryAdd overwrote value: %q", got.Text)
	}
	if TryAdd(c, 99, label{}) {
		t.Fatal("TryAdd should refuse a non-live id")
	}
	type unregistered struct{}
	if TryAdd(c, id, unregistered{}) {
		t.Fatal("TryAdd should refuse an unregistered type")
	}
}

func TestComponentsOfType(t *testing.T) {
	w := newTestWorld(t)
	c := w.Components()

	ids := make([]int, 3)
	for i := range ids {
		ids[i] = w.Entities().Spawn()
		Add(c, ids[i], health{Current: i, Max: 10})
	}
	if Count[health](c) != 3 {
		t.Fatalf("Count = %d, want 3", Count[health](c))
	}

	view := OfType[health](c)
	owners := OwnersOf[health](c)
	if len(view) != 3 || len(owners) != 3 {
		t.Fatalf("dense views: %d values, %d owners", len(view), len(owners))
	}
	for i := range view {
		want, _ := Get[health](c, owners[i])
		if view[i] != want {
			t.Fatalf("OfType[%d] = %+v, owner %d holds %+v", i, view[i], owners[i], want)
		}
	}
}

func TestComponentsRegisterCap(t *testing.T) {
	w := NewWorldWithCapacity(4)
	c := w.Components()
	m := c.mapper
	for i := 0; i < MaxComponentTypes; i++ {
		if _, err := m.RegisterType(arrayType(i)); err != nil {
			t.Fatalf("registration %d: %v", i, err)
		}
	}
	err := Register[health](c, 0)
	if !errors.Is(err, ErrMaskExhausted) {
		t.Fatalf("Register past the cap: err = %v, want ErrMaskExhausted", err)
	}
}
