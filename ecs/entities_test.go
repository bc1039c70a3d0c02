package ecs

import (
	"testing"
	"time"
)

func tick(t *testing.T, w *World) {
	t.Helper()
	if err := w.BeginUpdate(time.Now()); err != nil {
		t.Fatalf("BeginUpdate: %v", err)
	}
	if err := w.EndUpdate(); err != nil {
		t.Fatalf("EndUpdate: %v", err)
	}
}

func TestSpawnIssuesSequentialIDs(t *testing.T) {
	w := NewWorld()
	for want := 0; want < 5; want++ {
		if id := w.Entities().Spawn(); id != want {
			t.Fatalf("Spawn = %d, want %d", id, want)
		}
	}
	if w.Entities().Count() != 5 {
		t.Fatalf("Count = %d, want 5", w.Entities().Count())
	}
}

func TestIDReuseIsLIFO(t *testing.T) {
	w := NewWorld()
	em := w.Entities()

	if id := em.Spawn(); id != 0 {
		t.Fatalf("first Spawn = %d, want 0", id)
	}
	em.RemoveImmediate(0)
	if id := em.Spawn(); id != 0 {
		t.Fatalf("Spawn after destroy = %d, want reused 0", id)
	}
	// 0 is live again, so the id space must grow
	if id := em.Spawn(); id != 1 {
		t.Fatalf("Spawn with empty free stack = %d, want 1", id)
	}

	// most recently freed comes back first
	em.RemoveImmediate(0)
	em.RemoveImmediate(1)
	if id := em.Spawn(); id != 1 {
		t.Fatalf("LIFO reuse: Spawn = %d, want 1", id)
	}
	if id := em.Spawn(); id != 0 {
		t.Fatalf("LIFO reuse: Spawn = %d, want 0", id)
	}
}

func TestDeferredRemoval(t *testing.T) {
	w := newTestWorld(t)
	em := w.Entities()
	c := w.Components()

	id := em.Spawn()
	Add(c, id, health{Current: 1, Max: 1})

	if err := w.BeginUpdate(time.Now()); err != nil {
		t.Fatalf("BeginUpdate: %v", err)
	}
	em.Remove(id)
	em.Remove(id) // re-enqueue is a no-op

	if got := em.Removals(); len(got) != 1 || got[0] != id {
		t.Fatalf("Removals = %v, want [%d]", got, id)
	}
	// still fully present until the flush
	if !em.Alive(id) {
		t.Fatal("entity should stay live until EndUpdate")
	}
	if !Has[health](c, id) {
		t.Fatal("components should stay attached until EndUpdate")
	}
	if len(em.All()) != 1 {
		t.Fatal("All should still include the marked entity")
	}

	if err := w.EndUpdate(); err != nil {
		t.Fatalf("EndUpdate: %v", err)
	}
	if em.Alive(id) {
		t.Fatal("entity should be destroyed after EndUpdate")
	}
	if Has[health](c, id) {
		t.Fatal("components should be detached after EndUpdate")
	}
	if len(em.Removals()) != 0 {
		t.Fatal("pending queue should be cleared after EndUpdate")
	}
}

func TestRemoveImmediateDetachesEverything(t *testing.T) {
	w := newTestWorld(t)
	em := w.Entities()
	c := w.Components()

	id := em.Spawn()
	Add(c, id, health{Current: 5, Max: 5})
	Add(c, id, label{Text: "doomed"})

	em.RemoveImmediate(id)
	if em.Alive(id) {
		t.Fatal("entity still live after RemoveImmediate")
	}
	if Count[health](c) != 0 || Count[label](c) != 0 {
		t.Fatalf("storages not emptied: health=%d label=%d", Count[health](c), Count[label](c))
	}
}

func TestWithQueries(t *testing.T) {
	w := newTestWorld(t)
	em := w.Entities()
	c := w.Components()

	a := em.Spawn()
	b := em.Spawn()
	d := em.Spawn()
	Add(c, a, health{}) // a: {health}
	Add(c, b, health{}) // b: {health, label}
	Add(c, b, label{})
	Add(c, d, label{}) // d: {label}

	cases := []struct {
		name  string
		query func() []Entity
		want  []int
	}{
		{"health", func() []Entity { return With1[health](em) }, []int{a, b}},
		{"label", func() []Entity { return With1[label](em) }, []int{b, d}},
		{"both", func() []Entity { return With2[health, label](em) }, []int{b}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.query()
			if len(got) != len(tc.want) {
				t.Fatalf("query returned %d entities, want %d", len(got), len(tc.want))
			}
			for i, rec := range got {
				if rec.ID != tc.want[i] {
					t.Fatalf("result[%d].ID = %d, want %d", i, rec.ID, tc.want[i])
				}
			}
		})
	}

	t.Run("unregistered", func(t *testing.T) {
		type never struct{}
		if got := With1[never](em); got != nil {
			t.Fatalf("query for unregistered type = %v, want nil", got)
		}
	})
}

func TestQueryResultReflectsDenseOrderAfterRemoval(t *testing.T) {
	w := newTestWorld(t)
	em := w.Entities()
	c := w.Components()

	ids := make([]int, 4)
	for i := range ids {
		ids[i] = em.Spawn()
		Add(c, ids[i], health{Current: ids[i]})
	}
	em.RemoveImmediate(ids[1])

	got := With1[health](em)
	if len(got) != 3 {
		t.Fatalf("query returned %d entities, want 3", len(got))
	}
	for _, rec := range got {
		if rec.ID == ids[1] {
			t.Fatal("destroyed entity still in query result")
		}
	}
}
