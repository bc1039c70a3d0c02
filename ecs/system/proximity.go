package system

import (
	"github.com/mtraindog/Geist/ecs"
	"github.com/mtraindog/Geist/ecs/component"
	"github.com/mtraindog/Geist/spatial"
)

// Contact reports a pair of entities that came within range of each
// other. Carried as event data under the "contact" type.
type Contact struct {
	A, B int
}

// Proximity maintains a spatial hash over every positioned entity and
// emits a contact event per pair closer than the configured radius.
// Each pair is reported once per tick, with A < B.
type Proximity struct {
	radius   float64
	grid     *spatial.Grid
	hits     []int
	contacts int
}

func NewProximity(radius float64) *Proximity {
	return &Proximity{
		radius: radius,
		grid:   spatial.NewGrid(radius * 2),
	}
}

func (s *Proximity) Init(*ecs.World) error { return nil }

// Contacts returns the number of pairs reported by the last Update.
func (s *Proximity) Contacts() int {
	return s.contacts
}

func (s *Proximity) Update(w *ecs.World) {
	s.contacts = 0
	s.grid.Clear()
	positioned := ecs.With1[component.Transform](w.Entities())
	for _, e := range positioned {
		tr := ecs.Ref[component.Transform](w.Components(), e.ID)
		s.grid.Insert(e.ID, tr.X, tr.Y)
	}

	r2 := s.radius * s.radius
	for _, e := range positioned {
		tr := ecs.Ref[component.Transform](w.Components(), e.ID)
		s.hits = s.grid.Query(s.hits[:0], tr.X, tr.Y, s.radius)
		for _, other := range s.hits {
			if other <= e.ID {
				continue
			}
			ot := ecs.Ref[component.Transform](w.Components(), other)
			dx, dy := ot.X-tr.X, ot.Y-tr.Y
			if dx*dx+dy*dy <= r2 {
				s.contacts++
				w.Events().Emit(ecs.Event{Type: "contact", Data: Contact{A: e.ID, B: other}})
			}
		}
	}
}

func (s *Proximity) Destroy(*ecs.World) {}
