// Package system holds the built-in systems that run against a world each
// tick. Systems touch entity state only through the Entities and
// Components facades.
package system

import (
	"github.com/mtraindog/Geist/ecs"
	"github.com/mtraindog/Geist/ecs/component"
)

// Movement integrates velocity into position for every entity carrying
// both a Transform and a Velocity.
type Movement struct{}

func NewMovement() *Movement {
	return &Movement{}
}

func (s *Movement) Init(*ecs.World) error { return nil }

func (s *Movement) Update(w *ecs.World) {
	dt := w.Delta().Seconds()
	for _, e := range ecs.With2[component.Transform, component.Velocity](w.Entities()) {
		v, _ := ecs.Get[component.Velocity](w.Components(), e.ID)
		tr := ecs.Ref[component.Transform](w.Components(), e.ID)
		tr.X += v.X * dt
		tr.Y += v.Y * dt
	}
}

func (s *Movement) Destroy(*ecs.World) {}
