package system

import (
	"github.com/jakecoffman/cp"

	"github.com/mtraindog/Geist/ecs"
	"github.com/mtraindog/Geist/ecs/component"
)

const gravity = 600

// Physics steps a Chipmunk2D space and keeps it in sync with the world:
// entities gain a body when they first appear with a Body component, and
// lose it again when they are destroyed.
type Physics struct {
	space  *cp.Space
	bodies map[int]*cp.Body
}

func NewPhysics() *Physics {
	return &Physics{
		bodies: make(map[int]*cp.Body),
	}
}

func (s *Physics) Init(*ecs.World) error {
	s.space = cp.NewSpace()
	s.space.Iterations = 10
	s.space.SetGravity(cp.Vector{X: 0, Y: gravity})
	return nil
}

// Space exposes the underlying space for collision handlers.
func (s *Physics) Space() *cp.Space {
	return s.space
}

func (s *Physics) Update(w *ecs.World) {
	// drop bodies whose entity is gone
	for id, body := range s.bodies {
		if w.Entities().Alive(id) {
			continue
		}
		s.removeBody(body)
		delete(s.bodies, id)
	}

	// admit new bodies and push transforms into the space
	for _, e := range ecs.With2[component.Body, component.Transform](w.Entities()) {
		b := ecs.Ref[component.Body](w.Components(), e.ID)
		tr := ecs.Ref[component.Transform](w.Components(), e.ID)
		if b.Body == nil {
			s.admit(e.ID, b, tr)
		}
		if b.Static {
			b.Body.SetPosition(cp.Vector{X: tr.X, Y: tr.Y})
		}
	}

	s.space.Step(w.Delta().Seconds())

	// write simulated positions back to the transforms
	for _, e := range ecs.With2[component.Body, component.Transform](w.Entities()) {
		b, _ := ecs.Get[component.Body](w.Components(), e.ID)
		if b.Body == nil || b.Static {
			continue
		}
		tr := ecs.Ref[component.Transform](w.Components(), e.ID)
		pos := b.Body.Position()
		tr.X = pos.X
		tr.Y = pos.Y
		tr.Rotation = b.Body.Angle()
	}
}

func (s *Physics) Destroy(*ecs.World) {
	for id, body := range s.bodies {
		s.removeBody(body)
		delete(s.bodies, id)
	}
	s.space = nil
}

func (s *Physics) admit(id int, b *component.Body, tr *component.Transform) {
	var body *cp.Body
	if b.Static {
		body = cp.NewStaticBody()
	} else {
		moment := cp.MomentForBox(b.Mass, b.Width, b.Height)
		body = cp.NewBody(b.Mass, moment)
	}
	body.SetPosition(cp.Vector{X: tr.X, Y: tr.Y})

	shape := cp.NewBox(body, b.Width, b.Height, 0)
	shape.SetFriction(b.Friction)
	shape.SetElasticity(b.Elasticity)

	s.space.AddBody(body)
	s.space.AddShape(shape)

	b.Body = body
	b.Shape = shape
	s.bodies[id] = body
}

func (s *Physics) removeBody(body *cp.Body) {
	body.EachShape(func(shape *cp.Shape) {
		s.space.RemoveShape(shape)
	})
	s.space.RemoveBody(body)
}
