package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/mtraindog/Geist/ecs"
	"github.com/mtraindog/Geist/ecs/component"
)

// Scripts runs the tengo behavior script of every scripted entity once per
// tick. A script sees and may reassign the globals id, dt, x, y, vx and
// vy; position writes land on the Transform, velocity writes on the
// Velocity component when present.
type Scripts struct{}

func NewScripts() *Scripts {
	return &Scripts{}
}

func (s *Scripts) Init(*ecs.World) error { return nil }

func (s *Scripts) Update(w *ecs.World) {
	dt := w.Delta().Seconds()
	for _, e := range ecs.With2[component.Script, component.Transform](w.Entities()) {
		sc := ecs.Ref[component.Script](w.Components(), e.ID)
		if sc.Compiled == nil {
			compiled, err := compile(sc)
			if err != nil {
				log.Printf("script: entity=%d %s: %v", e.ID, sc.Name, err)
				// strip the source so the failure logs once
				sc.Source = nil
				continue
			}
			sc.Compiled = compiled
		}
		if sc.Compiled == nil {
			continue
		}
		s.run(w, e.ID, sc.Compiled, dt)
	}
}

func (s *Scripts) Destroy(*ecs.World) {}

func compile(sc *component.Script) (*tengo.Compiled, error) {
	if len(sc.Source) == 0 {
		return nil, nil
	}
	script := tengo.NewScript(sc.Source)
	script.SetImports(stdlib.GetModuleMap("math", "rand"))
	for _, name := range []string{"id", "dt", "x", "y", "vx", "vy"} {
		if err := script.Add(name, 0.0); err != nil {
			return nil, fmt.Errorf("add global %s: %w", name, err)
		}
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", sc.Name, err)
	}
	return compiled, nil
}

func (s *Scripts) run(w *ecs.World, id int, compiled *tengo.Compiled, dt float64) {
	c := w.Components()
	tr := ecs.Ref[component.Transform](c, id)
	var vel component.Velocity
	hasVel := ecs.Has[component.Velocity](c, id)
	if hasVel {
		vel, _ = ecs.Get[component.Velocity](c, id)
	}

	_ = compiled.Set("id", id)
	_ = compiled.Set("dt", dt)
	_ = compiled.Set("x", tr.X)
	_ = compiled.Set("y", tr.Y)
	_ = compiled.Set("vx", vel.X)
	_ = compiled.Set("vy", vel.Y)

	if err := compiled.Run(); err != nil {
		log.Printf("script: entity=%d run: %v", id, err)
		return
	}

	tr.X = compiled.Get("x").Float()
	tr.Y = compiled.Get("y").Float()
	if hasVel {
		v := ecs.Ref[component.Velocity](c, id)
		v.X = compiled.Get("vx").Float()
		v.Y = compiled.Get("vy").Float()
	}
}
