package system

import (
	"github.com/mtraindog/Geist/ecs"
	"github.com/mtraindog/Geist/ecs/component"
)

// TTL decrements frame-based time-to-live components and marks expired
// entities for removal. Expiry uses the deferred queue, so an expiring
// entity survives until the end of the tick and never breaks an iteration
// in progress.
type TTL struct{}

func NewTTL() *TTL {
	return &TTL{}
}

func (s *TTL) Init(*ecs.World) error { return nil }

func (s *TTL) Update(w *ecs.World) {
	for _, e := range ecs.With1[component.TTL](w.Entities()) {
		ttl := ecs.Ref[component.TTL](w.Components(), e.ID)
		ttl.Frames--
		if ttl.Frames <= 0 {
			w.Entities().Remove(e.ID)
			w.Events().Emit(ecs.Event{Type: "ttl_expired", Data: e.ID})
		}
	}
}

func (s *TTL) Destroy(*ecs.World) {}
