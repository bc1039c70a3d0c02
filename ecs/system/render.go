package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mtraindog/Geist/ecs"
	"github.com/mtraindog/Geist/ecs/component"
)

// Renderer draws every entity with a Transform, a Sprite and a
// RenderLayer, back to front by layer. It is not a tick system: the driver
// calls Draw from its render callback, outside the world's update phase.
type Renderer struct {
	items []renderItem
}

type renderItem struct {
	z      int
	img    *ebiten.Image
	x, y   float64
	rot    float64
	sx, sy float64
	flip   bool
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	c := w.Components()
	r.items = r.items[:0]
	for _, e := range ecs.With3[component.Transform, component.Sprite, component.RenderLayer](w.Entities()) {
		tr, _ := ecs.Get[component.Transform](c, e.ID)
		sp, _ := ecs.Get[component.Sprite](c, e.ID)
		layer, _ := ecs.Get[component.RenderLayer](c, e.ID)
		if sp.Image == nil {
			continue
		}
		sx, sy := tr.ScaleX, tr.ScaleY
		if sx == 0 {
			sx = 1
		}
		if sy == 0 {
			sy = 1
		}
		r.items = append(r.items, renderItem{
			z:    layer.Z,
			img:  sp.Image,
			x:    tr.X,
			y:    tr.Y,
			rot:  tr.Rotation,
			sx:   sx,
			sy:   sy,
			flip: sp.FlipX,
		})
	}

	sort.SliceStable(r.items, func(i, j int) bool {
		return r.items[i].z < r.items[j].z
	})

	for _, it := range r.items {
		op := &ebiten.DrawImageOptions{}
		bounds := it.img.Bounds()
		// rotate and scale around the sprite center
		op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
		if it.flip {
			op.GeoM.Scale(-1, 1)
		}
		op.GeoM.Scale(it.sx, it.sy)
		op.GeoM.Rotate(it.rot)
		op.GeoM.Translate(it.x, it.y)
		screen.DrawImage(it.img, op)
	}
}
