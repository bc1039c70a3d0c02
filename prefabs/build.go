package prefabs

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mtraindog/Geist/ecs"
	"github.com/mtraindog/Geist/ecs/component"
)

// ImageMaker produces the image backing a procedural sprite. Builder uses
// ebiten by default; tests substitute a maker that avoids the graphics
// stack.
type ImageMaker func(width, height int, fill color.Color) *ebiten.Image

func ebitenImage(width, height int, fill color.Color) *ebiten.Image {
	img := ebiten.NewImage(width, height)
	img.Fill(fill)
	return img
}

// Builder spawns entities from prefab definitions through the world's
// entity and component facades.
type Builder struct {
	Images ImageMaker
}

func NewBuilder() *Builder {
	return &Builder{Images: ebitenImage}
}

// RegisterComponents registers every component type the builder can
// attach. Call it once per world before the first Build.
func RegisterComponents(c *ecs.Components) error {
	for _, err := range []error{
		ecs.Register[component.Transform](c, 0),
		ecs.Register[component.Velocity](c, 0),
		ecs.Register[component.Sprite](c, 0),
		ecs.Register[component.RenderLayer](c, 0),
		ecs.Register[component.Body](c, 0),
		ecs.Register[component.Script](c, 0),
		ecs.Register[component.TTL](c, 0),
		ecs.Register[component.Health](c, 0),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

// Build spawns one entity from spec and returns its id.
func (b *Builder) Build(w *ecs.World, spec *EntitySpec) (int, error) {
	c := w.Components()
	id := w.Entities().Spawn()

	scale := spec.Transform.Scale
	if scale == 0 {
		scale = 1
	}
	ecs.Add(c, id, component.Transform{
		X:        spec.Transform.X,
		Y:        spec.Transform.Y,
		Rotation: spec.Transform.Rotation,
		ScaleX:   scale,
		ScaleY:   scale,
	})

	if v := spec.Velocity; v != nil {
		ecs.Add(c, id, component.Velocity{X: v.X, Y: v.Y})
	}
	if sp := spec.Sprite; sp != nil {
		fill, err := ParseColor(sp.Color)
		if err != nil {
			w.Entities().RemoveImmediate(id)
			return 0, fmt.Errorf("prefabs: %s: %w", spec.Name, err)
		}
		ecs.Add(c, id, component.Sprite{Image: b.Images(sp.Width, sp.Height, fill)})
	}
	if l := spec.Layer; l != nil {
		ecs.Add(c, id, component.RenderLayer{Z: l.Z})
	}
	if bd := spec.Body; bd != nil {
		ecs.Add(c, id, component.Body{
			Width:      bd.Width,
			Height:     bd.Height,
			Mass:       bd.Mass,
			Friction:   bd.Friction,
			Elasticity: bd.Elasticity,
			Static:     bd.Static,
		})
	}
	if s := spec.Script; s != nil {
		src, err := LoadScript(s.File)
		if err != nil {
			w.Entities().RemoveImmediate(id)
			return 0, fmt.Errorf("prefabs: %s: script %s: %w", spec.Name, s.File, err)
		}
		ecs.Add(c, id, component.Script{Name: s.File, Source: src})
	}
	if ttl := spec.TTL; ttl != nil {
		ecs.Add(c, id, component.TTL{Frames: ttl.Frames})
	}
	if h := spec.Health; h != nil {
		ecs.Add(c, id, component.Health{Current: h.Max, Max: h.Max})
	}

	return id, nil
}

// BuildFile is Build for a definition loaded straight from a file name.
func (b *Builder) BuildFile(w *ecs.World, filename string) (int, error) {
	spec, err := LoadSpec(filename)
	if err != nil {
		return 0, err
	}
	return b.Build(w, spec)
}
