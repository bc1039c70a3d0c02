package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mtraindog/Geist/ecs"
	"github.com/mtraindog/Geist/ecs/system"
	"github.com/mtraindog/Geist/prefabs"
)

const (
	baseWidth  = 640
	baseHeight = 360
)

type Game struct {
	frames int
	paused bool

	world     *ecs.World
	renderer  *system.Renderer
	builder   *prefabs.Builder
	watcher   *prefabs.Watcher
	proximity *system.Proximity
	motes     int
	debug     *DebugUI
}

func NewGame(watch bool, motes int) (*Game, error) {
	w := ecs.NewWorld()
	if err := prefabs.RegisterComponents(w.Components()); err != nil {
		return nil, err
	}

	proximity := system.NewProximity(16)

	// Scripts steer, movement integrates, physics resolves, ttl culls.
	for _, s := range []ecs.System{
		system.NewScripts(),
		system.NewMovement(),
		system.NewPhysics(),
		proximity,
		system.NewTTL(),
	} {
		if err := w.AddSystem(s); err != nil {
			return nil, err
		}
	}

	g := &Game{
		world:     w,
		renderer:  system.NewRenderer(),
		builder:   prefabs.NewBuilder(),
		proximity: proximity,
		motes:     motes,
	}
	if err := g.spawnScene(); err != nil {
		return nil, err
	}

	if watch {
		watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("prefab watcher disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	g.debug = NewDebugUI(g)
	return g, nil
}

func (g *Game) spawnScene() error {
	for _, name := range []string{"floor.yaml", "crate.yaml"} {
		if _, err := g.builder.BuildFile(g.world, name); err != nil {
			return err
		}
	}

	mote, err := prefabs.LoadSpec("mote.yaml")
	if err != nil {
		return err
	}
	for i := 0; i < g.motes; i++ {
		spec := *mote
		spec.Transform.X = 40 + float64(i)*(baseWidth-80)/float64(g.motes)
		spec.Transform.Y = 80 + float64(i%3)*40
		if _, err := g.builder.Build(g.world, &spec); err != nil {
			return err
		}
	}
	return nil
}

// reloadScene tears down every entity and rebuilds from the current
// prefab files, picking up edited specs and scripts.
func (g *Game) reloadScene() {
	live := g.world.Entities().All()
	ids := make([]int, len(live))
	for i, e := range live {
		ids[i] = e.ID
	}
	for _, id := range ids {
		g.world.Entities().RemoveImmediate(id)
	}
	if err := g.spawnScene(); err != nil {
		log.Printf("scene reload failed: %v", err)
	}
}

func (g *Game) Update() error {
	g.frames++

	if g.watcher != nil {
		select {
		case name := <-g.watcher.Events:
			log.Printf("prefab changed: %s", name)
			g.reloadScene()
		case err := <-g.watcher.Errors:
			log.Printf("prefab watcher: %v", err)
		default:
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}

	if !g.paused {
		if err := g.world.Step(time.Now()); err != nil {
			return fmt.Errorf("world step: %w", err)
		}
	}

	g.debug.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.renderer.Draw(g.world, screen)
	g.debug.Draw(screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.world.Destroy()
}
