package component

import "github.com/hajimehoshi/ebiten/v2"

// Sprite is a drawable image anchored at the entity's transform.
type Sprite struct {
	Image *ebiten.Image
	FlipX bool
}
