package component

import "github.com/jakecoffman/cp"

// Body stores Chipmunk2D runtime data and collider configuration. Body and
// Shape are populated by the physics system when the entity first enters
// the space.
type Body struct {
	Body  *cp.Body
	Shape *cp.Shape

	Width      float64
	Height     float64
	Mass       float64
	Friction   float64
	Elasticity float64
	Static     bool
}
