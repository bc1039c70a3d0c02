// Package component holds the concrete component types attached to
// entities. Components are plain data; all behavior lives in systems.
package component

// Transform is an entity's position, rotation and scale in world space.
type Transform struct {
	X, Y     float64
	Rotation float64
	ScaleX   float64
	ScaleY   float64
}
