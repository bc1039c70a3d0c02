package component

// Velocity is an entity's linear velocity in world units per second.
type Velocity struct {
	X, Y float64
}
