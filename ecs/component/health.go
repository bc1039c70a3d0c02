package component

// Health tracks hit points. Systems that deal damage mutate Current in
// place; an entity dies when Current reaches zero.
type Health struct {
	Current int
	Max     int
}

// Dead reports whether the entity is out of hit points.
func (h Health) Dead() bool {
	return h.Current <= 0
}
