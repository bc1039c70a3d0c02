package ecs

import "strconv"

// Entity is a live entity record: a world-unique id paired with the mask of
// component types currently attached. Records live in the component
// mapper's dense table; their dense position is unstable across removals,
// so always re-resolve by ID rather than holding on to a record's slot.
type Entity struct {
	ID         int
	Components Mask
}

func (e Entity) String() string {
	return "entity " + strconv.Itoa(e.ID)
}
