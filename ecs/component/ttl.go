package component

// TTL destroys an entity after the given number of update ticks. Expiry
// goes through the deferred-removal queue, so an expiring entity stays
// visible for the remainder of its final tick.
type TTL struct {
	Frames int
}
