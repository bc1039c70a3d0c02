package component

// RenderLayer orders sprites back-to-front; lower Z draws first.
type RenderLayer struct {
	Z int
}
