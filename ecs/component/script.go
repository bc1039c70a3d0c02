package component

import "github.com/d5/tengo/v2"

// Script attaches a tengo behavior script to an entity. The script system
// compiles Source lazily on first run and caches the result in Compiled.
type Script struct {
	Name     string
	Source   []byte
	Compiled *tengo.Compiled
}
