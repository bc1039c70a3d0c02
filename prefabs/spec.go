package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EntitySpec is the declarative form of an entity. Transform is always
// applied; every other section is attached only when present.
type EntitySpec struct {
	Name      string        `yaml:"name"`
	Transform TransformSpec `yaml:"transform"`
	Velocity  *VelocitySpec `yaml:"velocity"`
	Sprite    *SpriteSpec   `yaml:"sprite"`
	Layer     *LayerSpec    `yaml:"layer"`
	Body      *BodySpec     `yaml:"body"`
	Script    *ScriptSpec   `yaml:"script"`
	TTL       *TTLSpec      `yaml:"ttl"`
	Health    *HealthSpec   `yaml:"health"`
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
	Scale    float64 `yaml:"scale"`
}

type VelocitySpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SpriteSpec describes a procedurally generated solid-color sprite.
type SpriteSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Color  string `yaml:"color"`
}

type LayerSpec struct {
	Z int `yaml:"z"`
}

type BodySpec struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Mass       float64 `yaml:"mass"`
	Friction   float64 `yaml:"friction"`
	Elasticity float64 `yaml:"elasticity"`
	Static     bool    `yaml:"static"`
}

type ScriptSpec struct {
	File string `yaml:"file"`
}

type TTLSpec struct {
	Frames int `yaml:"frames"`
}

type HealthSpec struct {
	Max int `yaml:"max"`
}

// LoadSpec loads and unmarshals a prefab definition file.
func LoadSpec(filename string) (*EntitySpec, error) {
	data, err := Load(filename)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	var spec EntitySpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return &spec, nil
}

// ParseColor parses "#rgb" and "#rrggbb" hex colors.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return color.RGBA{}, fmt.Errorf("prefabs: bad color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("prefabs: bad color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
