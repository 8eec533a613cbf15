// Package config provides YAML-based render configuration for the
// leonardo CLI and TUI.
package config

// Render holds all tunables for the spiral and rectangle views.
type Render struct {
	Spiral Spiral `yaml:"spiral"`
	Rects  Rects  `yaml:"rects"`
}

// Spiral configures phyllotaxis rendering.
type Spiral struct {
	Seeds   int     `yaml:"seeds"`   // Number of seeds to place
	Spacing float64 `yaml:"spacing"` // Radial spacing multiplier
	Glyphs  string  `yaml:"glyphs"`  // Glyphs cycled per seed
}

// Rects configures the nested rectangle view.
type Rects struct {
	Depth int `yaml:"depth"` // Number of nested rectangles
}

// Default returns the hardcoded fallback configuration, used when even
// the embedded YAML cannot be parsed.
func Default() Render {
	return Render{
		Spiral: Spiral{
			Seeds:   300,
			Spacing: 1.0,
			Glyphs:  "•●○",
		},
		Rects: Rects{
			Depth: 5,
		},
	}
}

// Normalize clamps nonsensical values back to usable ones so a partial
// or hand-edited config cannot produce an empty render.
func (r Render) Normalize() Render {
	if r.Spiral.Seeds <= 0 {
		r.Spiral.Seeds = Default().Spiral.Seeds
	}
	if r.Spiral.Spacing <= 0 {
		r.Spiral.Spacing = Default().Spiral.Spacing
	}
	if r.Spiral.Glyphs == "" {
		r.Spiral.Glyphs = Default().Spiral.Glyphs
	}
	if r.Rects.Depth <= 0 {
		r.Rects.Depth = Default().Rects.Depth
	}
	return r
}
