// Package formats provides pluggable level catalog file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/dragoncave/internal/core"
)

// YAMLCatalog represents the YAML structure for a catalog file.
type YAMLCatalog struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Levels      []YAMLLevel `yaml:"levels"`
}

// YAMLLevel represents one level record.
type YAMLLevel struct {
	Name      string      `yaml:"name,omitempty"`
	Width     float64     `yaml:"width"`
	Platforms []YAMLRect  `yaml:"platforms"`
	Treasures []YAMLPoint `yaml:"treasures,omitempty"`
	Obstacles []YAMLPoint `yaml:"obstacles,omitempty"`
	Dragons   []YAMLPoint `yaml:"dragons,omitempty"`
	Exit      YAMLPoint   `yaml:"exit"`
}

// YAMLRect is a platform rectangle (top-left corner plus size).
type YAMLRect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// YAMLPoint is an (x, yBottom) anchor.
type YAMLPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Level represents a parsed level ready for use.
type Level struct {
	Name      string
	Width     float64
	Platforms []core.RectF
	Treasures []core.Vec2
	Obstacles []core.Vec2
	Dragons   []core.Vec2
	Exit      core.Vec2
}

// Catalog represents a parsed catalog.
type Catalog struct {
	ID          string
	Name        string
	Description string
	Levels      []Level
}

// ParseYAML parses a YAML catalog file.
func ParseYAML(data []byte) (Catalog, error) {
	var yc YAMLCatalog
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Catalog{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	cat := Catalog{
		ID:          yc.ID,
		Name:        yc.Name,
		Description: yc.Description,
		Levels:      make([]Level, 0, len(yc.Levels)),
	}
	for _, yl := range yc.Levels {
		lvl := Level{
			Name:      yl.Name,
			Width:     yl.Width,
			Platforms: make([]core.RectF, 0, len(yl.Platforms)),
			Treasures: points(yl.Treasures),
			Obstacles: points(yl.Obstacles),
			Dragons:   points(yl.Dragons),
			Exit:      core.V(yl.Exit.X, yl.Exit.Y),
		}
		for _, p := range yl.Platforms {
			lvl.Platforms = append(lvl.Platforms, core.R(p.X, p.Y, p.W, p.H))
		}
		cat.Levels = append(cat.Levels, lvl)
	}
	return cat, nil
}

// EncodeYAML renders a catalog in the same format ParseYAML reads.
func EncodeYAML(cat Catalog) ([]byte, error) {
	yc := YAMLCatalog{
		ID:          cat.ID,
		Name:        cat.Name,
		Description: cat.Description,
	}
	for _, lvl := range cat.Levels {
		yl := YAMLLevel{
			Name:      lvl.Name,
			Width:     lvl.Width,
			Treasures: yamlPoints(lvl.Treasures),
			Obstacles: yamlPoints(lvl.Obstacles),
			Dragons:   yamlPoints(lvl.Dragons),
			Exit:      YAMLPoint{X: lvl.Exit.X, Y: lvl.Exit.Y},
		}
		for _, p := range lvl.Platforms {
			yl.Platforms = append(yl.Platforms, YAMLRect{X: p.X, Y: p.Y, W: p.W, H: p.H})
		}
		yc.Levels = append(yc.Levels, yl)
	}

	data, err := yaml.Marshal(&yc)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

func points(in []YAMLPoint) []core.Vec2 {
	out := make([]core.Vec2, 0, len(in))
	for _, p := range in {
		out = append(out, core.V(p.X, p.Y))
	}
	return out
}

func yamlPoints(in []core.Vec2) []YAMLPoint {
	if len(in) == 0 {
		return nil
	}
	out := make([]YAMLPoint, 0, len(in))
	for _, p := range in {
		out = append(out, YAMLPoint{X: p.X, Y: p.Y})
	}
	return out
}
