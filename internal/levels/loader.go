package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vovakirdan/dragoncave/internal/levels/formats"
)

// LoadFile loads a catalog file. The catalog is not validated; callers
// decide which screen width to validate against.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("levels: reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Catalog{}, fmt.Errorf("levels: parsing file %s: %w", path, err)
	}

	cat := fromFormat(parsed)
	cat.FilePath = path
	if cat.ID == "" {
		cat.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if cat.Name == "" {
		cat.Name = cat.ID
	}
	return cat, nil
}

// Encode renders the catalog as YAML.
func Encode(c Catalog) ([]byte, error) {
	fc := formats.Catalog{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
	for _, lvl := range c.Levels {
		fc.Levels = append(fc.Levels, formats.Level(lvl))
	}
	return formats.EncodeYAML(fc)
}

// IsCatalogFile reports whether path has a supported catalog extension.
func IsCatalogFile(path string) bool {
	return slices.Contains(formats.FormatExtensions(), strings.ToLower(filepath.Ext(path)))
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Catalog, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Catalog{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

func fromFormat(fc formats.Catalog) Catalog {
	cat := Catalog{
		ID:          fc.ID,
		Name:        fc.Name,
		Description: fc.Description,
		Levels:      make([]Definition, 0, len(fc.Levels)),
	}
	for _, lvl := range fc.Levels {
		cat.Levels = append(cat.Levels, Definition(lvl))
	}
	return cat
}
