package levels

import (
	"errors"
	"fmt"
)

// ErrEmptyCatalog is returned for a catalog without levels.
var ErrEmptyCatalog = errors.New("levels: catalog has no levels")

// Validate reports every structural problem in the level at once.
// screenWidth is the world screen width; levels may not be narrower.
func (d Definition) Validate(screenWidth float64) error {
	var errs []error

	if d.Width < screenWidth {
		errs = append(errs, fmt.Errorf("width %v is narrower than the screen (%v)", d.Width, screenWidth))
	}
	for i, p := range d.Platforms {
		if p.W <= 0 || p.H <= 0 {
			errs = append(errs, fmt.Errorf("platform %d has non-positive size %vx%v", i, p.W, p.H))
		}
	}
	if d.Exit.X < 0 || d.Exit.X > d.Width {
		errs = append(errs, fmt.Errorf("exit x %v outside [0, %v]", d.Exit.X, d.Width))
	}
	for i, t := range d.Treasures {
		if t.X < 0 || t.X > d.Width {
			errs = append(errs, fmt.Errorf("treasure %d x %v outside [0, %v]", i, t.X, d.Width))
		}
	}
	for i, o := range d.Obstacles {
		if o.X < 0 || o.X > d.Width {
			errs = append(errs, fmt.Errorf("obstacle %d x %v outside [0, %v]", i, o.X, d.Width))
		}
	}
	return errors.Join(errs...)
}

// Validate checks every level in the catalog.
func (c Catalog) Validate(screenWidth float64) error {
	if len(c.Levels) == 0 {
		return ErrEmptyCatalog
	}

	var errs []error
	for i, lvl := range c.Levels {
		if err := lvl.Validate(screenWidth); err != nil {
			errs = append(errs, fmt.Errorf("levels: level %d (%s): %w", i+1, lvl.Name, err))
		}
	}
	return errors.Join(errs...)
}
