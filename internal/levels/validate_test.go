package levels

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/dragoncave/internal/core"
)

func TestCatalogValidateEmpty(t *testing.T) {
	err := Catalog{ID: "none"}.Validate(800)
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("Validate() = %v, expected ErrEmptyCatalog", err)
	}
}

func TestDefinitionValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Definition)
		wantErr string
	}{
		{"valid", func(*Definition) {}, ""},
		{"narrow level", func(d *Definition) { d.Width = 600 }, "narrower than the screen"},
		{"flat platform", func(d *Definition) { d.Platforms[1].H = 0 }, "platform 1"},
		{"exit past end", func(d *Definition) { d.Exit.X = 2500 }, "exit x"},
		{"treasure before start", func(d *Definition) { d.Treasures = []core.Vec2{core.V(-1, 560)} }, "treasure 0"},
		{"obstacle past end", func(d *Definition) { d.Obstacles = []core.Vec2{core.V(2001, 560)} }, "obstacle 0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := spawnLevel()
			tc.mutate(&d)
			err := d.Validate(800)
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected mention of %q", err, tc.wantErr)
			}
		})
	}
}

func TestCatalogValidateJoinsLevels(t *testing.T) {
	bad1 := spawnLevel()
	bad1.Width = 100
	bad2 := spawnLevel()
	bad2.Exit.X = -5
	cat := Catalog{Levels: []Definition{spawnLevel(), bad1, bad2}}

	err := cat.Validate(800)
	if err == nil {
		t.Fatal("Validate() = nil, expected errors")
	}
	msg := err.Error()
	if !strings.Contains(msg, "level 2") || !strings.Contains(msg, "level 3") {
		t.Errorf("Validate() = %q, expected both bad levels reported", msg)
	}
	if strings.Contains(msg, "level 1 ") {
		t.Errorf("Validate() = %q, valid level should not be reported", msg)
	}
}

func TestCatalogAccessors(t *testing.T) {
	cat := Catalog{Levels: []Definition{spawnLevel(), spawnLevel()}}
	if cat.Len() != 2 {
		t.Errorf("Len() = %d", cat.Len())
	}
	if _, ok := cat.Level(2); ok {
		t.Error("Level(2) should be out of range")
	}
	if !cat.Last(1) || cat.Last(0) {
		t.Error("Last() reported the wrong index")
	}
}
