package registry

import (
	"testing"

	"github.com/vovakirdan/dragoncave/internal/core"
	"github.com/vovakirdan/dragoncave/internal/levels"
)

func testCatalog() levels.Catalog {
	return levels.Catalog{
		Name:        "Registry Test",
		Description: "one room",
		Levels: []levels.Definition{
			{Name: "room", Width: 800, Exit: core.V(700, 560)},
		},
	}
}

func TestRegisterCreateList(t *testing.T) {
	Register("registry-test", testCatalog)

	if !Exists("registry-test") {
		t.Fatal("Exists() = false after Register")
	}

	c, err := Create("registry-test")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if c.ID != "registry-test" || c.Len() != 1 {
		t.Errorf("Create() = %q with %d levels", c.ID, c.Len())
	}

	var found bool
	for _, info := range List() {
		if info.ID == "registry-test" {
			found = true
			if info.Name != "Registry Test" || info.Levels != 1 {
				t.Errorf("List() info = %+v", info)
			}
		}
	}
	if !found {
		t.Error("List() does not include the registered catalog")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("registry-dup", testCatalog)
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("registry-dup", testCatalog)
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-catalog"); err == nil {
		t.Error("Create() of unknown ID should fail")
	}
	if Exists("no-such-catalog") {
		t.Error("Exists() of unknown ID = true")
	}
}
