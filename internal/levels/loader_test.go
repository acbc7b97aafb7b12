package levels

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/dragoncave/internal/core"
)

const sampleCatalog = `id: tiny
name: Tiny Cave
levels:
  - name: Only room
    width: 1000
    platforms:
      - {x: 0, y: 560, w: 1000, h: 40}
      - {x: 300, y: 450, w: 100, h: 20}
    treasures:
      - {x: 350, y: 450}
    obstacles:
      - {x: 600, y: 560}
    dragons:
      - {x: 800, y: 560}
    exit: {x: 950, y: 560}
`

func writeCatalog(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeCatalog(t, t.TempDir(), "tiny.yaml", sampleCatalog)

	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if cat.ID != "tiny" || cat.Name != "Tiny Cave" || cat.FilePath != path {
		t.Errorf("catalog header = %q %q %q", cat.ID, cat.Name, cat.FilePath)
	}
	if cat.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", cat.Len())
	}
	lvl := cat.Levels[0]
	if lvl.Width != 1000 || len(lvl.Platforms) != 2 {
		t.Errorf("level = %+v", lvl)
	}
	if lvl.Platforms[1] != core.R(300, 450, 100, 20) {
		t.Errorf("platform 1 = %+v", lvl.Platforms[1])
	}
	if lvl.Exit != core.V(950, 560) {
		t.Errorf("exit = %+v", lvl.Exit)
	}
	if err := cat.Validate(800); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadFileDefaultsIDFromName(t *testing.T) {
	body := "levels:\n  - width: 800\n    platforms: []\n    exit: {x: 700, y: 560}\n"
	path := writeCatalog(t, t.TempDir(), "mine.yml", body)

	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if cat.ID != "mine" || cat.Name != "mine" {
		t.Errorf("ID/Name = %q/%q, expected file stem", cat.ID, cat.Name)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
	txt := writeCatalog(t, dir, "cave.txt", sampleCatalog)
	if _, err := LoadFile(txt); err == nil {
		t.Error("unsupported extension should fail")
	}
	bad := writeCatalog(t, dir, "bad.yaml", "levels: {")
	if _, err := LoadFile(bad); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestEncodeLoadsBack(t *testing.T) {
	dir := t.TempDir()
	orig, err := LoadFile(writeCatalog(t, dir, "tiny.yaml", sampleCatalog))
	if err != nil {
		t.Fatal(err)
	}

	data, err := Encode(orig)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	again, err := LoadFile(writeCatalog(t, dir, "again.yaml", string(data)))
	if err != nil {
		t.Fatalf("LoadFile(encoded) error: %v", err)
	}
	if again.Levels[0].Platforms[0] != orig.Levels[0].Platforms[0] || again.Levels[0].Exit != orig.Levels[0].Exit {
		t.Errorf("encoded catalog differs: %+v vs %+v", again.Levels[0], orig.Levels[0])
	}
}

func TestIsCatalogFile(t *testing.T) {
	if !IsCatalogFile("a/b.YAML") || !IsCatalogFile("c.yml") || IsCatalogFile("d.json") {
		t.Error("IsCatalogFile() misclassified extensions")
	}
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalog(t, dir, "tiny.yaml", sampleCatalog)

	w, err := NewWatcher(path, 800)
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Close()

	updated := sampleCatalog + "  - name: Second room\n    width: 900\n    platforms: []\n    exit: {x: 850, y: 560}\n"
	writeCatalog(t, dir, "tiny.yaml", updated)

	select {
	case cat := <-w.Catalogs:
		if cat.Len() != 2 {
			t.Errorf("reloaded Len() = %d, expected 2", cat.Len())
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
}
