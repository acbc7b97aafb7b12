package assets

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/dragoncave/internal/core"
)

// Image is a sprite scaled to a fixed cell size. Cells holding a space are
// transparent.
type Image struct {
	Width  int
	Height int
	Cells  [][]core.Cell
}

type imageKey struct {
	name string
	w, h int
}

// artFile is a text-art source before scaling.
type artFile struct {
	color core.Color
	rows  [][]rune
	width int
}

// LoadImage returns the sprite name scaled to w x h cells, or nil if no
// usable art exists. Art lives in <dir>/<name>.txt.
func (p *Provider) LoadImage(name string, w, h int) *Image {
	if w <= 0 || h <= 0 {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	key := imageKey{name: name, w: w, h: h}
	if img, ok := p.images[key]; ok {
		return img
	}

	src := p.loadArt(name)
	var img *Image
	if src != nil {
		img = src.scale(w, h)
	}
	p.images[key] = img
	return img
}

// loadArt reads and caches a text-art file. Caller holds p.mu.
func (p *Provider) loadArt(name string) *artFile {
	if src, ok := p.art[name]; ok {
		return src
	}
	if p.dir == "" {
		p.art[name] = nil
		return nil
	}

	path := filepath.Join(p.dir, name+".txt")
	data, err := os.ReadFile(path)
	if err != nil {
		p.logger.Warn("image missing, using solid fallback", "name", name, "err", err)
		p.art[name] = nil
		return nil
	}
	src, err := parseArt(data)
	if err != nil {
		p.logger.Warn("image unreadable, using solid fallback", "name", name, "err", err)
		p.art[name] = nil
		return nil
	}
	p.art[name] = src
	return src
}

// parseArt reads a text-art sprite. An optional first line "# color: name"
// sets the palette color; every other line is one row of the sprite.
func parseArt(data []byte) (*artFile, error) {
	src := &artFile{color: core.ColorDefault}

	sc := bufio.NewScanner(bytes.NewReader(data))
	first := true
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if first {
			first = false
			if name, ok := strings.CutPrefix(line, "# color:"); ok {
				c, known := core.ParseColor(strings.TrimSpace(name))
				if !known {
					return nil, fmt.Errorf("unknown color %q", strings.TrimSpace(name))
				}
				src.color = c
				continue
			}
		}
		row := []rune(line)
		src.width = max(src.width, len(row))
		src.rows = append(src.rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(src.rows) == 0 || src.width == 0 {
		return nil, fmt.Errorf("empty sprite")
	}
	return src, nil
}

// scale resamples the art to w x h cells with nearest-neighbor sampling.
func (a *artFile) scale(w, h int) *Image {
	img := &Image{Width: w, Height: h, Cells: make([][]core.Cell, h)}
	for y := range h {
		row := a.rows[y*len(a.rows)/h]
		img.Cells[y] = make([]core.Cell, w)
		for x := range w {
			r := ' '
			if sx := x * a.width / w; sx < len(row) {
				r = row[sx]
			}
			img.Cells[y][x] = core.Cell{Rune: r, Color: a.color}
		}
	}
	return img
}

// Draw blits the image with its top-left corner at (x, y).
func (img *Image) Draw(dst *core.Screen, x, y int) {
	for row, cells := range img.Cells {
		for col, c := range cells {
			if c.Rune == ' ' {
				continue
			}
			dst.SetCell(x+col, y+row, c.Rune, c.Color)
		}
	}
}
