package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dragoncave/internal/assets"
	"github.com/vovakirdan/dragoncave/internal/config"
	"github.com/vovakirdan/dragoncave/internal/core"
)

// ImageSource supplies sprites sized in cells. A nil image means the
// entity is drawn as a solid block.
type ImageSource interface {
	LoadImage(name string, w, h int) *assets.Image
}

// HUDRows is the number of screen rows above the cave view.
const HUDRows = 2

// look is how one kind of entity is drawn.
type look struct {
	image string // Sprite name, empty for always-solid entities
	fill  rune
	color core.Color
}

var looks = map[Kind]look{
	KindPlatform:    {fill: '█', color: core.ColorBrown},
	KindObstacle:    {image: "rock", fill: '▓', color: core.ColorGray},
	KindTreasure:    {image: "gem", fill: '◆', color: core.ColorPurple},
	KindBigTreasure: {image: "big_treasure", fill: '$', color: core.ColorYellow},
	KindExit:        {image: "exit", fill: '▒', color: core.ColorGreen},
	KindRock:        {fill: '●', color: core.ColorDarkGray},
	KindFireball:    {image: "fireball", fill: '*', color: core.ColorOrange},
	KindPlayer:      {image: "caver", fill: '█', color: core.ColorLightBlue},
	KindDragon:      {image: "dragon", fill: '█', color: core.ColorRed},
}

type renderer struct {
	cfg    config.GameConfig
	images ImageSource
}

func newRenderer(cfg config.GameConfig, images ImageSource) *renderer {
	return &renderer{cfg: cfg, images: images}
}

// viewport maps the world screen onto the cells below the HUD.
type viewport struct {
	cam    Camera
	sx, sy float64
	top    int
	world  core.RectF
}

func (r *renderer) viewport(dst *core.Screen, cam Camera) viewport {
	rows := max(1, dst.Height()-HUDRows)
	return viewport{
		cam:   cam,
		sx:    float64(dst.Width()) / r.cfg.World.ScreenWidth,
		sy:    float64(rows) / r.cfg.World.ScreenHeight,
		top:   HUDRows,
		world: core.R(0, 0, r.cfg.World.ScreenWidth, r.cfg.World.ScreenHeight),
	}
}

// cells returns the cell rectangle covering b, at least one cell in size,
// and whether b is on screen at all.
func (v viewport) cells(b core.RectF) (core.Rect, bool) {
	shifted := b
	shifted.X = v.cam.ScreenX(b.X)
	if !shifted.Intersects(v.world) {
		return core.Rect{}, false
	}
	x0 := int(math.Floor(shifted.Left() * v.sx))
	x1 := int(math.Ceil(shifted.Right() * v.sx))
	y0 := int(math.Floor(shifted.Top() * v.sy))
	y1 := int(math.Ceil(shifted.Bottom() * v.sy))
	return core.NewRect(x0, y0+v.top, max(1, x1-x0), max(1, y1-y0)), true
}

func (r *renderer) draw(dst *core.Screen, v viewport, kind Kind, image string, b core.RectF) (core.Rect, bool) {
	cell, ok := v.cells(b)
	if !ok {
		return cell, false
	}
	lk := looks[kind]
	if image != "" && r.images != nil {
		if img := r.images.LoadImage(image, cell.W, cell.H); img != nil {
			img.Draw(dst, cell.X, cell.Y)
			return cell, true
		}
	}
	dst.FillRect(cell, lk.fill, lk.color)
	return cell, true
}

func (r *renderer) level(dst *core.Screen, w *World, st State) {
	if w == nil {
		return
	}
	v := r.viewport(dst, w.Camera())

	for _, p := range w.Platforms() {
		r.draw(dst, v, KindPlatform, "", p)
	}
	for _, o := range w.Obstacles() {
		r.draw(dst, v, KindObstacle, looks[KindObstacle].image, o)
	}
	r.draw(dst, v, KindExit, looks[KindExit].image, w.Exit())
	for _, t := range w.Treasures() {
		r.draw(dst, v, KindTreasure, looks[KindTreasure].image, t)
	}
	if big, ok := w.BigTreasure(); ok {
		r.draw(dst, v, KindBigTreasure, looks[KindBigTreasure].image, big)
	}
	for _, rock := range w.Rocks() {
		r.draw(dst, v, KindRock, "", rock.Bounds)
	}
	for _, d := range w.Dragons() {
		image := looks[KindDragon].image
		if d.State == DragonSleeping {
			image = "dragon_sleep"
		}
		cell, ok := r.draw(dst, v, KindDragon, image, d.Bounds)
		if ok && d.State == DragonSleeping && dst.GetCell(cell.Right()-1, cell.Y).Color == core.ColorRed {
			dst.SetCell(cell.Right()-1, cell.Y, 'z', core.ColorWhite)
		}
	}
	for _, f := range w.Fireballs() {
		r.draw(dst, v, KindFireball, looks[KindFireball].image, f.Bounds)
	}
	r.draw(dst, v, KindPlayer, looks[KindPlayer].image, w.Player().Bounds)

	r.hud(dst, st)
	if st.Paused {
		r.box(dst, "PAUSED", "Press P to resume")
	}
}

func (r *renderer) hud(dst *core.Screen, st State) {
	width := dst.Width()

	dst.DrawText(1, 0, fmt.Sprintf("Level: %d/%d", st.Level, st.Levels), core.ColorWhite)
	dst.DrawTextCentered(0, fmt.Sprintf("Treasures: %d", st.Score), core.ColorWhite)
	total := fmt.Sprintf("Total: %d", st.Total)
	dst.DrawText(width-len(total)-1, 0, total, core.ColorWhite)

	if st.LevelName != "" {
		dst.DrawText(1, 1, st.LevelName, core.ColorGray)
	}
	if st.HasDragons {
		text, color := dragonStatus(st.FirstDragon)
		dst.DrawTextCentered(1, "Dragon(s): "+text, color)
	}
}

func dragonStatus(s DragonState) (string, core.Color) {
	switch s {
	case DragonWaking:
		return "Waking...", core.ColorYellow
	case DragonChasing:
		return "AWAKE!", core.ColorRed
	case DragonDistracted:
		return "Distracted", core.ColorYellow
	default:
		return "Zzzz", core.ColorWhite
	}
}

func (r *renderer) startScreen(dst *core.Screen, st State) {
	h := dst.Height()
	mid := h / 2

	dst.DrawTextCentered(max(0, h/4-1), "Dragon Cave Adventure!", core.ColorBrightYellow)
	dst.DrawTextCentered(mid-2, "Use LEFT/RIGHT to move, UP to jump", core.ColorWhite)
	dst.DrawTextCentered(mid-1, "SPACE to drop a rock (distracts an awake dragon)", core.ColorWhite)
	dst.DrawTextCentered(mid, fmt.Sprintf("Collect treasures and clear all %d levels!", st.Levels), core.ColorWhite)
	dst.DrawTextCentered(mid+1, "Don't get too close to the sleeping dragon...", core.ColorYellow)
	dst.DrawTextCentered(mid+3, fmt.Sprintf("Number of Dragons (1-%d): %d", r.cfg.Dragon.MaxCount, st.Dragons), core.ColorLightBlue)
	dst.DrawTextCentered(mid+4, "Use + / - keys to change (or UP/DOWN)", core.ColorLightBlue)
	dst.DrawTextCentered(min(h-1, h*3/4+1), "Press ENTER to start", core.ColorWhite)
}

func (r *renderer) endScreen(dst *core.Screen, st State) {
	h := dst.Height()
	switch st.Phase {
	case PhaseWonAll:
		dst.DrawTextCentered(h/4, "YOU CONQUERED THE CAVE!", core.ColorGreen)
		dst.DrawTextCentered(h/2, fmt.Sprintf("You collected a total of %d treasures!", st.Total), core.ColorWhite)
	default:
		dst.DrawTextCentered(h/4, "GAME OVER!", core.ColorRed)
		dst.DrawTextCentered(h/2, "The dragon got you!", core.ColorWhite)
		dst.DrawTextCentered(h/2+1, fmt.Sprintf("You reached Level %d with %d total treasures.", st.Level, st.Total), core.ColorWhite)
	}
	dst.DrawTextCentered(h*3/4, "Press any key to play again (from Level 1)", core.ColorWhite)
}

// box draws a centered framed message over the cave view.
func (r *renderer) box(dst *core.Screen, title, subtitle string) {
	w := max(len(title), len(subtitle)) + 6
	h := 5
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	dst.FillRect(core.NewRect(x, y, w, h), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(x, y, w, h), core.ColorWhite)
	dst.DrawTextCentered(y+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(y+3, subtitle, core.ColorWhite)
}
