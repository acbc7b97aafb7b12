package classic

import (
	"github.com/vovakirdan/dragoncave/internal/core"
	"github.com/vovakirdan/dragoncave/internal/levels"
)

func plat(x, y, w, h float64) core.RectF { return core.R(x, y, w, h) }

func pt(x, y float64) core.Vec2 { return core.V(x, y) }

// caveLevels returns a fresh copy of the ten classic levels.
// Ground level is y=560; the world screen is 600 tall.
func caveLevels() []levels.Definition {
	return []levels.Definition{
		{
			Name:  "Entrance Hall",
			Width: 2000,
			Platforms: []core.RectF{
				plat(0, 560, 2000, 40),
				plat(200, 450, 150, 20),
				plat(500, 350, 100, 20),
				plat(750, 420, 120, 20),
				plat(1000, 300, 150, 20),
				plat(1300, 400, 100, 20),
			},
			Treasures: []core.Vec2{
				pt(250, 450),
				pt(550, 350),
				pt(150, 560),
				pt(900, 560),
				pt(1100, 300),
				pt(1400, 560),
			},
			Obstacles: []core.Vec2{
				pt(400, 560),
				pt(1200, 560),
			},
			Dragons: []core.Vec2{
				pt(1600, 560),
			},
			Exit: pt(1900, 560),
		},
		{
			Name:  "Broken Floor",
			Width: 2000,
			Platforms: []core.RectF{
				plat(0, 560, 300, 40),
				plat(400, 560, 500, 40),
				plat(1000, 560, 1000, 40),
				plat(150, 480, 100, 20),
				plat(350, 400, 80, 20),
				plat(600, 450, 150, 20),
				plat(850, 320, 100, 20),
				plat(1100, 400, 120, 20),
				plat(1400, 500, 150, 20),
				plat(1700, 350, 80, 20),
			},
			Treasures: []core.Vec2{
				pt(200, 480),
				pt(400, 400),
				pt(650, 450),
				pt(50, 560),
				pt(900, 320),
				pt(1150, 400),
				pt(1450, 500),
				pt(1750, 350),
				pt(1950, 560),
			},
			Obstacles: []core.Vec2{
				pt(700, 560),
				pt(1300, 560),
				pt(1600, 560),
			},
			Dragons: []core.Vec2{
				pt(1800, 560),
			},
			Exit: pt(1950, 560),
		},
		{
			Name:  "The Climb",
			Width: 2200,
			Platforms: []core.RectF{
				plat(0, 560, 2200, 40),
				plat(100, 500, 80, 20),
				plat(300, 420, 100, 20),
				plat(500, 340, 120, 20),
				plat(750, 450, 100, 20),
				plat(950, 280, 80, 20),
				plat(1200, 380, 150, 20),
				plat(1450, 480, 100, 20),
				plat(1700, 300, 100, 20),
				plat(1950, 400, 100, 20),
			},
			Treasures: []core.Vec2{
				pt(150, 500),
				pt(350, 420),
				pt(560, 340),
				pt(800, 450),
				pt(1000, 280),
				pt(1275, 380),
				pt(1500, 480),
				pt(50, 560),
				pt(1750, 300),
				pt(2000, 400),
				pt(1050, 560),
				pt(1600, 560),
			},
			Obstacles: []core.Vec2{
				pt(250, 560),
				pt(650, 420),
				pt(900, 560),
				pt(1400, 560),
				pt(1850, 560),
			},
			Dragons: []core.Vec2{
				pt(1900, 300),
			},
			Exit: pt(2150, 560),
		},
		{
			Name:  "Narrow Passage",
			Width: 2400,
			Platforms: []core.RectF{
				plat(0, 560, 400, 40),
				plat(600, 560, 500, 40),
				plat(1300, 560, 1100, 40),
				plat(450, 450, 100, 20),
				plat(500, 350, 80, 20),
				plat(700, 420, 150, 20),
				plat(900, 300, 100, 20),
				plat(1150, 380, 100, 20),
				plat(1400, 440, 120, 20),
				plat(1650, 320, 80, 20),
				plat(1900, 480, 100, 20),
				plat(2100, 400, 100, 20),
			},
			Treasures: []core.Vec2{
				pt(50, 560),
				pt(500, 450),
				pt(550, 350),
				pt(750, 420),
				pt(950, 300),
				pt(1200, 380),
				pt(800, 560),
				pt(1450, 440),
				pt(1700, 320),
				pt(1950, 480),
				pt(2150, 400),
				pt(1500, 560),
				pt(2350, 560),
			},
			Obstacles: []core.Vec2{
				pt(300, 560),
				pt(800, 560),
				pt(1050, 560),
				pt(1550, 560),
				pt(1800, 440),
				pt(2200, 560),
			},
			Dragons: []core.Vec2{
				pt(2000, 560),
			},
			Exit: pt(2350, 560),
		},
		{
			Name:  "Twin Lairs",
			Width: 2600,
			Platforms: []core.RectF{
				plat(0, 560, 2600, 40),
				plat(150, 500, 70, 20),
				plat(350, 450, 70, 20),
				plat(550, 400, 70, 20),
				plat(750, 480, 70, 20),
				plat(950, 350, 70, 20),
				plat(1150, 420, 70, 20),
				plat(1300, 300, 200, 20),
				plat(1550, 350, 150, 20),
				plat(1750, 450, 70, 20),
				plat(1950, 320, 70, 20),
				plat(2150, 500, 70, 20),
				plat(2350, 380, 70, 20),
			},
			Treasures: []core.Vec2{
				pt(185, 500),
				pt(385, 450),
				pt(585, 400),
				pt(785, 480),
				pt(985, 350),
				pt(1185, 420),
				pt(1400, 300),
				pt(1625, 350),
				pt(1785, 450),
				pt(1985, 320),
				pt(2185, 500),
				pt(2385, 380),
				pt(50, 560),
				pt(1000, 560),
				pt(2000, 560),
			},
			Obstacles: []core.Vec2{
				pt(450, 560),
				pt(900, 560),
				pt(1450, 300),
				pt(1700, 560),
				pt(2100, 560),
				pt(2450, 560),
			},
			Dragons: []core.Vec2{
				pt(2200, 560),
				pt(1400, 300),
			},
			Exit: pt(2550, 560),
		},
		{
			Name:  "The Maze",
			Width: 2800,
			Platforms: []core.RectF{
				plat(0, 560, 200, 40),
				plat(300, 560, 300, 40),
				plat(700, 560, 400, 40),
				plat(1200, 560, 300, 40),
				plat(1600, 560, 1200, 40),
				plat(100, 500, 80, 20),
				plat(250, 420, 80, 20),
				plat(150, 340, 80, 20),
				plat(300, 260, 80, 20),
				plat(500, 350, 100, 20),
				plat(650, 420, 100, 20),
				plat(800, 320, 100, 20),
				plat(950, 390, 100, 20),
				plat(1100, 300, 80, 20),
				plat(1250, 400, 80, 20),
				plat(1400, 480, 80, 20),
				plat(1700, 250, 150, 20),
				plat(1900, 320, 100, 20),
				plat(2100, 280, 150, 20),
				plat(2400, 350, 100, 20),
			},
			Treasures: []core.Vec2{
				pt(140, 500),
				pt(290, 420),
				pt(190, 340),
				pt(340, 260),
				pt(550, 350),
				pt(700, 420),
				pt(850, 320),
				pt(1000, 390),
				pt(1140, 300),
				pt(1290, 400),
				pt(1440, 480),
				pt(1775, 250),
				pt(1950, 320),
				pt(2175, 280),
				pt(2450, 350),
				pt(50, 560),
				pt(800, 560),
				pt(1300, 560),
				pt(2750, 560),
			},
			Obstacles: []core.Vec2{
				pt(400, 560),
				pt(600, 420),
				pt(1050, 560),
				pt(1300, 400),
				pt(1650, 560),
				pt(2000, 560),
				pt(2300, 280),
				pt(2600, 560),
			},
			Dragons: []core.Vec2{
				pt(2500, 250),
				pt(1000, 560),
			},
			Exit: pt(2750, 560),
		},
		{
			Name:  "Rock Garden",
			Width: 2800,
			Platforms: []core.RectF{
				plat(0, 560, 2800, 40),
				plat(200, 500, 300, 20),
				plat(600, 420, 100, 20),
				plat(800, 350, 150, 20),
				plat(1100, 450, 100, 20),
				plat(1400, 320, 200, 20),
				plat(1700, 250, 150, 20),
				plat(2000, 340, 100, 20),
				plat(2300, 480, 150, 20),
				plat(2550, 400, 100, 20),
			},
			Treasures: []core.Vec2{
				pt(350, 500),
				pt(650, 420),
				pt(875, 350),
				pt(1150, 450),
				pt(1500, 320),
				pt(1775, 250),
				pt(2050, 340),
				pt(2375, 480),
				pt(2600, 400),
				pt(100, 560),
				pt(1000, 560),
				pt(1900, 560),
				pt(2700, 560),
			},
			Obstacles: []core.Vec2{
				pt(500, 560),
				pt(750, 560),
				pt(1200, 560),
				pt(1500, 320),
				pt(1650, 320),
				pt(2150, 560),
				pt(2450, 560),
			},
			Dragons: []core.Vec2{
				pt(950, 560),
				pt(1800, 250),
			},
			Exit: pt(2750, 560),
		},
		{
			Name:  "Fire Gallery",
			Width: 3000,
			Platforms: []core.RectF{
				plat(0, 560, 3000, 40),
				plat(100, 500, 100, 20),
				plat(300, 450, 100, 20),
				plat(500, 500, 100, 20),
				plat(700, 400, 200, 20),
				plat(1000, 300, 80, 20),
				plat(1150, 280, 80, 20),
				plat(1300, 260, 80, 20),
				plat(1500, 350, 100, 20),
				plat(1700, 250, 100, 20),
				plat(1900, 320, 100, 20),
				plat(2200, 420, 150, 20),
				plat(2500, 360, 100, 20),
				plat(2800, 450, 100, 20),
			},
			Treasures: []core.Vec2{
				pt(150, 500),
				pt(350, 450),
				pt(550, 500),
				pt(800, 400),
				pt(1040, 300),
				pt(1190, 280),
				pt(1340, 260),
				pt(1550, 350),
				pt(1750, 250),
				pt(1950, 320),
				pt(2275, 420),
				pt(2550, 360),
				pt(2850, 450),
				pt(400, 560),
				pt(1400, 560),
				pt(2100, 560),
				pt(2950, 560),
			},
			Obstacles: []core.Vec2{
				pt(600, 560),
				pt(900, 400),
				pt(1600, 560),
				pt(1800, 250),
				pt(2400, 560),
				pt(2700, 420),
			},
			Dragons: []core.Vec2{
				pt(1100, 450),
				pt(2400, 560),
			},
			Exit: pt(2950, 560),
		},
		{
			Name:  "High Ledges",
			Width: 3000,
			Platforms: []core.RectF{
				plat(0, 560, 100, 40),
				plat(2900, 560, 100, 40),
				plat(200, 450, 60, 20),
				plat(400, 350, 60, 20),
				plat(600, 250, 60, 20),
				plat(800, 320, 60, 20),
				plat(1000, 200, 60, 20),
				plat(1200, 280, 60, 20),
				plat(1400, 400, 150, 20),
				plat(1600, 300, 100, 20),
				plat(1800, 200, 80, 20),
				plat(2000, 300, 100, 20),
				plat(2200, 400, 150, 20),
				plat(2400, 250, 60, 20),
				plat(2600, 350, 60, 20),
				plat(2800, 450, 60, 20),
			},
			Treasures: []core.Vec2{
				pt(230, 450),
				pt(430, 350),
				pt(630, 250),
				pt(830, 320),
				pt(1030, 200),
				pt(1230, 280),
				pt(1475, 400),
				pt(1650, 300),
				pt(1840, 200),
				pt(2050, 300),
				pt(2275, 400),
				pt(2430, 250),
				pt(2630, 350),
				pt(2830, 450),
				pt(50, 560),
			},
			Obstacles: []core.Vec2{
				pt(500, 350),
				pt(900, 320),
				pt(1500, 400),
				pt(1700, 300),
				pt(2100, 300),
				pt(2500, 250),
			},
			Dragons: []core.Vec2{
				pt(1700, 450),
				pt(300, 450),
			},
			Exit: pt(2950, 560),
		},
		{
			Name:  "Dragon Throne",
			Width: 3500,
			Platforms: []core.RectF{
				plat(0, 560, 3500, 40),
				plat(150, 500, 100, 20),
				plat(350, 400, 100, 20),
				plat(550, 300, 100, 20),
				plat(800, 450, 150, 20),
				plat(1100, 350, 100, 20),
				plat(1300, 500, 80, 20),
				plat(1500, 250, 120, 20),
				plat(1750, 380, 100, 20),
				plat(2000, 200, 200, 20),
				plat(2300, 300, 150, 20),
				plat(2550, 180, 100, 20),
				plat(2750, 250, 150, 20),
				plat(3000, 400, 100, 20),
				plat(3200, 480, 100, 20),
			},
			Treasures: []core.Vec2{
				pt(200, 500),
				pt(400, 400),
				pt(600, 300),
				pt(875, 450),
				pt(1150, 350),
				pt(1340, 500),
				pt(1560, 250),
				pt(1800, 380),
				pt(2100, 200),
				pt(2375, 300),
				pt(2600, 180),
				pt(2825, 250),
				pt(3050, 400),
				pt(3250, 480),
				pt(50, 560),
				pt(1000, 560),
				pt(1600, 560),
				pt(2200, 560),
				pt(2900, 560),
				pt(3450, 560),
			},
			Obstacles: []core.Vec2{
				pt(450, 560),
				pt(700, 450),
				pt(1200, 560),
				pt(1400, 500),
				pt(1650, 250),
				pt(1900, 560),
				pt(2100, 200),
				pt(2450, 300),
				pt(2700, 560),
				pt(2950, 400),
				pt(3150, 560),
				pt(3350, 560),
			},
			Dragons: []core.Vec2{
				pt(3100, 560),
				pt(1500, 250),
				pt(600, 300),
			},
			Exit: pt(3450, 560),
		},
	}
}
