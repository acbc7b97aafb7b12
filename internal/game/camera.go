package game

import "math"

// Camera is the horizontal view offset into a level. Entities keep world
// coordinates; the camera is applied when drawing, so X is the world x of
// the screen's left edge.
type Camera struct {
	X         float64
	screenW   float64
	threshold float64
}

// NewCamera creates a camera for a screen screenW units wide that starts
// scrolling when the caver gets within threshold of either edge.
func NewCamera(screenW, threshold float64) Camera {
	return Camera{screenW: screenW, threshold: threshold}
}

// Follow scrolls toward the caver. Scrolling only happens while the caver
// moves toward the edge it is close to, by at most its current speed.
func (c *Camera) Follow(playerX, velX, levelWidth float64) {
	screenX := playerX - c.X
	scroll := 0.0

	switch {
	case screenX > c.screenW-c.threshold && velX > 0:
		amount := screenX - (c.screenW - c.threshold)
		scroll = float64(min(int(math.Abs(velX)), int(amount)))
	case screenX < c.threshold && velX < 0:
		amount := c.threshold - screenX
		scroll = -float64(min(int(math.Abs(velX)), int(amount)))
	}

	if levelWidth <= c.screenW {
		c.X = 0
		return
	}
	c.X = max(0, min(levelWidth-c.screenW, c.X+scroll))
}

// ScreenX converts a world x to a screen x.
func (c Camera) ScreenX(worldX float64) float64 {
	return worldX - c.X
}
