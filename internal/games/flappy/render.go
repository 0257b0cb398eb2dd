package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	BirdBody      = '●'
	WingUp        = '^'
	WingDown      = '~'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
	GroundFill    = '░'
)

// viewport maps world units onto screen cells.
type viewport struct {
	sx, sy float64
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return int(math.Floor(y * v.sy))
}

// Render draws the current game state to the screen, scaling the world to
// whatever size the screen has.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	snap := g.Snapshot()
	vp := viewport{
		sx: float64(dst.Width()) / g.cfg.Screen.Width,
		sy: float64(dst.Height()) / g.cfg.Screen.Height,
	}
	groundRow := vp.row(g.cfg.GroundLevel())

	for _, p := range snap.Pipes {
		drawPipe(dst, vp, p, groundRow)
	}
	drawGround(dst, groundRow)
	drawBird(dst, vp, snap.Bird)
	drawHUD(dst, snap)

	switch snap.Phase {
	case PhaseStart:
		drawCenteredMessage(dst, core.ColorBrightWhite,
			g.Title(),
			"SPACE or CLICK to flap",
			"Q to quit")
	case PhaseGameOver:
		drawCenteredMessage(dst, core.ColorRed,
			"GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.Best),
			"R to restart  |  Q to quit")
	}
}

// drawPipe renders a single pipe down to the ground row.
func drawPipe(dst *core.Screen, vp viewport, p Pipe, groundRow int) {
	x0 := vp.col(p.X)
	x1 := vp.col(p.Right())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	width := x1 - x0

	// Top section, from the top of the screen to the gap
	gapTop := vp.row(p.GapY)
	dst.DrawRect(core.NewRect(x0, 0, width, gapTop), PipeChar, core.ColorGreen)
	if gapTop > 0 {
		dst.DrawHLine(x0, gapTop-1, width, PipeCapTop, core.ColorBrightGreen)
	}

	// Bottom section, from below the gap to the ground
	gapBottom := vp.row(p.GapY + p.GapHeight)
	if gapBottom < groundRow {
		dst.DrawRect(core.NewRect(x0, gapBottom, width, groundRow-gapBottom), PipeChar, core.ColorGreen)
		dst.DrawHLine(x0, gapBottom, width, PipeCapBottom, core.ColorBrightGreen)
	}
}

func drawGround(dst *core.Screen, groundRow int) {
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorTan)
	for y := groundRow + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundFill, core.ColorTan)
	}
}

// drawBird draws wing, body and beak; the beak follows the tilt.
func drawBird(dst *core.Screen, vp viewport, b BirdView) {
	cx, cy := vp.col(b.X), vp.row(b.Y)

	wing := WingDown
	if b.FlapTicks > 0 {
		wing = WingUp
	}
	dst.SetColored(cx-1, cy, wing, core.ColorOrange)
	dst.SetColored(cx, cy, BirdBody, core.ColorYellow)
	dst.SetColored(cx+1, cy, beakGlyph(b.Rotation), core.ColorOrange)
}

func beakGlyph(rotation float64) rune {
	switch {
	case rotation > 15:
		return '↗'
	case rotation < -15:
		return '↘'
	default:
		return '→'
	}
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextCentered(0, fmt.Sprintf(" %d ", snap.Score), core.ColorBrightWhite)

	// Narrow screens cut the label on the right instead of dropping it.
	best := fmt.Sprintf("Best: %d ", snap.Best)
	x := core.Clamp(dst.Width()-len(best), 0, dst.Width())
	dst.DrawTextColored(x, 0, best, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
// The first line is the title and takes the given color.
func drawCenteredMessage(dst *core.Screen, titleColor core.Color, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	widest := 0
	for _, l := range lines {
		widest = core.Max(widest, len([]rune(l)))
	}

	boxW := widest + 4
	boxH := len(lines) + 2
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = titleColor
		}
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(x, boxY+1+i, l, c)
	}
}
