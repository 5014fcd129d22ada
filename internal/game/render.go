package game

import (
	"fmt"

	"github.com/mkamenev/torsnake/internal/core"
)

const hudHeight = 2 // Top HUD lines

// Render draws the current game state into the screen buffer.
// The board is centered under a two-line HUD; if the buffer is too small
// for the board, an overlay asks the player to resize.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	boardW := g.opts.GridSize + 2
	boardH := g.opts.GridSize + 2
	if dst.Width() < boardW || dst.Height() < boardH+hudHeight {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	offX := (dst.Width() - boardW) / 2
	offY := hudHeight

	dst.DrawBox(offX, offY, boardW, boardH)

	// Food
	if g.food.X >= 0 && g.food.Y >= 0 {
		dst.SetColored(offX+1+g.food.X, offY+1+g.food.Y, '*', core.ColorRed)
	}

	// Snake, head first
	for i, seg := range g.snake {
		r, c := 'o', core.ColorGreen
		if i == 0 {
			r, c = 'O', core.ColorBrightGreen
		}
		dst.SetColored(offX+1+seg.X, offY+1+seg.Y, r, c)
	}

	switch g.phase {
	case PhaseNotStarted:
		g.renderOverlay(dst, "TORSNAKE", "Press Enter to start")
	case PhasePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case PhaseGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Final Score: %d", g.score))
	case PhaseWon:
		g.renderOverlay(dst, "Board cleared!", fmt.Sprintf("Final Score: %d", g.score))
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake | Score: %d  Level: %d/%d  Speed: %dms",
		g.score, g.level, g.opts.MaxLevel, g.speed.Milliseconds())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
