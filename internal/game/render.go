package game

import (
	"fmt"

	"github.com/vovakirdan/yafb/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '@'
	ObstacleChar = '|'
)

// Title is shown on the main menu.
const Title = "Welcome to Yet Another Flappy Bird!"

// Render draws the current mode into dst. The screen should be the size of
// the play field; anything outside it is clipped.
func (g *Game) Render(dst *core.Screen) {
	switch g.mode {
	case ModeMenu:
		g.renderMenu(dst)
	case ModeHighScore:
		g.renderHighScores(dst)
	case ModePlaying:
		g.renderPlaying(dst)
	case ModeEdit:
		g.renderEdit(dst)
	case ModeEnd:
		g.renderEnd(dst)
	}
}

func (g *Game) renderMenu(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextCentered(5, Title)
	dst.DrawTextCentered(6, "Press to (S)tart")
	dst.DrawTextCentered(7, "Press to view (H)igh scores")
	dst.DrawTextCentered(8, "Press to (Q)uit")
}

func (g *Game) renderPlaying(dst *core.Screen) {
	dst.ClearWithBackground(core.ColorNavy)

	for _, o := range g.obstacles {
		g.drawObstacle(dst, o)
	}

	dst.SetCell(g.tuning.Player.XOffset, g.player.Y, PlayerChar, core.ColorYellow, core.ColorNavy)

	dst.DrawTextColored(0, 0, "Press SPACE to flap.", core.ColorBrightWhite, core.ColorNavy)
	dst.DrawTextColored(0, 1, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite, core.ColorNavy)
}

// drawObstacle renders the walls above and below the gap.
func (g *Game) drawObstacle(dst *core.Screen, o Obstacle) {
	x := o.ScreenX(g.player.X)
	if x < 0 || x >= dst.Width() {
		return
	}
	dst.DrawVLine(x, 0, o.GapTop(), ObstacleChar, core.ColorRed, core.ColorNavy)
	below := o.GapBottom() + 1
	dst.DrawVLine(x, below, dst.Height()-below, ObstacleChar, core.ColorRed, core.ColorNavy)
}

func (g *Game) renderEnd(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextCentered(5, "Game Over")
	dst.DrawTextCentered(6, "Player Name:")
	dst.DrawTextCentered(7, g.playerName)
	dst.DrawTextCentered(8, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(9, "Press to (E)dit name, Enter to save")
	dst.DrawTextCentered(10, "Press to (M)ain Menu")
	dst.DrawTextCentered(11, "Press to (R)estart")
	dst.DrawTextCentered(12, "Press to (Q)uit")

	switch {
	case g.saved:
		dst.DrawTextCentered(14, "Score saved.")
	case g.score == 0:
		dst.DrawTextCentered(14, "Pass an obstacle to get on the board.")
	}
}

func (g *Game) renderEdit(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextCentered(5, "Enter your name:")
	dst.DrawTextCentered(7, g.playerName+"_")
	dst.DrawTextCentered(9, "Letters and digits only, Backspace to delete")
	dst.DrawTextCentered(10, "Press Enter to confirm")
}

func (g *Game) renderHighScores(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextCentered(5, "High Scores:")

	entries := g.ledger.Entries()
	for i := 0; i < g.ledger.Capacity(); i++ {
		line := fmt.Sprintf("%d.", i+1)
		if i < len(entries) {
			line = fmt.Sprintf("%d. %-12s %6d", i+1, entries[i].Name, entries[i].Score)
		}
		dst.DrawTextCentered(6+i, line)
	}

	dst.DrawTextCentered(7+g.ledger.Capacity(), "Press to (M)ain Menu or (S)tart")
}
