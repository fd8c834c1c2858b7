package snake

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// CellWidth is the number of screen columns one board cell takes, which
// keeps cells roughly square in a terminal.
const CellWidth = 2

// Board glyphs, one per column of a cell.
const (
	glyphHead   = "@@"
	glyphBody   = "[]"
	glyphNormal = "()"
	glyphBonus  = "$$"
	glyphSpeed  = ">>"
)

// Texts resolves message keys for display.
type Texts interface {
	T(key string) string
}

// MinScreen returns the smallest screen that fits a board of the given size
// plus the status line.
func MinScreen(gridSize int) (w, h int) {
	return gridSize*CellWidth + 2, gridSize + 3
}

// Render draws a snapshot and returns the rectangle of the board cells, or
// an empty rectangle if the screen is too small to hold the board.
func Render(dst *core.Screen, snap Snapshot, tx Texts, soundOn bool) core.Rect {
	dst.Clear()
	renderHUD(dst, snap, tx, soundOn)

	w, h := MinScreen(snap.GridSize)
	if dst.Width() < w || dst.Height() < h {
		renderOverlay(dst, dst.Bounds(), []line{
			{tx.T("screen.tooSmall"), core.ColorYellow},
			{fmt.Sprintf("%dx%d", w, h+1), core.ColorGray},
		})
		return core.Rect{}
	}

	box := core.NewRect((dst.Width()-w)/2, 1, w, snap.GridSize+2)
	dst.DrawBox(box, core.ColorGray)
	board := core.NewRect(box.X+1, box.Y+1, snap.GridSize*CellWidth, snap.GridSize)

	drawCell(dst, board, snap.Food.Pos, foodGlyph(snap.Food.Kind), FoodColor(snap.Food.Kind))
	for i := len(snap.Body) - 1; i >= 0; i-- {
		if i == 0 {
			drawCell(dst, board, snap.Body[i], glyphHead, core.ColorBrightGreen)
		} else {
			drawCell(dst, board, snap.Body[i], glyphBody, core.ColorGreen)
		}
	}

	if lines := overlayLines(snap, tx); len(lines) > 0 {
		renderOverlay(dst, board, lines)
	}
	return board
}

func foodGlyph(k FoodKind) string {
	switch k {
	case FoodBonus:
		return glyphBonus
	case FoodSpeed:
		return glyphSpeed
	default:
		return glyphNormal
	}
}

func drawCell(dst *core.Screen, board core.Rect, p Point, glyph string, c core.Color) {
	if !InBounds(p, board.H) {
		return
	}
	dst.DrawText(board.X+p.X*CellWidth, board.Y+p.Y, glyph, c)
}

// renderHUD draws the status line.
func renderHUD(dst *core.Screen, snap Snapshot, tx Texts, soundOn bool) {
	sound := tx.T("sound.off")
	if soundOn {
		sound = tx.T("sound.on")
	}
	fields := []string{
		fmt.Sprintf("%s %d", tx.T("stats.score"), snap.Stats.Score),
		fmt.Sprintf("%s %d", tx.T("stats.highScore"), snap.Stats.HighScore),
		fmt.Sprintf("%s %d", tx.T("stats.level"), snap.Stats.Level),
		fmt.Sprintf("%s %d", tx.T("stats.length"), len(snap.Body)),
		fmt.Sprintf("%s %s", tx.T("stats.time"), FormatClock(snap.Stats.GameTime)),
		difficultyName(tx, snap.Difficulty),
		fmt.Sprintf("%s %s", tx.T("stats.sound"), sound),
	}
	dst.DrawTextCentered(0, strings.Join(fields, " | "), core.ColorBrightWhite)
}

// FormatClock renders seconds as mm:ss.
func FormatClock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func difficultyName(tx Texts, d config.Difficulty) string {
	return tx.T("difficulty." + string(d))
}

type line struct {
	text  string
	color core.Color
}

// overlayLines returns the centered message block for the state.
func overlayLines(snap Snapshot, tx Texts) []line {
	s := snap.Stats
	switch snap.State {
	case StateMenu:
		return []line{
			{tx.T("game.title"), core.ColorBrightGreen},
			{tx.T("game.welcome"), core.ColorWhite},
			{"", 0},
			{fmt.Sprintf("%s: ◀ %s ▶", tx.T("difficulty.label"), difficultyName(tx, snap.Difficulty)), core.ColorYellow},
			{"", 0},
			{"Enter: " + tx.T("button.startGame"), core.ColorBrightWhite},
		}
	case StatePaused:
		return []line{
			{tx.T("game.paused"), core.ColorYellow},
			{tx.T("game.pauseHint"), core.ColorWhite},
		}
	case StateGameOver:
		lines := []line{
			{tx.T("game.over"), core.ColorBrightRed},
			{"", 0},
			{fmt.Sprintf("%s: %d", tx.T("final.score"), s.Score), core.ColorWhite},
			{fmt.Sprintf("%s: %d", tx.T("final.level"), s.Level), core.ColorWhite},
			{fmt.Sprintf("%s: %d", tx.T("final.foodEaten"), s.FoodEaten), core.ColorWhite},
			{fmt.Sprintf("%s: %s", tx.T("final.timePlayed"), FormatClock(s.GameTime)), core.ColorWhite},
		}
		if snap.NewHigh {
			lines = append(lines, line{tx.T("final.newRecord"), core.ColorGold})
		}
		return append(lines,
			line{"", 0},
			line{"Enter: " + tx.T("button.playAgain") + "  Esc: " + tx.T("button.mainMenu"), core.ColorBrightWhite},
		)
	case StateVictory:
		lines := []line{
			{tx.T("game.victory"), core.ColorGold},
			{tx.T("game.victoryMessage"), core.ColorWhite},
			{"", 0},
			{fmt.Sprintf("%s: %d", tx.T("final.perfectScore"), s.Score), core.ColorWhite},
			{fmt.Sprintf("%s: %d", tx.T("final.finalLevel"), s.Level), core.ColorWhite},
			{fmt.Sprintf("%s: %d", tx.T("final.totalFood"), s.FoodEaten), core.ColorWhite},
			{fmt.Sprintf("%s: %s", tx.T("final.completionTime"), FormatClock(s.GameTime)), core.ColorWhite},
		}
		if snap.NewHigh {
			lines = append(lines, line{tx.T("final.perfectGame"), core.ColorGold})
		}
		return append(lines,
			line{"", 0},
			line{"Enter: " + tx.T("button.playAgain") + "  Esc: " + tx.T("button.mainMenu"), core.ColorBrightWhite},
		)
	default:
		return nil
	}
}

// renderOverlay draws a framed message block centered in area.
func renderOverlay(dst *core.Screen, area core.Rect, lines []line) {
	maxW := 0
	for _, l := range lines {
		maxW = max(maxW, runewidth.StringWidth(l.text))
	}
	r := area.Centered(maxW+4, len(lines)+2)

	dst.DrawRect(r, ' ')
	dst.DrawBox(r, core.ColorWhite)
	for i, l := range lines {
		x := r.X + (r.W-runewidth.StringWidth(l.text))/2
		dst.DrawText(x, r.Y+1+i, l.text, l.color)
	}
}
