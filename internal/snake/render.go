package snake

import (
	"unicode/utf8"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// CellWidth is the number of terminal columns per grid cell, which keeps
// the board roughly square in common terminal fonts.
const CellWidth = 2

// HUDHeight is the number of rows above the board frame.
const HUDHeight = 2

// Two-column glyphs for each kind of cell.
const (
	headGlyph = "██"
	bodyGlyph = "▓▓"
	foodGlyph = "<>"
)

// BoardRect returns the framed board for a grid, centered horizontally on a
// screen screenW columns wide and placed under the HUD.
func BoardRect(gridSize, screenW int) core.Rect {
	w := gridSize*CellWidth + 2
	return core.NewRect(max((screenW-w)/2, 0), HUDHeight, w, gridSize+2)
}

// RequiredSize returns the smallest screen that fits the HUD and the board.
func RequiredSize(gridSize int) (w, h int) {
	r := BoardRect(gridSize, 0)
	return r.W, r.Bottom() + 1
}

// DrawBoard draws the frame, food and snake of snap into dst. Cells off the
// grid are not drawn, so a head that just crossed a wall leaves the frame
// intact.
func DrawBoard(dst *core.Screen, board core.Rect, gridSize int, snap Snapshot) {
	dst.Box(board, core.ColorFrame)
	inner := board.Inner()

	put := func(c Cell, glyph string, color core.Color) {
		if c.X < 0 || c.X >= gridSize || c.Y < 0 || c.Y >= gridSize {
			return
		}
		dst.Text(inner.X+c.X*CellWidth, inner.Y+c.Y, glyph, color)
	}

	// Food goes first so the snake covers it when they share a cell.
	put(snap.Food, foodGlyph, core.ColorFood)
	for i, c := range snap.Body {
		if i == len(snap.Body)-1 {
			put(c, headGlyph, core.ColorHead)
		} else {
			put(c, bodyGlyph, core.ColorBody)
		}
	}
}

// DrawOverlay draws a framed two-line message in the middle of dst.
func DrawOverlay(dst *core.Screen, title, hint string) {
	textW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(hint))
	box := dst.Bounds().Centered(textW+4, 5)

	dst.Fill(box, ' ', core.ColorDefault)
	dst.Box(box, core.ColorNotice)
	dst.CenterText(box.Y+1, title, core.ColorNotice)
	dst.CenterText(box.Y+3, hint, core.ColorDefault)
}
