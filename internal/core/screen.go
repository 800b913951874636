package core

import (
	"strings"
	"unicode/utf8"
)

// Glyph is one screen cell.
type Glyph struct {
	Rune  rune
	Color Color
}

var blank = Glyph{Rune: ' '}

// Screen is a fixed-size glyph buffer. The board is drawn into it and a
// front end turns it into terminal output; writes outside the buffer are
// dropped.
type Screen struct {
	width, height int
	glyphs        []Glyph // row-major
}

// NewScreen returns a blank screen. Negative sizes are treated as zero.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

func (s *Screen) Width() int  { return s.width }
func (s *Screen) Height() int { return s.height }

// Bounds returns the whole screen as a rectangle.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Resize changes the dimensions and blanks the screen. Callers redraw
// everything each frame, so old content is not kept.
func (s *Screen) Resize(width, height int) {
	s.width, s.height = max(width, 0), max(height, 0)
	n := s.width * s.height
	if cap(s.glyphs) >= n {
		s.glyphs = s.glyphs[:n]
	} else {
		s.glyphs = make([]Glyph, n)
	}
	s.Clear()
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.glyphs {
		s.glyphs[i] = blank
	}
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, false
	}
	return y*s.width + x, true
}

// Put writes a single glyph.
func (s *Screen) Put(x, y int, r rune, c Color) {
	if i, ok := s.index(x, y); ok {
		s.glyphs[i] = Glyph{Rune: r, Color: c}
	}
}

// At returns the glyph at (x, y), or a blank one outside the screen.
func (s *Screen) At(x, y int) Glyph {
	if i, ok := s.index(x, y); ok {
		return s.glyphs[i]
	}
	return blank
}

// Text writes text left to right from (x, y), one rune per cell.
func (s *Screen) Text(x, y int, text string, c Color) {
	for _, r := range text {
		s.Put(x, y, r, c)
		x++
	}
}

// CenterText writes text horizontally centered on row y.
func (s *Screen) CenterText(y int, text string, c Color) {
	s.Text((s.width-utf8.RuneCountInString(text))/2, y, text, c)
}

// Fill sets every cell of area to r.
func (s *Screen) Fill(area Rect, r rune, c Color) {
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			s.Put(x, y, r, c)
		}
	}
}

// Box draws a single-line frame along the edges of area.
func (s *Screen) Box(area Rect, c Color) {
	if area.W < 2 || area.H < 2 {
		return
	}
	right, bottom := area.Right()-1, area.Bottom()-1
	for x := area.X + 1; x < right; x++ {
		s.Put(x, area.Y, '─', c)
		s.Put(x, bottom, '─', c)
	}
	for y := area.Y + 1; y < bottom; y++ {
		s.Put(area.X, y, '│', c)
		s.Put(right, y, '│', c)
	}
	s.Put(area.X, area.Y, '┌', c)
	s.Put(right, area.Y, '┐', c)
	s.Put(area.X, bottom, '└', c)
	s.Put(right, bottom, '┘', c)
}

// Row returns row y as plain text. Rows outside the screen are blank.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, g := range s.glyphs[y*s.width : (y+1)*s.width] {
		sb.WriteRune(g.Rune)
	}
	return sb.String()
}

// String returns the screen as plain text, rows separated by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
