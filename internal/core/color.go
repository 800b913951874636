package core

// Color is the role a glyph plays on the board. Front ends decide what each
// role looks like; plain-text output ignores it.
type Color uint8

const (
	ColorDefault Color = iota
	ColorFrame         // board and HUD lines
	ColorBody          // snake cells behind the head
	ColorHead
	ColorFood
	ColorNotice // overlays such as "Game Over"
)

var colorNames = [...]string{"default", "frame", "body", "head", "food", "notice"}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
