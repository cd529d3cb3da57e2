package core

// Color is the foreground color of a screen cell. Frontends map it to an
// ANSI code (terminal) or an RGBA value (window).
type Color uint8

// Colors used by the farm, the HUD and the overlays.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen // grass
	ColorYellow
	ColorBlue // watered patches
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow // selected tool, pickup notes
	ColorBrightBlue
	ColorBrightWhite // HUD and the morning banner
	ColorOrange
	ColorBrown // dry dirt
	ColorGray  // walls, hints, the end of a fade
)

// Dim returns the next step of a fade: bright colors drop to their base
// color and everything else drops to gray. Gray stays gray.
func (c Color) Dim() Color {
	switch c {
	case ColorBrightRed:
		return ColorRed
	case ColorBrightGreen:
		return ColorGreen
	case ColorBrightYellow:
		return ColorYellow
	case ColorBrightBlue:
		return ColorBlue
	case ColorBrightWhite:
		return ColorWhite
	default:
		return ColorGray
	}
}
