package window

import (
	"image/color"

	"github.com/vovakirdan/maysday/internal/core"
)

// palette mirrors the terminal colors used by the TUI frontend.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {0xd0, 0xd0, 0xd0, 0xff},
	core.ColorRed:          {0xcd, 0x31, 0x31, 0xff},
	core.ColorGreen:        {0x3c, 0x9a, 0x3c, 0xff},
	core.ColorYellow:       {0xe5, 0xc0, 0x3a, 0xff},
	core.ColorBlue:         {0x3b, 0x78, 0xd8, 0xff},
	core.ColorMagenta:      {0xbc, 0x3f, 0xbc, 0xff},
	core.ColorCyan:         {0x11, 0xa8, 0xcd, 0xff},
	core.ColorWhite:        {0xe5, 0xe5, 0xe5, 0xff},
	core.ColorBrightRed:    {0xf1, 0x4c, 0x4c, 0xff},
	core.ColorBrightGreen:  {0x23, 0xd1, 0x8b, 0xff},
	core.ColorBrightYellow: {0xf5, 0xf5, 0x43, 0xff},
	core.ColorBrightBlue:   {0x3b, 0x8e, 0xea, 0xff},
	core.ColorBrightWhite:  {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:       {0xff, 0x87, 0x00, 0xff},
	core.ColorBrown:        {0xaf, 0x5f, 0x00, 0xff},
	core.ColorGray:         {0x8a, 0x8a, 0x8a, 0xff},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// asciiGlyph maps runes the debug font cannot draw to ASCII stand-ins.
func asciiGlyph(r rune) rune {
	switch r {
	case '▓':
		return '#'
	case '≈':
		return '~'
	case '─', '—':
		return '-'
	case '│':
		return '|'
	case '┌', '┐', '└', '┘':
		return '+'
	}
	if r > 0x7e || r < 0x20 {
		return '?'
	}
	return r
}
