package core

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// palette gives the exact color for surfaces that draw in true color.
// ColorDefault has no entry: the surface keeps its own default.
var palette = map[Color]RGB{
	ColorBlack:         {0, 0, 0},
	ColorRed:           {255, 0, 0},
	ColorGreen:         {0, 255, 0},
	ColorYellow:        {255, 255, 0},
	ColorBlue:          {0, 0, 255},
	ColorMagenta:       {255, 0, 255},
	ColorCyan:          {0, 255, 255},
	ColorWhite:         {255, 255, 255},
	ColorBrightRed:     {255, 85, 85},
	ColorBrightGreen:   {85, 255, 85},
	ColorBrightYellow:  {255, 255, 85},
	ColorBrightBlue:    {85, 85, 255},
	ColorBrightMagenta: {255, 85, 255},
	ColorBrightCyan:    {85, 255, 255},
	ColorBrightWhite:   {255, 255, 255},
	ColorOrange:        {255, 165, 0},
	ColorGold:          {255, 215, 0},
	ColorGray:          {128, 128, 128},
}

// RGB returns the true-color value of c. ok is false for ColorDefault and
// unknown colors.
func (c Color) RGB() (rgb RGB, ok bool) {
	rgb, ok = palette[c]
	return rgb, ok
}
