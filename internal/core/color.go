package core

import "fmt"

// Color is an RGB color with components in [0, 1].
// The zero value means "terminal default".
type Color struct {
	R, G, B float64
}

// Predefined colors for non-brick elements.
var (
	ColorDefault = Color{}
	ColorWhite   = Color{R: 0.95, G: 0.95, B: 0.95}
	ColorGray    = Color{R: 0.55, G: 0.55, B: 0.55}
	ColorCyan    = Color{R: 0.3, G: 0.85, B: 0.95}
	ColorOrange  = Color{R: 1.0, G: 0.55, B: 0.1}
	ColorRed     = Color{R: 0.95, G: 0.25, B: 0.25}
	ColorGreen   = Color{R: 0.3, G: 0.9, B: 0.45}
	ColorYellow  = Color{R: 0.95, G: 0.9, B: 0.3}
)

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int {
	return Clamp(int(ClampF(v, 0, 1)*255+0.5), 0, 255)
}
