package core

import "math"

// Color is a linear-space RGB value. Components are unbounded above;
// display clamping happens only at quantization time.
type Color struct {
	R, G, B float64
}

// NewColor creates a color from linear RGB components
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromRGB8 creates a linear color from 8-bit channel values
func ColorFromRGB8(r, g, b uint8) Color {
	return Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}

// Black returns the zero color
func Black() Color {
	return Color{}
}

// White returns full-intensity white
func White() Color {
	return Color{R: 1, G: 1, B: 1}
}

// Add returns the componentwise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// MultiplyColor returns the componentwise product, modeling attenuation
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Scale returns the color scaled by a scalar
func (c Color) Scale(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Gamma2 applies the square-root display transform to each channel
func (c Color) Gamma2() Color {
	return Color{
		R: math.Sqrt(c.R),
		G: math.Sqrt(c.G),
		B: math.Sqrt(c.B),
	}
}

// RGB8 quantizes the color to 8-bit channels, clamping each to [0, 255]
func (c Color) RGB8() (r, g, b uint8) {
	clamp := func(v float64) uint8 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 255
		}
		return uint8(v * 255)
	}
	return clamp(c.R), clamp(c.G), clamp(c.B)
}
