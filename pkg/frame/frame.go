// Package frame holds the finished pixel buffer and its image sinks.
// It consumes quantized pixels only; all color math happens upstream.
package frame

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
)

// Pixel is one quantized 8-bit-per-channel RGB output pixel
type Pixel struct {
	R, G, B uint8
}

// Buffer is a width×height grid of pixels stored top-to-bottom,
// left-to-right. Each pixel is written once by the renderer and never
// mutated afterwards.
type Buffer struct {
	width  int
	height int
	pixels []Pixel
}

// NewBuffer creates a zeroed (black) pixel buffer
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		pixels: make([]Pixel, width*height),
	}
}

// Width returns the buffer width in pixels
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels
func (b *Buffer) Height() int { return b.height }

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Px returns the pixel at (x, y), or ok=false when out of bounds
func (b *Buffer) Px(x, y int) (Pixel, bool) {
	if !b.inBounds(x, y) {
		return Pixel{}, false
	}
	return b.pixels[y*b.width+x], true
}

// SetPx writes the pixel at (x, y), reporting whether the coordinates
// were in bounds
func (b *Buffer) SetPx(x, y int, p Pixel) bool {
	if !b.inBounds(x, y) {
		return false
	}
	b.pixels[y*b.width+x] = p
	return true
}

// ColorModel implements image.Image
func (b *Buffer) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At implements image.Image
func (b *Buffer) At(x, y int) color.Color {
	p, ok := b.Px(x, y)
	if !ok {
		return color.RGBA{}
	}
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 255}
}

// SaveBMP writes the buffer to path as a BMP file
func (b *Buffer) SaveBMP(path string) error {
	return b.save(path, bmp.Encode)
}

// SavePNG writes the buffer to path as a PNG file
func (b *Buffer) SavePNG(path string) error {
	return b.save(path, png.Encode)
}

func (b *Buffer) save(path string, encode func(io.Writer, image.Image) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating image file: %w", err)
	}
	defer file.Close()

	if err := encode(file, b); err != nil {
		return fmt.Errorf("encoding image: %w", err)
	}
	return nil
}
