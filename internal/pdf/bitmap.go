// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdf

import (
	"image"
	"image/color"
	"image/draw"
)

var _ draw.Image = (*Bitmap)(nil)

// Bitmap is an owned 8-bit RGB pixel buffer, three bytes per pixel in
// row-major order. It satisfies draw.Image; alpha is never stored.
type Bitmap struct {
	Width  int
	Height int
	Pix    []byte
}

// NewBitmap allocates a zeroed (black) bitmap.
func NewBitmap(w, h int) *Bitmap {
	return &Bitmap{Width: w, Height: h, Pix: make([]byte, w*h*3)}
}

func (b *Bitmap) ColorModel() color.Model { return color.RGBAModel }

func (b *Bitmap) Bounds() image.Rectangle { return image.Rect(0, 0, b.Width, b.Height) }

func (b *Bitmap) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(b.Bounds())) {
		return color.RGBA{}
	}
	i := (y*b.Width + x) * 3
	return color.RGBA{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2], A: 0xff}
}

// Set stores the non-premultiplied RGB components of c at (x, y) and drops
// its alpha. Points outside the bounds are ignored.
func (b *Bitmap) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(b.Bounds())) {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	i := (y*b.Width + x) * 3
	b.Pix[i], b.Pix[i+1], b.Pix[i+2] = n.R, n.G, n.B
}

// RGBA expands the bitmap into an opaque *image.RGBA, the layout image
// encoders handle without per-pixel color conversion.
func (b *Bitmap) RGBA() *image.RGBA {
	out := image.NewRGBA(b.Bounds())
	for i, j := 0, 0; i < len(b.Pix); i, j = i+3, j+4 {
		out.Pix[j] = b.Pix[i]
		out.Pix[j+1] = b.Pix[i+1]
		out.Pix[j+2] = b.Pix[i+2]
		out.Pix[j+3] = 0xff
	}
	return out
}
