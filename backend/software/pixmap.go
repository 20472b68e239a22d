// Package software implements paintercore's CPU reference backend: a
// straightforward, unoptimized implementation of spec.md §6's compute
// callback contract, useful as a baseline and for hosts with no GPU.
package software

import (
	"bytes"
	"image/png"

	"github.com/sveg/paintercore/entities"
)

// Pixmap is a register's backing store: a flat float32 RGBA buffer,
// one entities.Color per pixel.
type Pixmap struct {
	w, h int
	pix  []entities.Color
}

// NewPixmap allocates a transparent w x h pixmap.
func NewPixmap(w, h int) *Pixmap {
	return &Pixmap{w: w, h: h, pix: make([]entities.Color, w*h)}
}

func (p *Pixmap) Width() int  { return p.w }
func (p *Pixmap) Height() int { return p.h }

// At returns the color at (x,y), or Transparent if out of bounds.
func (p *Pixmap) At(x, y int) entities.Color {
	if x < 0 || y < 0 || x >= p.w || y >= p.h {
		return entities.Transparent
	}
	return p.pix[y*p.w+x]
}

// Set stores c at (x,y); out-of-bounds writes are silently dropped.
func (p *Pixmap) Set(x, y int, c entities.Color) {
	if x < 0 || y < 0 || x >= p.w || y >= p.h {
		return
	}
	p.pix[y*p.w+x] = c
}

// CopyFrom overwrites p's pixels with src's, clamped to the smaller of
// the two dimensions.
func (p *Pixmap) CopyFrom(src *Pixmap) {
	w, h := min(p.w, src.w), min(p.h, src.h)
	for y := 0; y < h; y++ {
		copy(p.pix[y*p.w:y*p.w+w], src.pix[y*src.w:y*src.w+w])
	}
}

// glyphMask is a decoded brush stamp: its alpha channel, sampled
// nearest-neighbor and scaled to whatever sample size a stroke asks
// for.
type glyphMask struct {
	w, h  int
	alpha []float32
}

// decodeGlyphMask decodes PNG-encoded glyph bytes into a mask of its
// alpha channel, normalized to [0,1]. An empty or malformed glyph
// decodes to a single fully-opaque texel, so a stroke with no usable
// stamp shape still paints a solid dot rather than nothing.
func decodeGlyphMask(data []byte) *glyphMask {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return &glyphMask{w: 1, h: 1, alpha: []float32{1}}
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	mask := &glyphMask{w: w, h: h, alpha: make([]float32, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			mask.alpha[y*w+x] = float32(a) / 0xffff
		}
	}
	return mask
}

// sample reads the mask at the normalized coordinate (u,v) in [0,1]x[0,1]
// via nearest-neighbor.
func (m *glyphMask) sample(u, v float32) float32 {
	x := int(u * float32(m.w))
	y := int(v * float32(m.h))
	if x < 0 {
		x = 0
	}
	if x >= m.w {
		x = m.w - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= m.h {
		y = m.h - 1
	}
	return m.alpha[y*m.w+x]
}

