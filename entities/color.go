package entities

// Color is an RGBA color with components nominally in [0,1]. Storage
// never clamps — a caller that builds an out-of-range Color gets an
// out-of-range Color back; clamping, if any, happens in the rendering
// backend, not the core (spec §3).
type Color struct {
	R, G, B, A float32
}

// Opaque returns an RGB color with alpha 1.
func Opaque(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Transparent is the zero-value color: fully transparent black.
var Transparent = Color{}

// Lerp linearly interpolates between c and other at t, where t=0
// yields c and t=1 yields other.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Premultiply returns c with R, G, B scaled by A. Composite blending
// (spec §3's Mix blend mode) operates on premultiplied colors so
// alpha=0 samples never contribute visible color.
func (c Color) Premultiply() Color {
	return Color{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Unpremultiply reverses Premultiply. Returns Transparent if c.A is 0,
// since the original color cannot be recovered.
func (c Color) Unpremultiply() Color {
	if c.A == 0 {
		return Transparent
	}
	return Color{R: c.R / c.A, G: c.G / c.A, B: c.B / c.A, A: c.A}
}
