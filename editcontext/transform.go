package editcontext

import "math"

// CanvasTransform is the view transform between screen space and
// canvas space: a uniform zoom, a rotation angle in radians, and a
// translation, composing to a single 3x3 affine (spec.md §4.3).
type CanvasTransform struct {
	Zoom        float32
	Angle       float32
	Translation [2]float32
}

// IdentityTransform is the default view: no zoom, rotation or pan.
func IdentityTransform() CanvasTransform {
	return CanvasTransform{Zoom: 1}
}

// affine is a 2x3 row-major matrix, |a b c; d e f|, applying
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// in float64 for the intermediate math, regardless of the float32
// fields CanvasTransform stores (one precision tier up, since view
// math compounds rotation and scale).
type affine struct {
	a, b, c float64
	d, e, f float64
}

// toAffine composes rotate-then-scale followed by translate into a
// single matrix: canvas content is rotated and zoomed about the
// origin, then the view is panned.
func (t CanvasTransform) toAffine() affine {
	cos := math.Cos(float64(t.Angle))
	sin := math.Sin(float64(t.Angle))
	z := float64(t.Zoom)
	return affine{
		a: z * cos, b: -z * sin, c: float64(t.Translation[0]),
		d: z * sin, e: z * cos, f: float64(t.Translation[1]),
	}
}

// invert returns the inverse matrix, or the identity if m is singular
// (a zero zoom transform, which has no meaningful inverse).
func (m affine) invert() affine {
	det := m.a*m.e - m.b*m.d
	if math.Abs(det) < 1e-10 {
		return affine{a: 1, e: 1}
	}
	invDet := 1 / det
	return affine{
		a: m.e * invDet,
		b: -m.b * invDet,
		c: (m.b*m.f - m.c*m.e) * invDet,
		d: -m.d * invDet,
		e: m.a * invDet,
		f: (m.c*m.d - m.a*m.f) * invDet,
	}
}

func (m affine) apply(x, y float32) (float32, float32) {
	return float32(m.a*float64(x) + m.b*float64(y) + m.c),
		float32(m.d*float64(x) + m.e*float64(y) + m.f)
}

// CanvasToScreen maps a point in canvas space to screen space.
func (t CanvasTransform) CanvasToScreen(x, y float32) (float32, float32) {
	return t.toAffine().apply(x, y)
}

// ScreenToCanvas maps a point in screen space back to canvas space by
// applying the transform's inverse (spec.md §4.3).
func (t CanvasTransform) ScreenToCanvas(x, y float32) (float32, float32) {
	return t.toAffine().invert().apply(x, y)
}
