package render

import "image"

// PixmapTarget is a CPU-backed presentation target: Present copies a
// Register's pixel contents into it, wrapping an *image.RGBA so a host
// can hand the result straight to image/png or any other stdlib image
// consumer.
type PixmapTarget struct {
	img *image.RGBA
}

// NewPixmapTarget allocates a transparent width x height target.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return &PixmapTarget{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewPixmapTargetFromImage wraps an existing *image.RGBA as a target.
// The image is used directly, without copying, so a host can reuse a
// framebuffer it already owns across repeated Present calls.
func NewPixmapTargetFromImage(img *image.RGBA) *PixmapTarget {
	return &PixmapTarget{img: img}
}

// Width and Height return the target's dimensions in pixels.
func (t *PixmapTarget) Width() int  { return t.img.Bounds().Dx() }
func (t *PixmapTarget) Height() int { return t.img.Bounds().Dy() }

// Pixels returns direct access to the backing RGBA byte buffer.
func (t *PixmapTarget) Pixels() []byte {
	return t.img.Pix
}

// Image returns the underlying *image.RGBA. The returned image shares
// memory with the target.
func (t *PixmapTarget) Image() *image.RGBA {
	return t.img
}
