// Package viewport maps between source-image pixel coordinates and
// on-screen coordinates for a pannable, zoomable photo view.
package viewport

import "github.com/footgauge/footgauge/pkg/geom"

// Default zoom bounds, expressed as multiples of the fit-width scale.
const (
	DefaultMinZoom = 0.8
	DefaultMaxZoom = 6.0
)

// Transform is a view transform from image space to screen space:
// screen = image*Scale + (X, Y).
type Transform struct {
	// Scale in screen pixels per image pixel.
	Scale float64

	// Screen-space offsets of the image origin.
	X float64
	Y float64

	// Clamping bounds for Scale. Zoom never leaves [MinScale, MaxScale].
	MinScale float64
	MaxScale float64
}

// FitWidth returns a transform that fits an image of the given width to the
// viewport width, with zoom bounds set relative to that fit scale.
func FitWidth(imageWidth, viewportWidth float64) Transform {
	scale := 1.0
	if imageWidth > 0 && viewportWidth > 0 {
		scale = viewportWidth / imageWidth
	}
	return Transform{
		Scale:    scale,
		MinScale: scale * DefaultMinZoom,
		MaxScale: scale * DefaultMaxZoom,
	}
}

// Pan moves the view by a screen-space delta. There are no pan bounds; the
// image may be panned fully off-screen.
func (t *Transform) Pan(dx, dy float64) {
	t.X += dx
	t.Y += dy
}

// Zoom scales the view by factor, clamped to the transform's bounds.
// factor > 1 zooms in, factor < 1 zooms out.
func (t *Transform) Zoom(factor float64) {
	t.Scale = t.clamp(t.Scale * factor)
}

// ZoomAt zooms by factor while keeping the screen position (sx, sy)
// anchored on the same image point.
func (t *Transform) ZoomAt(sx, sy, factor float64) {
	before := t.ScreenToImage(geom.Pt(sx, sy))
	t.Zoom(factor)
	after := t.ImageToScreen(before)
	t.X += sx - after.X
	t.Y += sy - after.Y
}

// ScreenToImage maps a screen-space position to image-space coordinates.
func (t *Transform) ScreenToImage(p geom.Point) geom.Point {
	if t.Scale == 0 {
		return geom.Point{}
	}
	return geom.Pt((p.X-t.X)/t.Scale, (p.Y-t.Y)/t.Scale)
}

// ImageToScreen maps an image-space position to screen-space coordinates.
func (t *Transform) ImageToScreen(p geom.Point) geom.Point {
	return geom.Pt(p.X*t.Scale+t.X, p.Y*t.Scale+t.Y)
}

func (t *Transform) clamp(scale float64) float64 {
	if t.MinScale > 0 && scale < t.MinScale {
		return t.MinScale
	}
	if t.MaxScale > 0 && scale > t.MaxScale {
		return t.MaxScale
	}
	return scale
}
