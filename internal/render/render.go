// Package render paints the measurement overlay onto an image raster:
// the photo, the committed calibration points as filled discs color-coded
// by role, and an optional uncommitted preview marker.
package render

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/footgauge/footgauge/pkg/geom"
	"github.com/footgauge/footgauge/pkg/marking"
)

// Marker colors. Paper endpoints and foot endpoints use two distinct hues;
// every marker carries a light outline for contrast against the photo.
var (
	ColorPaper   = color.NRGBA{R: 33, G: 150, B: 243, A: 255}  // blue
	ColorFoot    = color.NRGBA{R: 244, G: 67, B: 54, A: 255}   // red
	ColorPreview = color.NRGBA{R: 255, G: 193, B: 7, A: 255}   // amber
	ColorOutline = color.NRGBA{R: 255, G: 255, B: 255, A: 230} // white
)

// Options controls the overlay pass.
type Options struct {
	// MarkerRadius in pixels of the output raster. Zero picks a radius
	// proportional to the image size, floored at a touch-friendly minimum.
	MarkerRadius int

	// MaxWidth, when positive, scales the output down to at most this
	// width. Points are scaled along with the image.
	MaxWidth int
}

// RoleColor returns the marker fill for the point slot at index i.
func RoleColor(i int) color.NRGBA {
	switch marking.RoleAt(i) {
	case marking.RolePaperLeft, marking.RolePaperRight:
		return ColorPaper
	default:
		return ColorFoot
	}
}

// Annotate draws the overlay and returns a new raster. A nil source image
// yields nil; the pass never fails.
func Annotate(src image.Image, points []geom.Point, preview *geom.Point, opts Options) *image.NRGBA {
	if src == nil {
		return nil
	}

	bounds := src.Bounds()
	outW, outH := bounds.Dx(), bounds.Dy()
	scale := 1.0
	if opts.MaxWidth > 0 && outW > opts.MaxWidth {
		scale = float64(opts.MaxWidth) / float64(outW)
		outW = opts.MaxWidth
		outH = int(float64(bounds.Dy()) * scale)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, outW, outH))
	if scale == 1.0 {
		xdraw.Draw(dst, dst.Bounds(), src, bounds.Min, xdraw.Src)
	} else {
		xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, xdraw.Src, nil)
	}

	radius := opts.MarkerRadius
	if radius <= 0 {
		radius = defaultRadius(outW, outH)
	}

	for i, p := range points {
		cx := int(p.X * scale)
		cy := int(p.Y * scale)
		fillDisc(dst, cx, cy, radius+2, ColorOutline)
		fillDisc(dst, cx, cy, radius, RoleColor(i))
	}

	if preview != nil {
		cx := int(preview.X * scale)
		cy := int(preview.Y * scale)
		drawRing(dst, cx, cy, radius+3, 3, ColorOutline)
		drawRing(dst, cx, cy, radius, 2, ColorPreview)
	}

	return dst
}

// defaultRadius scales the marker with the raster but keeps it tappable.
func defaultRadius(w, h int) int {
	min := w
	if h < min {
		min = h
	}
	r := min / 80
	if r < 6 {
		r = 6
	}
	return r
}

func fillDisc(dst *image.NRGBA, cx, cy, r int, c color.NRGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				dst.SetNRGBA(cx+dx, cy+dy, c)
			}
		}
	}
}

func drawRing(dst *image.NRGBA, cx, cy, r, width int, c color.NRGBA) {
	inner := r - width
	if inner < 0 {
		inner = 0
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			d2 := dx*dx + dy*dy
			if d2 <= r*r && d2 >= inner*inner {
				dst.SetNRGBA(cx+dx, cy+dy, c)
			}
		}
	}
}
