package ui

import (
	"image"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/disintegration/imaging"

	"github.com/footgauge/footgauge/internal/render"
	"github.com/footgauge/footgauge/pkg/geom"
)

// loupeCropHalf is the half-width, in image pixels, of the region the
// magnifier samples around the preview point.
const loupeCropHalf = 40

// loupeCache holds the magnified crop for the current preview point so the
// resize runs once per placement, not once per frame.
type loupeCache struct {
	center geom.Point
	px     int
	valid  bool
	imgOp  paint.ImageOp
}

func (c *loupeCache) invalidate() { c.valid = false }

func (c *loupeCache) op(p *photo, center geom.Point, px int) paint.ImageOp {
	if c.valid && c.center == center && c.px == px {
		return c.imgOp
	}
	cx, cy := int(center.X), int(center.Y)
	crop := imaging.Crop(p.img, image.Rect(
		cx-loupeCropHalf, cy-loupeCropHalf,
		cx+loupeCropHalf, cy+loupeCropHalf,
	))
	scaled := imaging.Resize(crop, px, px, imaging.Linear)
	c.imgOp = paint.NewImageOp(scaled)
	c.center = center
	c.px = px
	c.valid = true
	return c.imgOp
}

// layoutLoupe draws the magnifier in the top-right corner of the viewport
// while a preview point is staged.
func (a *App) layoutLoupe(gtx layout.Context, size image.Point) {
	preview := a.collector.Preview()
	if preview == nil || a.photo == nil {
		return
	}

	px := gtx.Dp(unit.Dp(140))
	margin := gtx.Dp(unit.Dp(12))
	origin := image.Pt(size.X-px-margin, margin)
	if origin.X < 0 {
		return
	}

	imgOp := a.loupe.op(a.photo, *preview, px)

	stack := op.Offset(origin).Push(gtx.Ops)
	rr := gtx.Dp(unit.Dp(8))
	frame := clip.RRect{
		Rect: image.Rectangle{Max: image.Pt(px, px)},
		NW:   rr, NE: rr, SW: rr, SE: rr,
	}

	area := frame.Push(gtx.Ops)
	imgOp.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	area.Pop()

	center := f32.Pt(float32(px)/2, float32(px)/2)
	drawCrosshair(gtx.Ops, center, float32(gtx.Dp(unit.Dp(10))), render.ColorPreview)

	paint.FillShape(gtx.Ops, render.ColorOutline, clip.Stroke{
		Path:  frame.Path(gtx.Ops),
		Width: 2,
	}.Op())
	stack.Pop()
}
