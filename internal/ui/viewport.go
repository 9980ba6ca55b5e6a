package ui

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/footgauge/footgauge/internal/render"
	"github.com/footgauge/footgauge/pkg/geom"
)

// tapSlop is the drag distance, in dp, below which a press-release pair
// counts as a tap rather than a pan.
const tapSlop = unit.Dp(8)

// layoutViewport renders the photo in a pannable, zoomable viewport and
// routes taps to the point collector.
func (a *App) layoutViewport(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	if size != a.viewportSize {
		a.viewportSize = size
		a.viewReady = false
	}
	if !a.viewReady {
		a.refitView()
	}

	a.handleKeys(gtx)
	a.handlePointers(gtx)

	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()

	if a.photo == nil {
		return a.layoutEmptyState(gtx, size)
	}

	a.drawPhoto(gtx)
	a.drawMarkers(gtx)

	// Input layer covers the whole viewport.
	event.Op(gtx.Ops, a)

	a.layoutHint(gtx)
	if a.loupeCheck.Value {
		a.layoutLoupe(gtx, size)
	}

	return layout.Dimensions{Size: size}
}

func (a *App) handleKeys(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(key.Filter{Name: "+", Optional: key.ModShift})
		if !ok {
			break
		}
		if e, ok := ev.(key.Event); ok && e.State == key.Press {
			a.zoomAtCenter(1.2)
			gtx.Execute(op.InvalidateCmd{})
		}
	}
	for {
		ev, ok := gtx.Event(key.Filter{Name: "-"})
		if !ok {
			break
		}
		if e, ok := ev.(key.Event); ok && e.State == key.Press {
			a.zoomAtCenter(0.8)
			gtx.Execute(op.InvalidateCmd{})
		}
	}
	for {
		ev, ok := gtx.Event(key.Filter{Name: key.NameSpace})
		if !ok {
			break
		}
		if e, ok := ev.(key.Event); ok && e.State == key.Press {
			a.viewReady = false
			gtx.Execute(op.InvalidateCmd{})
		}
	}
}

func (a *App) zoomAtCenter(factor float64) {
	cx := float64(a.viewportSize.X) / 2
	cy := float64(a.viewportSize.Y) / 2
	a.view.ZoomAt(cx, cy, factor)
}

func (a *App) handlePointers(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  a,
			Kinds:   pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Scroll,
			ScrollY: pointer.ScrollRange{Min: -120, Max: 120},
		})
		if !ok {
			break
		}
		pev, ok := ev.(pointer.Event)
		if !ok {
			continue
		}

		switch pev.Kind {
		case pointer.Scroll:
			if pev.Scroll.Y != 0 && a.photo != nil {
				factor := 1.0 - float64(pev.Scroll.Y)*0.01
				if factor < 0.5 {
					factor = 0.5
				} else if factor > 2.0 {
					factor = 2.0
				}
				a.view.ZoomAt(float64(pev.Position.X), float64(pev.Position.Y), factor)
				gtx.Execute(op.InvalidateCmd{})
			}

		case pointer.Press:
			a.gesture.press(pev.PointerID, pev.Position)

		case pointer.Drag:
			u := a.gesture.drag(pev.PointerID, pev.Position, float32(gtx.Dp(tapSlop)))
			if a.photo == nil {
				break
			}
			if u.zoom {
				a.view.ZoomAt(float64(u.zoomAt.X), float64(u.zoomAt.Y), float64(u.zoomFactor))
				gtx.Execute(op.InvalidateCmd{})
			}
			if u.pan {
				a.view.Pan(float64(u.dx), float64(u.dy))
				gtx.Execute(op.InvalidateCmd{})
			}

		case pointer.Release:
			if a.gesture.release(pev.PointerID) {
				a.handleTap(pev.Position)
				gtx.Execute(op.InvalidateCmd{})
			}

		case pointer.Cancel:
			a.gesture.cancel(pev.PointerID)
		}
	}
}

// handleTap stages a preview marker at the tapped image position. Taps
// outside the photo clamp to its nearest edge pixel.
func (a *App) handleTap(pos f32.Point) {
	if a.photo == nil || !a.collector.IsMarking() {
		return
	}
	p := a.view.ScreenToImage(geom.Pt(float64(pos.X), float64(pos.Y)))
	p.X = math.Min(math.Max(p.X, 0), float64(a.photo.width-1))
	p.Y = math.Min(math.Max(p.Y, 0), float64(a.photo.height-1))
	a.collector.SetPreview(p)
	a.loupe.invalidate()
}

func (a *App) drawPhoto(gtx layout.Context) {
	scale := float32(a.view.Scale)
	offset := f32.Pt(float32(a.view.X), float32(a.view.Y))
	defer op.Affine(f32.Affine2D{}.
		Scale(f32.Point{}, f32.Pt(scale, scale)).
		Offset(offset)).Push(gtx.Ops).Pop()

	a.photoOp.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}

// drawMarkers paints committed points and the preview ring in screen space
// so marker size stays constant across zoom levels.
func (a *App) drawMarkers(gtx layout.Context) {
	radius := float32(gtx.Dp(unit.Dp(7)))

	for i, p := range a.collector.Points() {
		sp := a.view.ImageToScreen(p)
		center := f32.Pt(float32(sp.X), float32(sp.Y))
		fillCircle(gtx.Ops, center, radius+2, render.ColorOutline)
		fillCircle(gtx.Ops, center, radius, render.RoleColor(i))
	}

	if preview := a.collector.Preview(); preview != nil {
		sp := a.view.ImageToScreen(*preview)
		center := f32.Pt(float32(sp.X), float32(sp.Y))
		strokeCircle(gtx.Ops, center, radius+3, 4, render.ColorOutline)
		strokeCircle(gtx.Ops, center, radius+3, 2, render.ColorPreview)
		drawCrosshair(gtx.Ops, center, radius*3, render.ColorPreview)
	}
}

func fillCircle(ops *op.Ops, center f32.Point, r float32, col color.NRGBA) {
	stack := clip.Ellipse{
		Min: image.Pt(int(center.X-r), int(center.Y-r)),
		Max: image.Pt(int(center.X+r), int(center.Y+r)),
	}.Push(ops)
	paint.ColorOp{Color: col}.Add(ops)
	paint.PaintOp{}.Add(ops)
	stack.Pop()
}

func strokeCircle(ops *op.Ops, center f32.Point, r, width float32, col color.NRGBA) {
	circle := clip.Ellipse{
		Min: image.Pt(int(center.X-r), int(center.Y-r)),
		Max: image.Pt(int(center.X+r), int(center.Y+r)),
	}
	paint.FillShape(ops, col, clip.Stroke{
		Path:  circle.Path(ops),
		Width: width,
	}.Op())
}

func drawCrosshair(ops *op.Ops, center f32.Point, arm float32, col color.NRGBA) {
	var p clip.Path
	p.Begin(ops)
	p.MoveTo(f32.Pt(center.X-arm, center.Y))
	p.LineTo(f32.Pt(center.X+arm, center.Y))
	p.MoveTo(f32.Pt(center.X, center.Y-arm))
	p.LineTo(f32.Pt(center.X, center.Y+arm))
	paint.FillShape(ops, col, clip.Stroke{
		Path:  p.End(),
		Width: 1.5,
	}.Op())
}

func (a *App) layoutEmptyState(gtx layout.Context, size image.Point) layout.Dimensions {
	gtx.Constraints.Min = size
	layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		lbl := material.Body1(a.gvTheme.Theme, "Open a photo of a foot next to an A4 sheet")
		lbl.Color = a.gvTheme.Palette.Fg
		lbl.Color.A = 160
		return lbl.Layout(gtx)
	})
	return layout.Dimensions{Size: size}
}

func (a *App) layoutHint(gtx layout.Context) {
	layout.Inset{Top: unit.Dp(8), Left: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		label := material.Caption(a.gvTheme.Theme, "Drag to pan | Pinch/scroll/+/- to zoom | Space refits")
		label.Color = a.gvTheme.Palette.Fg
		label.Color.A = 128
		return label.Layout(gtx)
	})
}
