package ui

import (
	"math"

	"gioui.org/f32"
	"gioui.org/io/pointer"
)

// gestureTracker classifies raw pointer events into pans, pinches, and
// taps. A gesture that ever held two pointers can no longer end in a tap,
// and when a pinch drops back to one pointer the pan reference re-anchors
// to the survivor so the view does not jump.
type gestureTracker struct {
	pointers  map[pointer.ID]f32.Point
	pinchDist float32
	pressPos  f32.Point
	moved     bool
	pinched   bool
}

func newGestureTracker() *gestureTracker {
	return &gestureTracker{pointers: make(map[pointer.ID]f32.Point)}
}

// gestureUpdate is the outcome of one drag event.
type gestureUpdate struct {
	pan    bool
	dx, dy float32

	zoom       bool
	zoomFactor float32
	zoomAt     f32.Point
}

// press registers a pointer going down.
func (g *gestureTracker) press(id pointer.ID, pos f32.Point) {
	g.pointers[id] = pos
	switch len(g.pointers) {
	case 1:
		g.pressPos = pos
		g.moved = false
		g.pinched = false
	case 2:
		g.pinched = true
		g.pinchDist = g.distance()
	}
}

// drag advances the gesture. slop is the tap tolerance in pixels; moves
// within it neither pan nor disqualify the tap.
func (g *gestureTracker) drag(id pointer.ID, pos f32.Point, slop float32) gestureUpdate {
	prev, tracked := g.pointers[id]
	if !tracked {
		return gestureUpdate{}
	}
	g.pointers[id] = pos

	if len(g.pointers) >= 2 {
		dist := g.distance()
		var u gestureUpdate
		if g.pinchDist > 0 && dist > 0 {
			u = gestureUpdate{
				zoom:       true,
				zoomFactor: dist / g.pinchDist,
				zoomAt:     g.midpoint(),
			}
		}
		g.pinchDist = dist
		return u
	}

	dx := pos.X - prev.X
	dy := pos.Y - prev.Y
	if !g.moved {
		tx := pos.X - g.pressPos.X
		ty := pos.Y - g.pressPos.Y
		if tx*tx+ty*ty < slop*slop {
			return gestureUpdate{}
		}
		g.moved = true
		dx = tx
		dy = ty
	}
	return gestureUpdate{pan: true, dx: dx, dy: dy}
}

// release removes a pointer and reports whether the gesture ended as a
// tap: exactly one pointer for its whole lifetime, never beyond the slop.
func (g *gestureTracker) release(id pointer.ID) (tap bool) {
	_, tracked := g.pointers[id]
	delete(g.pointers, id)
	if len(g.pointers) < 2 {
		g.pinchDist = 0
	}
	if g.pinched && len(g.pointers) == 1 {
		// Pinch degraded to a single pointer. Re-anchor on the survivor
		// and keep panning live rather than re-arming the tap slop.
		for _, p := range g.pointers {
			g.pressPos = p
		}
		g.moved = true
	}
	return tracked && len(g.pointers) == 0 && !g.moved && !g.pinched
}

func (g *gestureTracker) cancel(id pointer.ID) {
	delete(g.pointers, id)
	g.pinchDist = 0
	g.moved = false
}

func (g *gestureTracker) distance() float32 {
	var a, b f32.Point
	i := 0
	for _, p := range g.pointers {
		if i == 0 {
			a = p
		} else if i == 1 {
			b = p
		}
		i++
	}
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	return float32(math.Hypot(dx, dy))
}

func (g *gestureTracker) midpoint() f32.Point {
	var sum f32.Point
	n := 0
	for _, p := range g.pointers {
		sum.X += p.X
		sum.Y += p.Y
		n++
	}
	if n == 0 {
		return f32.Point{}
	}
	return f32.Pt(sum.X/float32(n), sum.Y/float32(n))
}
