package ui

import (
	"testing"

	"gioui.org/f32"
)

const testSlop = 8

func TestTapFromStationaryPress(t *testing.T) {
	g := newGestureTracker()
	g.press(1, f32.Pt(100, 100))
	if !g.release(1) {
		t.Fatal("stationary press-release should report a tap")
	}
}

func TestTapSurvivesJitterWithinSlop(t *testing.T) {
	g := newGestureTracker()
	g.press(1, f32.Pt(100, 100))
	u := g.drag(1, f32.Pt(103, 102), testSlop)
	if u.pan || u.zoom {
		t.Fatalf("jitter within slop should do nothing, got %+v", u)
	}
	if !g.release(1) {
		t.Fatal("jitter within slop should still end as a tap")
	}
}

func TestDragBeyondSlopPansAndSuppressesTap(t *testing.T) {
	g := newGestureTracker()
	g.press(1, f32.Pt(100, 100))

	u := g.drag(1, f32.Pt(120, 100), testSlop)
	if !u.pan {
		t.Fatal("drag beyond slop should pan")
	}
	if u.dx != 20 || u.dy != 0 {
		t.Errorf("first pan delta = (%v,%v), want (20,0)", u.dx, u.dy)
	}

	u = g.drag(1, f32.Pt(125, 110), testSlop)
	if !u.pan || u.dx != 5 || u.dy != 10 {
		t.Errorf("second pan delta = %+v, want pan (5,10)", u)
	}

	if g.release(1) {
		t.Fatal("a pan gesture must not end as a tap")
	}
}

func TestPinchZoomsAtMidpoint(t *testing.T) {
	g := newGestureTracker()
	g.press(1, f32.Pt(100, 100))
	g.press(2, f32.Pt(200, 100))

	u := g.drag(2, f32.Pt(240, 100), testSlop)
	if !u.zoom {
		t.Fatal("two-pointer drag should zoom")
	}
	if u.zoomFactor != 1.4 {
		t.Errorf("zoom factor = %v, want 1.4", u.zoomFactor)
	}
	if u.zoomAt != f32.Pt(170, 100) {
		t.Errorf("zoom anchor = %v, want midpoint (170,100)", u.zoomAt)
	}
	if u.pan {
		t.Error("pinch drag must not also pan")
	}
}

// A pinch that ends must never place a point, even though neither pointer
// individually traveled beyond the tap slop.
func TestPinchReleaseIsNotATap(t *testing.T) {
	g := newGestureTracker()
	g.press(1, f32.Pt(100, 100))
	g.press(2, f32.Pt(200, 100))
	g.drag(2, f32.Pt(203, 100), testSlop)

	if g.release(1) {
		t.Fatal("releasing the first pinch finger must not tap")
	}
	if g.release(2) {
		t.Fatal("releasing the last pinch finger must not tap")
	}
}

// Even a pinch with no drag events at all (press, press, lift, lift) must
// not end as a tap.
func TestMotionlessPinchReleaseIsNotATap(t *testing.T) {
	g := newGestureTracker()
	g.press(1, f32.Pt(100, 100))
	g.press(2, f32.Pt(200, 100))
	if g.release(2) {
		t.Fatal("lifting the second finger must not tap")
	}
	if g.release(1) {
		t.Fatal("lifting the last finger must not tap")
	}
}

// Lifting one pinch finger re-anchors panning on the survivor; the next
// drag must move by its own delta, not jump by the distance to the other
// finger's original press position.
func TestPinchDegradesToPanWithoutJump(t *testing.T) {
	g := newGestureTracker()
	g.press(1, f32.Pt(100, 100))
	g.press(2, f32.Pt(200, 100))
	g.drag(2, f32.Pt(240, 100), testSlop)
	g.release(1)

	u := g.drag(2, f32.Pt(245, 100), testSlop)
	if !u.pan {
		t.Fatal("surviving pointer should pan immediately")
	}
	if u.dx != 5 || u.dy != 0 {
		t.Errorf("pan delta after pinch = (%v,%v), want (5,0)", u.dx, u.dy)
	}

	if g.release(2) {
		t.Fatal("a degraded pinch must not end as a tap")
	}
}

func TestTapArmsAgainAfterPinchEnds(t *testing.T) {
	g := newGestureTracker()
	g.press(1, f32.Pt(100, 100))
	g.press(2, f32.Pt(200, 100))
	g.release(1)
	g.release(2)

	g.press(3, f32.Pt(150, 150))
	if !g.release(3) {
		t.Fatal("a fresh single-pointer press after a pinch should tap")
	}
}

func TestCancelSuppressesTap(t *testing.T) {
	g := newGestureTracker()
	g.press(1, f32.Pt(100, 100))
	g.cancel(1)
	if g.release(1) {
		t.Fatal("release after cancel must not tap")
	}
}
