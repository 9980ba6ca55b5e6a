// Package marking tracks the ordered calibration points the user places on
// a photo: two on the reference paper's edges, then toe and heel.
package marking

import "github.com/footgauge/footgauge/pkg/geom"

// MaxPoints is the full calibration set: paper left, paper right, toe, heel.
const MaxPoints = 4

// Phase is the collector's position in the measurement wizard.
type Phase int

const (
	// PhaseIdle means no image is loaded.
	PhaseIdle Phase = iota
	// PhaseViewing means an image is loaded and gestures pan/zoom the view.
	PhaseViewing
	// PhaseMarking means taps place calibration points.
	PhaseMarking
	// PhaseComplete means all four points are placed.
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseViewing:
		return "viewing"
	case PhaseMarking:
		return "marking"
	case PhaseComplete:
		return "complete"
	}
	return "unknown"
}

// Role identifies what a point at a given slot measures.
type Role int

const (
	RolePaperLeft Role = iota
	RolePaperRight
	RoleToe
	RoleHeel
)

func (r Role) String() string {
	switch r {
	case RolePaperLeft:
		return "paper left edge"
	case RolePaperRight:
		return "paper right edge"
	case RoleToe:
		return "toe"
	case RoleHeel:
		return "heel"
	}
	return "unknown"
}

// RoleAt returns the role of the point slot at index i.
func RoleAt(i int) Role { return Role(i) }

// Collector is the ordered set of up to four calibration points plus the
// marking toggle. All methods run on the UI event loop; the collector is
// not safe for concurrent use and does not need to be.
type Collector struct {
	phase    Phase
	points   []geom.Point
	preview  *geom.Point
	hasImage bool
}

// New returns an empty collector with no image loaded.
func New() *Collector {
	return &Collector{phase: PhaseIdle}
}

// Phase reports the current wizard phase.
func (c *Collector) Phase() Phase { return c.phase }

// IsMarking reports whether taps currently place points.
func (c *Collector) IsMarking() bool { return c.phase == PhaseMarking }

// Complete reports whether all four points are placed.
func (c *Collector) Complete() bool { return c.phase == PhaseComplete }

// Points returns a copy of the committed points in placement order.
func (c *Collector) Points() []geom.Point {
	out := make([]geom.Point, len(c.points))
	copy(out, c.points)
	return out
}

// Len returns the number of committed points.
func (c *Collector) Len() int { return len(c.points) }

// Preview returns the pending uncommitted point, or nil.
func (c *Collector) Preview() *geom.Point {
	if c.preview == nil {
		return nil
	}
	p := *c.preview
	return &p
}

// LoadImage records that a new image is present. Points, preview and any
// derived result are discarded; the collector moves to Viewing.
func (c *Collector) LoadImage() {
	c.hasImage = true
	c.points = nil
	c.preview = nil
	c.phase = PhaseViewing
}

// StartMarking enables point placement. Only valid while Viewing.
func (c *Collector) StartMarking() {
	if c.phase != PhaseViewing || !c.hasImage {
		return
	}
	c.phase = PhaseMarking
}

// StopMarking disables point placement without discarding progress.
func (c *Collector) StopMarking() {
	if c.phase != PhaseMarking {
		return
	}
	c.preview = nil
	c.phase = PhaseViewing
}

// SetPreview stages an uncommitted point at p. The preview replaces any
// earlier one; it only becomes a calibration point via ConfirmPreview.
func (c *Collector) SetPreview(p geom.Point) {
	if c.phase != PhaseMarking || len(c.points) >= MaxPoints {
		return
	}
	pt := p
	c.preview = &pt
}

// ClearPreview drops the pending preview, if any.
func (c *Collector) ClearPreview() { c.preview = nil }

// ConfirmPreview commits the pending preview as the next calibration point.
// A no-op when no preview is staged.
func (c *Collector) ConfirmPreview() {
	if c.preview == nil {
		return
	}
	p := *c.preview
	c.preview = nil
	c.Place(p)
}

// Place appends p as the next calibration point. Placements while not
// marking, or past the fourth point, are silently ignored. Placing the
// fourth point forces marking off and moves to Complete.
func (c *Collector) Place(p geom.Point) {
	if c.phase != PhaseMarking || len(c.points) >= MaxPoints {
		return
	}
	c.points = append(c.points, p)
	if len(c.points) == MaxPoints {
		c.preview = nil
		c.phase = PhaseComplete
	}
}

// UndoLast removes the most recently committed point. Any derived result is
// invalidated by the caller observing the phase change. After undoing, the
// collector is Marking while a partial set remains and Viewing when empty;
// marking is not re-enabled once the last point is gone.
func (c *Collector) UndoLast() {
	if len(c.points) == 0 {
		c.preview = nil
		return
	}
	c.points = c.points[:len(c.points)-1]
	c.preview = nil
	if len(c.points) > 0 {
		c.phase = PhaseMarking
	} else {
		c.phase = PhaseViewing
	}
}

// Reset clears points and preview but keeps the loaded image, returning to
// Viewing. Calling Reset repeatedly is idempotent.
func (c *Collector) Reset() {
	c.points = nil
	c.preview = nil
	if c.hasImage {
		c.phase = PhaseViewing
	} else {
		c.phase = PhaseIdle
	}
}

// FullReset additionally forgets the image, returning to Idle.
func (c *Collector) FullReset() {
	c.hasImage = false
	c.points = nil
	c.preview = nil
	c.phase = PhaseIdle
}

// Instruction returns the user-facing prompt for the current state.
func (c *Collector) Instruction() string {
	switch c.phase {
	case PhaseIdle:
		return "Open a photo of a foot next to an A4 sheet"
	case PhaseViewing:
		if len(c.points) > 0 {
			return "Tap Mark to continue placing points"
		}
		return "Pan and zoom, then tap Mark to place points"
	case PhaseMarking:
		return "Tap the " + RoleAt(len(c.points)).String()
	case PhaseComplete:
		return "All points placed"
	}
	return ""
}
