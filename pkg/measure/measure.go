// Package measure converts four calibration points into a physical foot
// length using the known width of an ISO A4 sheet as the ruler.
package measure

import (
	"errors"

	"github.com/footgauge/footgauge/pkg/geom"
	"github.com/footgauge/footgauge/pkg/marking"
	"github.com/footgauge/footgauge/pkg/sizechart"
)

// PaperWidthMm is the short edge of an ISO A4 sheet.
const PaperWidthMm = 210.0

var (
	// ErrIncomplete is returned when fewer than four points are supplied.
	ErrIncomplete = errors.New("measure: need all four calibration points")

	// ErrDegeneratePaper is returned when the two paper points coincide,
	// which would make the pixel scale infinite.
	ErrDegeneratePaper = errors.New("measure: paper edge points coincide")

	// ErrDegenerateFoot is returned when toe and heel coincide.
	ErrDegenerateFoot = errors.New("measure: toe and heel points coincide")
)

// Result is a completed measurement.
type Result struct {
	// PaperPx is the pixel length of the reference paper edge.
	PaperPx float64
	// FootPx is the pixel length between toe and heel.
	FootPx float64
	// MmPerPixel is the calibrated scale factor.
	MmPerPixel float64
	// FootLengthMm is the measured foot length.
	FootLengthMm float64
	// Label is the size bucket the length falls into (chart label, no
	// system prefix).
	Label string
}

// Size formats the result's size label for a display system.
func (r Result) Size(system sizechart.System) string {
	return sizechart.Display(r.Label, system)
}

// Measure computes foot length and size from the calibration points, in
// placement order: paper left, paper right, toe, heel. A nil chart uses the
// built-in UK chart. Degenerate geometry is rejected rather than producing
// an infinite or NaN length.
func Measure(points []geom.Point, chart *sizechart.Chart) (Result, error) {
	if len(points) != marking.MaxPoints {
		return Result{}, ErrIncomplete
	}
	if chart == nil {
		chart = sizechart.DefaultUK()
	}

	paperPx := geom.Distance(points[0], points[1])
	if paperPx == 0 {
		return Result{}, ErrDegeneratePaper
	}
	footPx := geom.Distance(points[2], points[3])
	if footPx == 0 {
		return Result{}, ErrDegenerateFoot
	}

	mmPerPixel := PaperWidthMm / paperPx
	footLengthMm := footPx * mmPerPixel

	return Result{
		PaperPx:      paperPx,
		FootPx:       footPx,
		MmPerPixel:   mmPerPixel,
		FootLengthMm: footLengthMm,
		Label:        chart.Classify(footLengthMm),
	}, nil
}
