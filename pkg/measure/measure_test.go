package measure

import (
	"errors"
	"math"
	"testing"

	"github.com/footgauge/footgauge/pkg/geom"
	"github.com/footgauge/footgauge/pkg/sizechart"
)

func TestMeasureDeterminism(t *testing.T) {
	points := []geom.Point{
		geom.Pt(0, 0),
		geom.Pt(100, 0),
		geom.Pt(10, 50),
		geom.Pt(10, 150),
	}

	res, err := Measure(points, nil)
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}

	if res.PaperPx != 100 {
		t.Errorf("PaperPx = %v, want 100", res.PaperPx)
	}
	if res.FootPx != 100 {
		t.Errorf("FootPx = %v, want 100", res.FootPx)
	}
	if math.Abs(res.MmPerPixel-2.1) > 1e-9 {
		t.Errorf("MmPerPixel = %v, want 2.1", res.MmPerPixel)
	}
	if math.Abs(res.FootLengthMm-210.0) > 1e-9 {
		t.Errorf("FootLengthMm = %v, want 210.0", res.FootLengthMm)
	}
	if got := res.Size(sizechart.SystemUK); got != "UK 5" {
		t.Errorf("size = %q, want \"UK 5\"", got)
	}
}

func TestMeasureDegeneratePaper(t *testing.T) {
	points := []geom.Point{
		geom.Pt(5, 5),
		geom.Pt(5, 5),
		geom.Pt(10, 50),
		geom.Pt(10, 150),
	}

	res, err := Measure(points, nil)
	if !errors.Is(err, ErrDegeneratePaper) {
		t.Fatalf("error = %v, want ErrDegeneratePaper", err)
	}
	// The zero result must not smuggle Inf/NaN to callers.
	if math.IsInf(res.FootLengthMm, 0) || math.IsNaN(res.FootLengthMm) {
		t.Errorf("degenerate paper produced FootLengthMm = %v", res.FootLengthMm)
	}
}

func TestMeasureDegenerateFoot(t *testing.T) {
	points := []geom.Point{
		geom.Pt(0, 0),
		geom.Pt(100, 0),
		geom.Pt(10, 50),
		geom.Pt(10, 50),
	}
	if _, err := Measure(points, nil); !errors.Is(err, ErrDegenerateFoot) {
		t.Fatalf("error = %v, want ErrDegenerateFoot", err)
	}
}

func TestMeasureIncomplete(t *testing.T) {
	for n := 0; n < 4; n++ {
		points := make([]geom.Point, n)
		if _, err := Measure(points, nil); !errors.Is(err, ErrIncomplete) {
			t.Errorf("with %d points error = %v, want ErrIncomplete", n, err)
		}
	}
}

func TestMeasureCustomChart(t *testing.T) {
	chart := &sizechart.Chart{
		Name:    "EU",
		Buckets: []sizechart.Bucket{{UpperMm: 250, Label: "39"}},
		Final:   "43",
	}
	points := []geom.Point{
		geom.Pt(0, 0),
		geom.Pt(210, 0), // 1 px per mm
		geom.Pt(0, 0),
		geom.Pt(0, 245),
	}
	res, err := Measure(points, chart)
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	if res.Label != "39" {
		t.Errorf("label = %q, want 39", res.Label)
	}
}

func TestMeasureAngledSegments(t *testing.T) {
	// Paper edge on a diagonal still calibrates by Euclidean length.
	points := []geom.Point{
		geom.Pt(0, 0),
		geom.Pt(60, 80), // 100 px
		geom.Pt(0, 0),
		geom.Pt(0, 120),
	}
	res, err := Measure(points, nil)
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	if math.Abs(res.FootLengthMm-252.0) > 1e-9 {
		t.Errorf("FootLengthMm = %v, want 252.0", res.FootLengthMm)
	}
	if res.Label != "7" {
		t.Errorf("label = %q, want 7 (252 < 260)", res.Label)
	}
}
