package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/footgauge/footgauge/pkg/geom"
)

func grayPhoto(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
		}
	}
	return img
}

func TestAnnotateNilImage(t *testing.T) {
	if got := Annotate(nil, nil, nil, Options{}); got != nil {
		t.Errorf("nil source should render nothing, got %v", got.Bounds())
	}
}

func TestAnnotateMarkerColors(t *testing.T) {
	src := grayPhoto(400, 400)
	points := []geom.Point{
		geom.Pt(50, 50),   // paper left
		geom.Pt(350, 50),  // paper right
		geom.Pt(100, 200), // toe
		geom.Pt(100, 380), // heel
	}

	out := Annotate(src, points, nil, Options{MarkerRadius: 5})
	if out == nil {
		t.Fatal("Annotate returned nil")
	}
	if out.Bounds() != src.Bounds() {
		t.Fatalf("bounds = %v, want %v", out.Bounds(), src.Bounds())
	}

	// Marker centers carry their role color.
	wantColors := []color.NRGBA{ColorPaper, ColorPaper, ColorFoot, ColorFoot}
	for i, p := range points {
		got := out.NRGBAAt(int(p.X), int(p.Y))
		if got != wantColors[i] {
			t.Errorf("point %d center = %v, want %v", i, got, wantColors[i])
		}
	}

	// Untouched background survives the pass.
	if got := out.NRGBAAt(200, 20); got != (color.NRGBA{R: 128, G: 128, B: 128, A: 255}) {
		t.Errorf("background = %v, want untouched gray", got)
	}
}

func TestAnnotatePreviewRing(t *testing.T) {
	src := grayPhoto(200, 200)
	preview := geom.Pt(100, 100)

	out := Annotate(src, nil, &preview, Options{MarkerRadius: 8})

	// Ring center stays unfilled (still background).
	center := out.NRGBAAt(100, 100)
	if center != (color.NRGBA{R: 128, G: 128, B: 128, A: 255}) {
		t.Errorf("preview center = %v, want background (ring, not disc)", center)
	}
	// The ring band carries the preview color.
	edge := out.NRGBAAt(100+8, 100)
	if edge != ColorPreview {
		t.Errorf("preview ring = %v, want %v", edge, ColorPreview)
	}
}

func TestAnnotateScalesDown(t *testing.T) {
	src := grayPhoto(800, 400)
	points := []geom.Point{geom.Pt(400, 200)}

	out := Annotate(src, points, nil, Options{MaxWidth: 200, MarkerRadius: 3})
	if out.Bounds().Dx() != 200 || out.Bounds().Dy() != 100 {
		t.Fatalf("scaled bounds = %v, want 200x100", out.Bounds())
	}
	// The point scales with the raster.
	if got := out.NRGBAAt(100, 50); got != ColorPaper {
		t.Errorf("scaled marker center = %v, want %v", got, ColorPaper)
	}
}

func TestDefaultRadiusFloor(t *testing.T) {
	if r := defaultRadius(100, 100); r != 6 {
		t.Errorf("small raster radius = %d, want floor of 6", r)
	}
	if r := defaultRadius(4000, 3000); r != 3000/80 {
		t.Errorf("large raster radius = %d, want %d", r, 3000/80)
	}
}
