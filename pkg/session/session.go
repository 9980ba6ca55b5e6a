// Package session records completed measurements as JSON files.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/footgauge/footgauge/pkg/geom"
	"github.com/footgauge/footgauge/pkg/measure"
	"github.com/footgauge/footgauge/pkg/sizechart"
)

// Record is one saved measurement.
type Record struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ImagePath   string `json:"image_path,omitempty"`
	ImageWidth  int    `json:"image_width,omitempty"`
	ImageHeight int    `json:"image_height,omitempty"`

	// Points in placement order: paper left, paper right, toe, heel,
	// in image-pixel coordinates.
	Points []geom.Point `json:"points"`

	PaperPx      float64 `json:"paper_px"`
	FootPx       float64 `json:"foot_px"`
	MmPerPixel   float64 `json:"mm_per_pixel"`
	FootLengthMm float64 `json:"foot_length_mm"`
	Size         string  `json:"size"`
	System       string  `json:"system"`
}

// NewRecord builds a record from a measurement result.
func NewRecord(points []geom.Point, res measure.Result, system sizechart.System) *Record {
	pts := make([]geom.Point, len(points))
	copy(pts, points)
	return &Record{
		ID:           uuid.New().String(),
		CreatedAt:    time.Now().UTC(),
		Points:       pts,
		PaperPx:      res.PaperPx,
		FootPx:       res.FootPx,
		MmPerPixel:   res.MmPerPixel,
		FootLengthMm: res.FootLengthMm,
		Size:         res.Size(system),
		System:       system.String(),
	}
}

// Save writes the record as indented JSON.
func (r *Record) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a record previously written by Save.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &rec, nil
}
