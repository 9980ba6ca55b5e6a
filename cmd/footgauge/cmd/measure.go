package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/footgauge/footgauge/pkg/geom"
	"github.com/footgauge/footgauge/pkg/measure"
	"github.com/footgauge/footgauge/pkg/session"
	"github.com/footgauge/footgauge/pkg/sizechart"
)

var (
	measurePaperLeft  string
	measurePaperRight string
	measureToe        string
	measureHeel       string
	measureSystem     string
	measureChartPath  string
	measureOutPath    string
)

var measureCmd = &cobra.Command{
	Use:   "measure <image>",
	Short: "Measure a foot from marked coordinates",
	Long: `Compute foot length and shoe size without the GUI. The four calibration
points are given as pixel coordinates in the photo's native resolution,
each in the form x,y.

Example:
  footgauge measure photo.jpg \
      --paper-left 120,300 --paper-right 980,310 \
      --toe 400,150 --heel 420,1450 --system us`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		imagePath := args[0]

		points := make([]geom.Point, 0, 4)
		for _, f := range []struct{ name, value string }{
			{"paper-left", measurePaperLeft},
			{"paper-right", measurePaperRight},
			{"toe", measureToe},
			{"heel", measureHeel},
		} {
			p, err := parsePointFlag(f.value)
			if err != nil {
				return fmt.Errorf("--%s: %w", f.name, err)
			}
			points = append(points, p)
		}

		system, err := sizechart.ParseSystem(measureSystem)
		if err != nil {
			return err
		}

		chart := sizechart.DefaultUK()
		if measureChartPath != "" {
			parser, err := sizechart.NewParser()
			if err != nil {
				return err
			}
			chart, err = parser.ParseFile(measureChartPath)
			if err != nil {
				return fmt.Errorf("chart %s: %w", measureChartPath, err)
			}
		}

		img, err := imaging.Open(imagePath, imaging.AutoOrientation(true))
		if err != nil {
			return fmt.Errorf("failed to open image: %w", err)
		}
		bounds := img.Bounds()

		res, err := measure.Measure(points, chart)
		if err != nil {
			return err
		}

		if verbose {
			fmt.Printf("Image:        %s (%dx%d)\n", imagePath, bounds.Dx(), bounds.Dy())
			fmt.Printf("Paper width:  %.1f px\n", res.PaperPx)
			fmt.Printf("Foot length:  %.1f px\n", res.FootPx)
			fmt.Printf("Calibration:  %.4f mm/px\n", res.MmPerPixel)
		}
		fmt.Printf("Foot length: %.1f mm\n", res.FootLengthMm)
		fmt.Printf("Shoe size:   %s\n", res.Size(system))

		if measureOutPath != "" {
			rec := session.NewRecord(points, res, system)
			rec.ImagePath = imagePath
			rec.ImageWidth = bounds.Dx()
			rec.ImageHeight = bounds.Dy()
			if err := rec.Save(measureOutPath); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}
			fmt.Printf("Session:     %s\n", measureOutPath)
		}
		return nil
	},
}

// parsePointFlag parses an "x,y" pixel coordinate pair.
func parsePointFlag(s string) (geom.Point, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return geom.Point{}, fmt.Errorf("expected x,y coordinates, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("invalid x coordinate %q", parts[0])
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("invalid y coordinate %q", parts[1])
	}
	return geom.Pt(x, y), nil
}

func init() {
	measureCmd.Flags().StringVar(&measurePaperLeft, "paper-left", "", "left paper edge as x,y (required)")
	measureCmd.Flags().StringVar(&measurePaperRight, "paper-right", "", "right paper edge as x,y (required)")
	measureCmd.Flags().StringVar(&measureToe, "toe", "", "toe tip as x,y (required)")
	measureCmd.Flags().StringVar(&measureHeel, "heel", "", "heel as x,y (required)")
	measureCmd.Flags().StringVar(&measureSystem, "system", "uk", "size system: uk, us, or ind")
	measureCmd.Flags().StringVar(&measureChartPath, "chart", "", "size chart file (defaults to the built-in UK chart)")
	measureCmd.Flags().StringVar(&measureOutPath, "out", "", "write the session record to this JSON file")
	for _, name := range []string{"paper-left", "paper-right", "toe", "heel"} {
		_ = measureCmd.MarkFlagRequired(name)
	}
	rootCmd.AddCommand(measureCmd)
}
