package cmd

import (
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/footgauge/footgauge/internal/render"
	"github.com/footgauge/footgauge/pkg/geom"
)

var (
	renderOutPath    string
	renderMaxWidth   int
	renderPaperLeft  string
	renderPaperRight string
	renderToe        string
	renderHeel       string
)

var renderCmd = &cobra.Command{
	Use:   "render <image>",
	Short: "Write an annotated copy of a photo",
	Long: `Render the photo with measurement markers burned in. Markers follow
placement order, so flags must form a prefix of paper-left, paper-right,
toe, heel; trailing ones may be omitted.

Example:
  footgauge render photo.jpg -o marked.png \
      --paper-left 120,300 --paper-right 980,310 \
      --toe 400,150 --heel 420,1450`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := imaging.Open(args[0], imaging.AutoOrientation(true))
		if err != nil {
			return fmt.Errorf("failed to open image: %w", err)
		}

		var points []geom.Point
		flags := []struct{ name, value string }{
			{"paper-left", renderPaperLeft},
			{"paper-right", renderPaperRight},
			{"toe", renderToe},
			{"heel", renderHeel},
		}
		for i, f := range flags {
			if f.value == "" {
				for _, later := range flags[i+1:] {
					if later.value != "" {
						return fmt.Errorf("--%s requires --%s", later.name, f.name)
					}
				}
				break
			}
			p, err := parsePointFlag(f.value)
			if err != nil {
				return fmt.Errorf("--%s: %w", f.name, err)
			}
			points = append(points, p)
		}

		out := render.Annotate(img, points, nil, render.Options{MaxWidth: renderMaxWidth})
		if err := imaging.Save(out, renderOutPath); err != nil {
			return fmt.Errorf("failed to save %s: %w", renderOutPath, err)
		}
		fmt.Printf("Wrote %s (%dx%d)\n", renderOutPath, out.Bounds().Dx(), out.Bounds().Dy())
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutPath, "output", "o", "annotated.png", "output image path")
	renderCmd.Flags().IntVar(&renderMaxWidth, "max-width", 0, "scale the output down to at most this width")
	renderCmd.Flags().StringVar(&renderPaperLeft, "paper-left", "", "left paper edge as x,y")
	renderCmd.Flags().StringVar(&renderPaperRight, "paper-right", "", "right paper edge as x,y")
	renderCmd.Flags().StringVar(&renderToe, "toe", "", "toe tip as x,y")
	renderCmd.Flags().StringVar(&renderHeel, "heel", "", "heel as x,y")
	rootCmd.AddCommand(renderCmd)
}
