package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/footgauge/footgauge/internal/logging"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "footgauge",
	Short: "Footgauge - measure feet from photos and map to shoe sizes",
	Long: `Footgauge computes foot length from a photo of a foot placed next to
an A4 sheet of paper. The sheet's known width (210 mm) calibrates the
image so pixel distances convert to millimeters.

Examples:
  footgauge ui photo.jpg                        # Launch the interactive GUI
  footgauge measure photo.jpg \
      --paper-left 120,300 --paper-right 980,310 \
      --toe 400,150 --heel 420,1450             # Headless measurement
  footgauge render photo.jpg -o marked.png      # Annotated overlay image
  footgauge chart sizes.chart                   # Validate a size chart file`,
	Version: "1.2.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(cmd.Name() == "ui")
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
