package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/footgauge/footgauge/pkg/sizechart"
)

var chartCmd = &cobra.Command{
	Use:   "chart <file>",
	Short: "Validate and print a size chart file",
	Long: `Parse a size chart file and print its buckets. The file format is one
"below <mm> -> <label>" rule per line with a final "else -> <label>":

  chart uk
  below 240 -> 5
  below 250 -> 6
  below 260 -> 7
  below 270 -> 8
  below 280 -> 9
  else -> 10
  end`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser, err := sizechart.NewParser()
		if err != nil {
			return err
		}
		chart, err := parser.ParseFile(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Chart: %s\n", chart.Name)
		lower := "     -"
		for _, b := range chart.Buckets {
			fmt.Printf("  %6s .. %6.1f mm -> %s\n", lower, b.UpperMm, b.Label)
			lower = fmt.Sprintf("%.1f", b.UpperMm)
		}
		fmt.Printf("  %6s ..      + mm -> %s\n", lower, chart.Final)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chartCmd)
}
