package cmd

import (
	"log"
	"os"

	"gioui.org/app"
	"github.com/spf13/cobra"

	appui "github.com/footgauge/footgauge/internal/ui"
)

var uiCmd = &cobra.Command{
	Use:   "ui [image]",
	Short: "Launch the interactive measurement GUI",
	Long: `Launch the graphical measurement workflow: open a photo, mark the two
paper edges and the toe and heel, and read off the foot length and the
recommended shoe size. An optional image argument preloads a photo.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		imagePath := ""
		if len(args) == 1 {
			imagePath = args[0]
		}
		go func() {
			a := appui.New(nil, imagePath)
			if err := a.Run(); err != nil {
				log.Printf("ui: %v", err)
				os.Exit(1)
			}
			os.Exit(0)
		}()
		app.Main()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
