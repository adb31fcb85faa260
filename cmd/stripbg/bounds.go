package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/stripbg/internal/imaging"
)

var boundsCmd = &cobra.Command{
	Use:   "bounds [file]",
	Short: "Report the content bounding box without writing an image",
	Args:  cobra.ExactArgs(1),
	RunE:  runBounds,
}

func init() {
	boundsCmd.Flags().IntP("tolerance", "t", imaging.DefaultTolerance, "Whiteness threshold 0-255")
	rootCmd.AddCommand(boundsCmd)
}

func runBounds(cmd *cobra.Command, args []string) error {
	path := args[0]
	tolerance, _ := cmd.Flags().GetInt("tolerance")

	img, err := imaging.LoadImage(path)
	if err != nil {
		return err
	}

	report, err := imaging.ContentBoundsReport(img, tolerance)
	if err != nil {
		return err
	}

	srcBounds := img.Bounds()
	fmt.Printf("File:      %s\n", path)
	fmt.Printf("Size:      %d x %d\n", srcBounds.Dx(), srcBounds.Dy())
	fmt.Printf("Tolerance: %d\n", tolerance)
	if !report.Found {
		fmt.Println("Content:   none (entire image classified as background)")
		return nil
	}
	fmt.Printf("Content:   (%d,%d)-(%d,%d), %d x %d\n",
		report.X1, report.Y1, report.X2, report.Y2, report.Width, report.Height)

	return nil
}
