package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/stripbg/internal/imaging"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Write a copy of the image with the detected content box outlined",
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringP("input", "i", "", "Input image file")
	inspectCmd.Flags().StringP("output", "o", "", "Output PNG file with the box drawn")
	inspectCmd.Flags().IntP("tolerance", "t", imaging.DefaultTolerance, "Whiteness threshold 0-255")
	inspectCmd.Flags().String("color", "#FF0000", "Outline color as hex")
	inspectCmd.MarkFlagRequired("input")
	inspectCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	tolerance, _ := cmd.Flags().GetInt("tolerance")
	colorHex, _ := cmd.Flags().GetString("color")

	img, err := imaging.LoadImage(inputPath)
	if err != nil {
		return err
	}

	outline, err := imaging.ParseHexColor(colorHex)
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", colorHex, err)
	}

	report, err := imaging.ContentBoundsReport(img, tolerance)
	if err != nil {
		return err
	}
	if !report.Found {
		return fmt.Errorf("no opaque content at tolerance %d; nothing to outline", tolerance)
	}

	marked := imaging.DrawBounds(img, report.Rect(), outline)
	if err := imaging.SavePNG(outputPath, marked); err != nil {
		return err
	}

	fmt.Printf("Content box (%d,%d)-(%d,%d) outlined in %s\n",
		report.X1, report.Y1, report.X2, report.Y2, outputPath)

	return nil
}
