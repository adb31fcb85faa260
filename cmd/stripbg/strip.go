package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/stripbg/internal/imaging"
	"github.com/ironsheep/stripbg/internal/pipeline"
)

var stripCmd = &cobra.Command{
	Use:   "strip",
	Short: "Remove the near-white background and crop to content",
	RunE:  runStrip,
}

func init() {
	stripCmd.Flags().StringP("input", "i", "", "Input image file (png/jpg/gif/bmp/tiff/webp)")
	stripCmd.Flags().StringP("output", "o", "", "Output PNG file")
	stripCmd.Flags().IntP("tolerance", "t", imaging.DefaultTolerance,
		"Whiteness threshold 0-255; a pixel is background when R, G, and B each exceed 255-tolerance")
	stripCmd.MarkFlagRequired("input")
	stripCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(stripCmd)
}

func runStrip(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	tolerance, _ := cmd.Flags().GetInt("tolerance")

	result, err := pipeline.Run(inputPath, outputPath, pipeline.Options{Tolerance: tolerance})
	if err != nil {
		return err
	}

	if result.Cropped {
		fmt.Printf("Content box: (%d,%d)-(%d,%d) of %dx%d source\n",
			result.Bounds.Min.X, result.Bounds.Min.Y,
			result.Bounds.Max.X, result.Bounds.Max.Y,
			result.SrcWidth, result.SrcHeight)
	} else {
		fmt.Printf("No opaque content found; kept full %dx%d canvas\n",
			result.SrcWidth, result.SrcHeight)
	}
	fmt.Printf("Background pixels removed: %d\n", result.BackgroundPixels)
	fmt.Printf("Saved cropped transparent image to %s\n", outputPath)

	return nil
}
