package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "stripbg",
	Short: "Strip near-white backgrounds from images and crop to content",
	Long: `stripbg rewrites near-white pixels to transparent, crops the image to
the bounding box of the remaining content, and writes the result as PNG.`,
	Version: Version,
}

func main() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"stripbg %s\n  Build time: %s\n  Git commit: %s\n", Version, BuildTime, GitCommit))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
