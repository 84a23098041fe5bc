/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "go-wfc",
	Short: "Generate tile-based images with wave function collapse",
	Long: `go-wfc learns NxN tiles, their frequencies and adjacency rules from a
small sample image, then synthesizes new images that locally look like
the sample. Use "generate" for batch output or "view" to watch the
collapse live.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
