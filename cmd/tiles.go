/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"

	"github.com/SvenDH/go-wfc/wfc"
)

var tilesSize int

// tilesCmd represents the tiles command
var tilesCmd = &cobra.Command{
	Use:   "tiles [image_file]",
	Short: "Print the tile library learned from a sample image",
	Long: `Print the tile library learned from a sample image: how many
distinct tiles the sample contains, how often each occurs and how many
neighbors each allows per direction.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reader, err := os.Open(args[0])
		if err != nil {
			log.Fatal(err)
		}
		defer reader.Close()
		m, _, err := image.Decode(reader)
		if err != nil {
			log.Fatal(err)
		}
		grid, err := wfc.FromImage(m)
		if err != nil {
			log.Fatal(err)
		}
		params, err := wfc.Learn(grid, tilesSize)
		if err != nil {
			log.Fatal(err)
		}

		lib := params.Library
		fmt.Printf("%d distinct %dx%d tiles in %dx%d sample\n",
			len(lib.Tiles), tilesSize, tilesSize, grid.Width, grid.Height)
		fmt.Println("id\tfreq\tup\tright\tdown\tleft")
		for id := range lib.Tiles {
			fmt.Printf("%d\t%d", id, lib.Frequency[id])
			for d := wfc.DirUp; d <= wfc.DirLeft; d++ {
				n := 0
				for b := range lib.Tiles {
					if params.Rules.Allowed(id, d, b) {
						n++
					}
				}
				fmt.Printf("\t%d", n)
			}
			fmt.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(tilesCmd)

	tilesCmd.Flags().IntVarP(&tilesSize, "size", "n", 3, "Tile size sampled from the input")
}
