/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"

	"github.com/SvenDH/go-wfc/view"
	"github.com/SvenDH/go-wfc/wfc"
)

var (
	viewWidth     int
	viewHeight    int
	viewTileSize  int
	viewSeed      int64
	viewPixelSize int
)

// viewCmd represents the view command
var viewCmd = &cobra.Command{
	Use:   "view [image_file]",
	Short: "Watch the collapse run live next to the sample image",
	Long: `Watch the collapse run live next to the sample image.

One collapse step runs per frame; undetermined cells show the average
color of their remaining candidates. Contradictions restart generation
automatically.

Controls:
  R      - Restart generation
  S      - Save the current output as a PNG
  ESC    - Quit`,
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
		params, err := wfc.Learn(grid, viewTileSize)
		if err != nil {
			log.Fatal(err)
		}

		seed := viewSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))

		v, err := view.New(params, grid, viewWidth, viewHeight, viewPixelSize, rng)
		if err != nil {
			log.Fatal(err)
		}

		// Window setup
		w, h := v.Layout(0, 0)
		ebiten.SetWindowSize(w, h)
		ebiten.SetWindowTitle("wave function collapse")

		if err := ebiten.RunGame(v); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().IntVarP(&viewWidth, "width", "W", 64, "Width of the output in cells")
	viewCmd.Flags().IntVarP(&viewHeight, "height", "H", 64, "Height of the output in cells")
	viewCmd.Flags().IntVarP(&viewTileSize, "size", "n", 3, "Tile size sampled from the input")
	viewCmd.Flags().Int64VarP(&viewSeed, "seed", "s", 0, "Random seed (0 = time-based)")
	viewCmd.Flags().IntVarP(&viewPixelSize, "pixel", "p", 8, "Display scale in screen pixels per cell")
}
