package view

import (
	"errors"
	"fmt"
	"image/png"
	"log"
	"math/rand"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/oklog/ulid/v2"

	"github.com/SvenDH/go-wfc/wfc"
)

const margin = 1 // border around and between the two panels, in source pixels

// Viewer shows the source image next to the evolving output and runs
// one collapse step per frame. Implements ebiten.Game.
//
// Keys: R restarts generation, S saves the current output as a PNG,
// Escape quits.
type Viewer struct {
	params    *wfc.Params
	field     *wfc.Field
	rng       *rand.Rand
	source    *ebiten.Image
	output    *ebiten.Image
	pixels    []byte
	pixelSize int
	restarts  int
	status    string
}

// New builds a viewer for the given learned parameters and source
// grid. pixelSize is the integer upscale factor for display.
func New(params *wfc.Params, source *wfc.PixelGrid, outW, outH, pixelSize int, rng *rand.Rand) (*Viewer, error) {
	field, err := params.NewField(outW, outH)
	if err != nil {
		return nil, err
	}
	v := &Viewer{
		params:    params,
		field:     field,
		rng:       rng,
		source:    ebiten.NewImageFromImage(wfc.ToImage(source.Pixels(), source.Width, source.Height)),
		output:    ebiten.NewImage(outW, outH),
		pixels:    make([]byte, outW*outH*4),
		pixelSize: pixelSize,
	}
	v.blit()
	return v, nil
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.params.Reset(v.field)
		v.restarts = 0
		v.status = ""
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := v.save(); err != nil {
			log.Printf("save failed: %v", err)
		}
	}
	if !v.field.Done() {
		if err := v.params.Step(v.field, v.rng); err != nil {
			if !errors.Is(err, wfc.ErrContradiction) {
				return err
			}
			v.restarts++
			log.Printf("contradiction, restarting (%d)", v.restarts)
			v.params.Reset(v.field)
		}
		v.blit()
	}
	return nil
}

// blit composites the field into the output texture.
func (v *Viewer) blit() {
	pixels := v.params.Composite(v.field)
	for i, c := range pixels {
		v.pixels[i*4] = uint8(c)
		v.pixels[i*4+1] = uint8(c >> 8)
		v.pixels[i*4+2] = uint8(c >> 16)
		v.pixels[i*4+3] = uint8(c >> 24)
	}
	v.output.WritePixels(v.pixels)
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	s := float64(v.pixelSize)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(margin*s, margin*s)
	screen.DrawImage(v.source, op)

	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(float64(v.source.Bounds().Dx()+2*margin)*s, margin*s)
	screen.DrawImage(v.output, op)

	if v.status != "" {
		ebitenutil.DebugPrint(screen, v.status)
	} else if v.field.Done() {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("done (%d restarts)", v.restarts))
	}
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := (v.source.Bounds().Dx() + v.output.Bounds().Dx() + 3*margin) * v.pixelSize
	h := (max(v.source.Bounds().Dy(), v.output.Bounds().Dy()) + 2*margin) * v.pixelSize
	return w, h
}

// save writes the current output to wfc-<ulid>.png in the working
// directory.
func (v *Viewer) save() error {
	name := fmt.Sprintf("wfc-%s.png", ulid.Make().String())
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	img := wfc.ToImage(v.params.Composite(v.field), v.field.Width, v.field.Height)
	if err := png.Encode(f, img); err != nil {
		return err
	}
	v.status = "saved " + name
	return nil
}
