package wfc

import "encoding/binary"

// Tile is one NxN sample of the source image, row-major packed colors.
// Tiles are immutable after learning and shared by id.
type Tile []uint32

func (t Tile) key() string {
	b := make([]byte, len(t)*4)
	for i, c := range t {
		binary.LittleEndian.PutUint32(b[i*4:], c)
	}
	return string(b)
}

// Library holds every distinct tile found in a source grid. Index into
// Tiles is the tile id; Frequency is parallel to Tiles and counts how
// often each tile occurred during the learning scan.
type Library struct {
	Tiles     []Tile
	Frequency []uint32
	TileSize  int
}

// sampleSquare reads the size x size tile anchored at (cx, cy) with
// wrap-around addressing. Odd sizes are centered on (cx, cy); even
// sizes cover [c-size/2, c+size/2) on both axes.
func sampleSquare(grid *PixelGrid, size, cx, cy int) Tile {
	tile := make(Tile, size*size)
	x0 := cx - size/2
	y0 := cy - size/2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			tile[y*size+x] = grid.AtWrap(x0+x, y0+y)
		}
	}
	return tile
}

// learnTiles scans the grid in raster order (y outer, x inner),
// sampling a tile at every cell and deduplicating by exact value.
// Ids follow discovery order, so a fixed source yields fixed ids.
func learnTiles(grid *PixelGrid, tileSize int) (*Library, error) {
	if tileSize < 1 {
		return nil, ErrInvalidTileSize
	}
	if grid == nil || grid.Width < 1 || grid.Height < 1 {
		return nil, ErrEmptyGrid
	}
	lib := &Library{TileSize: tileSize}
	seen := make(map[string]int)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			tile := sampleSquare(grid, tileSize, x, y)
			k := tile.key()
			if id, ok := seen[k]; ok {
				lib.Frequency[id]++
				continue
			}
			seen[k] = len(lib.Tiles)
			lib.Tiles = append(lib.Tiles, tile)
			lib.Frequency = append(lib.Frequency, 1)
		}
	}
	return lib, nil
}

// Representative returns the single pixel that stands in for a tile
// when compositing: the tile's center sample, which is the pixel that
// logically sits at the cell the tile was anchored on.
func (l *Library) Representative(id int) uint32 {
	n := l.TileSize
	return l.Tiles[id][(n/2)*n+n/2]
}
