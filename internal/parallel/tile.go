package parallel

// TileSize is the tile edge length in pixels. 64x64 keeps a tile's working
// set inside L1 and matches the granularity that balances well across
// workers for typical frame sizes.
const TileSize = 64

// Tile is a rectangular pixel range [X0,X1) x [Y0,Y1) of the output image.
// Tiles from one Split never overlap, so workers may write their tile's
// pixels into a shared buffer without locking.
type Tile struct {
	X0, Y0 int
	X1, Y1 int
}

// Split covers a width x height canvas with TileSize tiles. Edge tiles are
// clipped to the canvas. Returns nil for empty canvases.
func Split(width, height int) []Tile {
	if width <= 0 || height <= 0 {
		return nil
	}
	cols := (width + TileSize - 1) / TileSize
	rows := (height + TileSize - 1) / TileSize

	tiles := make([]Tile, 0, cols*rows)
	for ty := 0; ty < rows; ty++ {
		for tx := 0; tx < cols; tx++ {
			t := Tile{
				X0: tx * TileSize,
				Y0: ty * TileSize,
				X1: (tx + 1) * TileSize,
				Y1: (ty + 1) * TileSize,
			}
			if t.X1 > width {
				t.X1 = width
			}
			if t.Y1 > height {
				t.Y1 = height
			}
			tiles = append(tiles, t)
		}
	}
	return tiles
}
