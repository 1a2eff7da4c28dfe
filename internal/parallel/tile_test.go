package parallel

import "testing"

func TestSplitCoversCanvas(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantTiles     int
	}{
		{"single partial tile", 10, 10, 1},
		{"exact tile", TileSize, TileSize, 1},
		{"one past a tile", TileSize + 1, TileSize, 2},
		{"multi tile", 200, 130, 4 * 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := Split(tt.width, tt.height)
			if len(tiles) != tt.wantTiles {
				t.Fatalf("got %d tiles, want %d", len(tiles), tt.wantTiles)
			}

			// Every pixel is covered exactly once.
			covered := make([]int, tt.width*tt.height)
			for _, tile := range tiles {
				if tile.X0 < 0 || tile.Y0 < 0 || tile.X1 > tt.width || tile.Y1 > tt.height {
					t.Fatalf("tile %+v exceeds %dx%d canvas", tile, tt.width, tt.height)
				}
				if tile.X0 >= tile.X1 || tile.Y0 >= tile.Y1 {
					t.Fatalf("tile %+v is empty", tile)
				}
				for y := tile.Y0; y < tile.Y1; y++ {
					for x := tile.X0; x < tile.X1; x++ {
						covered[y*tt.width+x]++
					}
				}
			}
			for i, c := range covered {
				if c != 1 {
					t.Fatalf("pixel %d covered %d times", i, c)
				}
			}
		})
	}
}

func TestSplitEmpty(t *testing.T) {
	if tiles := Split(0, 100); tiles != nil {
		t.Errorf("Split(0,100) = %v, want nil", tiles)
	}
	if tiles := Split(100, -1); tiles != nil {
		t.Errorf("Split(100,-1) = %v, want nil", tiles)
	}
}
