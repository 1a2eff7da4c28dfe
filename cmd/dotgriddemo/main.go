// Command dotgriddemo renders a circle grid with connectors to a PNG file.
//
// The activation pattern is given as slash-separated rows of 'x' (active)
// and '.' (inactive), e.g. "x.x/xxx/x.x". When no pattern is given, a
// deterministic demo pattern sized to the grid is used.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/dotgrid/dotgrid"
)

func main() {
	var (
		cols        = flag.Int("cols", 6, "grid columns")
		rows        = flag.Int("rows", 4, "grid rows")
		spacing     = flag.Float64("spacing", 1.5, "cell center spacing (world units)")
		inner       = flag.Float64("inner", 0.4, "inner circle radius")
		outer       = flag.Float64("outer", 0.5, "outer circle radius")
		pattern     = flag.String("pattern", "", "activation pattern, rows of x/. separated by '/'")
		size        = flag.Int("size", 800, "output image width in pixels")
		supersample = flag.Int("supersample", 1, "supersampling factor")
		output      = flag.String("output", "dotgrid.png", "output file")
	)
	flag.Parse()

	grid, err := dotgrid.NewGrid(dotgrid.Config{
		Cols: *cols, Rows: *rows,
		Spacing:     *spacing,
		InnerRadius: *inner,
		OuterRadius: *outer,
	})
	if err != nil {
		log.Fatalf("Invalid grid: %v", err)
	}

	cells, err := parsePattern(*pattern, *cols, *rows)
	if err != nil {
		log.Fatalf("Invalid pattern: %v", err)
	}
	snap, err := dotgrid.NewSnapshot(grid, cells)
	if err != nil {
		log.Fatalf("Invalid snapshot: %v", err)
	}

	height := *size * *rows / *cols
	view := dotgrid.FitView(grid, *size, height, 0.5)

	r := dotgrid.NewRenderer(dotgrid.WithSupersample(*supersample))
	defer r.Close()

	pm, err := r.Render(grid, snap, view)
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}
	if err := pm.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Saved %s (%dx%d)", *output, pm.Width(), pm.Height())
}

// parsePattern converts a 'x'/'.' row string into a row-major cell slice.
// An empty pattern activates a diagonal stripe demo.
func parsePattern(pattern string, cols, rows int) ([]bool, error) {
	cells := make([]bool, cols*rows)
	if pattern == "" {
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				if (col+row)%3 != 2 {
					cells[row*cols+col] = true
				}
			}
		}
		return cells, nil
	}

	lines := strings.Split(pattern, "/")
	for row, line := range lines {
		if row >= rows {
			break
		}
		for col, ch := range line {
			if col >= cols {
				break
			}
			switch ch {
			case 'x', 'X':
				cells[row*cols+col] = true
			case '.':
			default:
				return nil, fmt.Errorf("unexpected pattern character %q at row %d", ch, row)
			}
		}
	}
	return cells, nil
}
