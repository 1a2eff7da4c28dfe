package dotgrid_test

import (
	"fmt"
	"log"

	"github.com/dotgrid/dotgrid"
)

func ExampleEnumerate() {
	grid, err := dotgrid.NewGrid(dotgrid.Config{
		Cols: 2, Rows: 2,
		Spacing:     1.5,
		InnerRadius: 0.4,
		OuterRadius: 0.5,
	})
	if err != nil {
		log.Fatal(err)
	}
	snap, err := dotgrid.NewSnapshot(grid, []bool{true, true, true, true})
	if err != nil {
		log.Fatal(err)
	}

	instances, err := dotgrid.Enumerate(grid, snap)
	if err != nil {
		log.Fatal(err)
	}
	for _, in := range instances {
		fmt.Printf("%s at (%d,%d)\n", in.Link.Kind, in.Link.Col, in.Link.Row)
	}
	// Output:
	// horizontal at (0,0)
	// diagonal-down at (0,0)
	// diagonal-up at (0,0)
	// horizontal at (0,1)
}

func ExampleMask_Contains() {
	grid, err := dotgrid.NewGrid(dotgrid.Config{
		Cols: 2, Rows: 1,
		Spacing:     1.5,
		InnerRadius: 0.4,
		OuterRadius: 0.5,
	})
	if err != nil {
		log.Fatal(err)
	}
	snap, err := dotgrid.NewSnapshot(grid, []bool{true, true})
	if err != nil {
		log.Fatal(err)
	}
	mask, err := dotgrid.NewMask(grid, snap)
	if err != nil {
		log.Fatal(err)
	}

	mid := grid.Center(0, 0).Midpoint(grid.Center(1, 0))
	fmt.Println(mask.Contains(mid))
	fmt.Println(mask.Contains(mid.Add(dotgrid.Pt(0, 1))))
	// Output:
	// true
	// false
}
