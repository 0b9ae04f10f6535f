package geobox_test

import (
	"fmt"

	"github.com/veldram/spantile/geobox"
)

// ExampleBox_Intersect shows clipping a query window against a tile.
func ExampleBox_Intersect() {
	tile, _ := geobox.New(0, 10, 0, 10, 0, 100)
	query, _ := geobox.New(5, 15, 5, 15, 0, 100)

	overlap, err := tile.Intersect(query)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(overlap)
	fmt.Println("area:", overlap.Area())
	// Output:
	// Box(minx=5, maxx=10, miny=5, maxy=10, mint=0, maxt=100)
	// area: 25
}

// ExampleBox_Split shows a train/validation split of a region.
func ExampleBox_Split() {
	region, _ := geobox.New(0, 100, 0, 100, 0, 1)
	train, val, _ := region.Split(0.8, true)

	fmt.Println("train:", train.Area())
	fmt.Println("val:  ", val.Area())
	// Output:
	// train: 8000
	// val:   2000
}
