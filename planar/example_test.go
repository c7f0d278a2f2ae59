package planar_test

import (
	"fmt"

	"github.com/go-planarity/lrplanar/builder"
	"github.com/go-planarity/lrplanar/planar"
)

func ExamplePlanar() {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(5))
	if err != nil {
		panic(err)
	}

	fmt.Println(planar.Planar(planar.FromCore(g)))
	// Output: true
}

func ExamplePlanar_nonPlanar() {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(5))
	if err != nil {
		panic(err)
	}

	fmt.Println(planar.Planar(planar.FromCore(g)))
	// Output: false
}
