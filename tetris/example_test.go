package tetris_test

import (
	"fmt"

	"github.com/plus3/blockfall/tetris"
)

// ExampleShape_Rotate shows the fixed-pivot rotation of a T piece.
func ExampleShape_Rotate() {
	t := tetris.Spawn(tetris.KindT)
	fmt.Println(t)
	fmt.Println(t.Rotate())
	// Output:
	// T{(0,0) (1,0) (2,0) (1,1) @(0,0)}
	// T{(0,0) (-1,1) (0,1) (0,2) @(0,0)}
}

func ExamplePoints() {
	for lines := range 5 {
		fmt.Println(lines, tetris.Points(lines))
	}
	// Output:
	// 0 0
	// 1 100
	// 2 300
	// 3 500
	// 4 800
}

// ExampleEngine_Coords walks a small field in row-major order.
func ExampleEngine_Coords() {
	e := tetris.NewSeeded(3, 2, 1)
	for c := range e.Coords() {
		fmt.Print(c, " ")
	}
	fmt.Println()
	// Output:
	// (0,0) (1,0) (2,0) (0,1) (1,1) (2,1)
}
