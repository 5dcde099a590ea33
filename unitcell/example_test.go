// File: unitcell/example_test.go
package unitcell_test

import (
	"fmt"

	"github.com/quenchlab/xtal/unitcell"
	"github.com/quenchlab/xtal/vec3"
)

// ExampleUnitCell converts a fractional position to Cartesian Å and back in
// an orthorhombic 10×20×30 cell.
func ExampleUnitCell() {
	cell, _ := unitcell.New(10, 20, 30, 90, 90, 90)

	cart := cell.Orthogonalize(vec3.Vec3{0.5, 0.25, 0.1})
	fmt.Println("cartesian:", cart)
	fmt.Println("volume:", cell.Volume())

	// Output:
	// cartesian: [5 5 3]
	// volume: 6000
}
