package linop_test

import (
	"fmt"

	"github.com/cwbudde/algo-linop/linop"
)

func ExampleDiag() {
	op, _ := linop.Diag([]float64{1, 2, 3})

	y, _ := op.Apply([]float64{1, 1, 1})
	rows, cols := op.Shape()

	fmt.Printf("shape: (%d, %d)\n", rows, cols)
	fmt.Println(y)

	// Output:
	// shape: (3, 3)
	// [1 2 3]
}

func ExampleND() {
	// Sum each row of a 2x3 array.
	sumRows := func(x linop.Array[float64]) (linop.Array[float64], error) {
		out := linop.NewArray[float64](linop.Shape{2})
		for i := range x.Data {
			out.Data[i/3] += x.Data[i]
		}
		return out, nil
	}
	// Spread each row value across its row.
	spread := func(y linop.Array[float64]) (linop.Array[float64], error) {
		out := linop.NewArray[float64](linop.Shape{2, 3})
		for i := range out.Data {
			out.Data[i] = y.Data[i/3]
		}
		return out, nil
	}

	op, _ := linop.ND(linop.Shape{2, 3}, linop.Shape{2}, sumRows, spread)
	y, _ := op.Apply([]float64{1, 2, 3, 4, 5, 6})
	z, _ := op.ApplyAdjoint(y)

	fmt.Println(y)
	fmt.Println(z)

	// Output:
	// [6 15]
	// [6 6 6 15 15 15]
}
