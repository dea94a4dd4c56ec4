package plotdata_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/integrix/plotdata"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleBuild
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Four raw samples of a curve with one pole hit (the NaN). The curve
//	keeps the three finite points; the five-point fill strip still
//	shades [1, 3] by interpolating across the gap.
//
// Use case:
//
//	This is the exact hand-off shape between the engine and a frontend
//	chart.
//
// Complexity: O(n + m) for n samples and m fill points.
func ExampleBuild() {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 1, math.NaN(), 9}

	pd, err := plotdata.Build(xs, ys, 1, 3, plotdata.Options{FillSamples: 5})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(len(pd.Curve), pd.Masked, len(pd.Fill))
	// Output:
	// 3 1 5
}
