package permutations_test

import (
	"fmt"

	"github.com/katalvlaran/seqfair/permutations"
	"github.com/katalvlaran/seqfair/wasserstein"
)

// ExampleOrderings enumerates the column orderings for three sensitive
// attributes.
func ExampleOrderings() {
	orders, err := permutations.Orderings(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(orders), "orderings")
	fmt.Println(orders[0], orders[len(orders)-1])
	// Output:
	// 6 orderings
	// [0 1 2] [2 1 0]
}

// ExampleRunAll adjusts two correlated attributes in both possible
// orders and shows how stage names keep the original column identity.
func ExampleRunAll() {
	yCalib := []float64{0.6, 0.43, 0.32, 0.8, 0.55, 0.7}
	aCalib := [][]string{
		{"blue", "5"}, {"blue", "9"}, {"green", "5"},
		{"green", "9"}, {"blue", "5"}, {"green", "9"},
	}
	yTest := []float64{0.8, 0.35, 0.23, 0.2}
	aTest := [][]string{
		{"blue", "9"}, {"blue", "5"}, {"blue", "5"}, {"green", "9"},
	}

	results, err := permutations.RunAll(
		yCalib, aCalib, yTest, aTest,
		nil, &wasserstein.Options{Sigma: 0},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, res := range results {
		fmt.Println(res.Order, res.Trace.Names())
	}
	// Output:
	// [0 1] [Base model sens_var_1 sens_var_2]
	// [1 0] [Base model sens_var_2 sens_var_1]
}
