package eqf_test

import (
	"fmt"

	"github.com/katalvlaran/seqfair/eqf"
)

// ExampleEQF builds a quantile function from a ten-point sample and
// queries the median and two off-knot quantiles.
func ExampleEQF() {
	q, err := eqf.NewEQF([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	median, _ := q.At(0.5)
	lo, _ := q.At(0.2)
	hi, _ := q.At(0.8)
	fmt.Printf("q(0.2)=%.1f q(0.5)=%.1f q(0.8)=%.1f\n", lo, median, hi)
	// Output:
	// q(0.2)=2.8 q(0.5)=5.5 q(0.8)=8.2
}

// ExampleECDF shows the step semantics of the empirical CDF.
func ExampleECDF() {
	e, err := eqf.NewECDF([]float64{1, 2, 2, 3})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("F(0)=%.2f F(2)=%.2f F(5)=%.2f\n", e.At(0), e.At(2), e.At(5))
	// Output:
	// F(0)=0.00 F(2)=0.75 F(5)=1.00
}
