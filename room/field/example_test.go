package field_test

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-room/room/field"
)

func ExampleNormalize() {
	p := []float64{2, 4, 6, 10}
	var parts []string
	for _, v := range field.Normalize(p, 0) {
		parts = append(parts, fmt.Sprintf("%.3f", v))
	}
	fmt.Println(strings.Join(parts, " "))

	flat := field.Normalize([]float64{1, 1, 1}, 0)
	fmt.Println(flat)

	// Output:
	// 0.000 0.250 0.500 1.000
	// [0 0 0]
}
