package decay_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-room/measure/decay"
)

func ExampleAnalyzer_Analyze() {
	sampleRate := 8000.0
	rate := 6.9078 / 0.5 // -60 dB at 0.5 s

	h := make([]float64, int(sampleRate*1.5))
	for i := range h {
		h[i] = math.Exp(-rate * float64(i) / sampleRate)
	}

	m, err := decay.NewAnalyzer(sampleRate).Analyze(h)
	if err != nil {
		panic(err)
	}

	fmt.Printf("EDT  = %.2f s\n", m.EDT)
	fmt.Printf("T30  = %.2f s\n", m.T30)

	// Output:
	// EDT  = 0.50 s
	// T30  = 0.50 s
}
