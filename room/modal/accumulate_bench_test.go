package modal

import (
	"context"
	"fmt"
	"testing"

	"github.com/cwbudde/algo-room/internal/testutil"
	"github.com/cwbudde/algo-room/room/geometry"
	"github.com/cwbudde/algo-room/room/mode"
)

func BenchmarkAccumulate(b *testing.B) {
	for _, res := range []int{32, 64} {
		g, err := geometry.NewGrid(testutil.ShoeboxRoom(), res)
		if err != nil {
			b.Fatal(err)
		}
		terms, _ := Prepare(testutil.ShoeboxRoom(), testutil.OffCenterSource(),
			mode.Collect(mode.Limits{NX: 5, NY: 5, NZ: 5}, mode.FilterAll), DefaultParams())

		b.Run(fmt.Sprintf("res%d", res), func(b *testing.B) {
			for range b.N {
				if _, err := Accumulate(context.Background(), g, terms, testDrive(), 0); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
