// Command roomfield computes the acoustic pressure field of a rectangular
// room from its modal expansion, or from the statistical decay model above
// the crossover frequency.
//
// Usage:
//
//	roomfield field [flags]
//	roomfield modes [flags]
//	roomfield response [flags]
//
// Every flag can also be set in a TOML file (--config) or through
// ROOMFIELD_<SECTION>_<KEY> environment variables.
//
// Examples:
//
//	roomfield field --freq 63 --res 48
//	roomfield field --export --res 128 --out ./renders
//	roomfield modes --filter tangential --sort freq
//	roomfield response --rx 3.7 --ry 1.3 --rz 2.2 --zeta 0.03
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}
