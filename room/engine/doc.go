// Package engine evaluates the acoustic pressure field of a rectangular room
// for one drive frequency and one time sample.
//
// Below or at the crossover frequency the field is the modal Green's
// function sum from package modal, projected to |G| or to a time snapshot
// Re(G·e^{iωt}). Above it the room is treated statistically: the field is
// flat, or the Sabine energy decay exp(-6.91·t/RT60) when animated. Either
// way the result is normalized to [0, 1].
//
// # Usage
//
//	eng, err := engine.New(engine.WithWorkers(4))
//	req := engine.DefaultRequest()
//	res, err := eng.Evaluate(ctx, req)
//	fmt.Println(res.Regime, len(res.Field), len(res.Skipped))
//
// Every evaluation is independent; an Engine holds only immutable
// configuration and may be shared between goroutines.
package engine
