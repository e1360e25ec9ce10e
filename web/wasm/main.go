//go:build js && wasm

package main

import (
	"context"
	"syscall/js"

	"github.com/cwbudde/algo-room/room/engine"
	"github.com/cwbudde/algo-room/room/geometry"
	"github.com/cwbudde/algo-room/room/mode"
)

var (
	eng   *engine.Engine
	funcs []js.Func
)

func main() {
	api := js.Global().Get("Object").New()
	api.Set("init", export(func(args []js.Value) any {
		var opts []engine.Option
		if len(args) > 0 && args[0].Type() == js.TypeObject {
			o := args[0]
			if v := o.Get("speedOfSound"); v.Type() == js.TypeNumber {
				opts = append(opts, engine.WithSpeedOfSound(v.Float()))
			}
			if v := o.Get("workers"); v.Type() == js.TypeNumber {
				opts = append(opts, engine.WithWorkers(v.Int()))
			}
		}
		e, err := engine.New(opts...)
		if err != nil {
			return err.Error()
		}
		eng = e
		return js.Null()
	}))

	api.Set("defaults", export(func(_ []js.Value) any {
		return requestToJS(engine.DefaultRequest())
	}))

	api.Set("evaluate", export(func(args []js.Value) any {
		if eng == nil {
			return errorObject("engine not initialized")
		}
		req := engine.DefaultRequest()
		if len(args) > 0 && args[0].Type() == js.TypeObject {
			if err := requestFromJS(args[0], &req); err != nil {
				return errorObject(err.Error())
			}
		}

		res, err := eng.Evaluate(context.Background(), req)
		if err != nil {
			return errorObject(err.Error())
		}

		arr := js.Global().Get("Float32Array").New(len(res.Field))
		for i, v := range res.Field {
			arr.SetIndex(i, float32(v))
		}

		preview, truncated := res.SkippedPreview(40)
		skipped := js.Global().Get("Array").New(len(preview))
		for i, m := range preview {
			skipped.SetIndex(i, m.String())
		}

		out := js.Global().Get("Object").New()
		out.Set("field", arr)
		out.Set("resolution", res.Grid.Resolution)
		out.Set("regime", res.Regime.String())
		out.Set("quantity", res.Quantity)
		out.Set("skipped", skipped)
		out.Set("skippedTotal", len(res.Skipped))
		out.Set("skippedTruncated", truncated)
		out.Set("fingerprint", res.Fingerprint)
		out.Set("rt60", res.Diagnostics.RT60)
		return out
	}))

	js.Global().Set("RoomFieldDemo", api)
	select {}
}

func requestFromJS(o js.Value, req *engine.Request) error {
	num := func(key string, dst *float64) {
		if v := o.Get(key); v.Type() == js.TypeNumber {
			*dst = v.Float()
		}
	}
	integer := func(key string, dst *int) {
		if v := o.Get(key); v.Type() == js.TypeNumber {
			*dst = v.Int()
		}
	}
	boolean := func(key string, dst *bool) {
		if v := o.Get(key); v.Type() == js.TypeBoolean {
			*dst = v.Bool()
		}
	}

	num("lx", &req.Lx)
	num("ly", &req.Ly)
	num("lz", &req.Lz)
	req.Source = geometry.Point{X: req.Lx / 2, Y: req.Ly / 2, Z: req.Lz / 2}
	num("sx", &req.Source.X)
	num("sy", &req.Source.Y)
	num("sz", &req.Source.Z)
	num("zeta", &req.Zeta)
	num("freq", &req.FrequencyHz)
	num("crossover", &req.CrossoverHz)
	num("alpha", &req.Absorption)
	num("time", &req.TimeSeconds)
	integer("nx", &req.Limits.NX)
	integer("ny", &req.Limits.NY)
	integer("nz", &req.Limits.NZ)
	integer("res", &req.Resolution)
	boolean("animate", &req.Animate)
	boolean("highRes", &req.HighRes)

	if v := o.Get("filter"); v.Type() == js.TypeString {
		f, err := mode.ParseFilter(v.String())
		if err != nil {
			return err
		}
		req.Filter = f
	}

	return nil
}

func requestToJS(req engine.Request) js.Value {
	o := js.Global().Get("Object").New()
	o.Set("lx", req.Lx)
	o.Set("ly", req.Ly)
	o.Set("lz", req.Lz)
	o.Set("sx", req.Source.X)
	o.Set("sy", req.Source.Y)
	o.Set("sz", req.Source.Z)
	o.Set("nx", req.Limits.NX)
	o.Set("ny", req.Limits.NY)
	o.Set("nz", req.Limits.NZ)
	o.Set("filter", req.Filter.String())
	o.Set("zeta", req.Zeta)
	o.Set("freq", req.FrequencyHz)
	o.Set("crossover", req.CrossoverHz)
	o.Set("alpha", req.Absorption)
	o.Set("res", req.Resolution)
	o.Set("animate", req.Animate)
	o.Set("time", req.TimeSeconds)
	return o
}

func errorObject(msg string) js.Value {
	o := js.Global().Get("Object").New()
	o.Set("error", msg)
	return o
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
