//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/Question-jpeg/Pendulum/internal/canvas"
	"github.com/Question-jpeg/Pendulum/pendulum"
)

type SimConfig struct {
	Speed     *float64  `json:"speed"`     // ticks per frame, 1..100
	Rotation  *float64  `json:"rotation"`  // speed ratio of the second arm, 0..7
	L         []float64 `json:"L"`         // arm lengths [L1, L2]
	Style     string    `json:"style"`     // "line" or "dotted"
	LineWidth *float64  `json:"lineWidth"` // 0.5..5
}

// apply copies the fields present in cfg onto p.
func (cfg *SimConfig) apply(p *pendulum.Params) error {
	if cfg.Speed != nil {
		p.Speed = *cfg.Speed
	}
	if cfg.Rotation != nil {
		p.Coef = *cfg.Rotation
	}
	for i := 0; i < len(cfg.L) && i < 2; i++ {
		p.L[i] = cfg.L[i]
	}
	if cfg.Style != "" {
		s, ok := pendulum.ParseStyle(cfg.Style)
		if !ok {
			return fmt.Errorf("bad style %q", cfg.Style)
		}
		p.Style = s
	}
	if cfg.LineWidth != nil {
		p.LineWidth = *cfg.LineWidth
	}
	return nil
}

var sim *pendulum.Pendulum

func parseConfig(name string, args []js.Value) (*SimConfig, bool) {
	if len(args) < 1 {
		fmt.Println(name + ": need 1 arg (json)")
		return nil, false
	}
	var raw string
	if args[0].Type() == js.TypeString {
		raw = args[0].String()
	} else {
		raw = js.Global().Get("JSON").Call("stringify", args[0]).String()
	}
	var cfg SimConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		fmt.Println(name+": json error:", err)
		return nil, false
	}
	return &cfg, true
}

func pendulumInit(this js.Value, args []js.Value) interface{} {
	params := pendulum.DefaultParams()
	if len(args) > 0 {
		cfg, ok := parseConfig("pendulumInit", args)
		if !ok {
			return nil
		}
		if err := cfg.apply(&params); err != nil {
			fmt.Println("pendulumInit:", err)
			return nil
		}
	}
	sim = pendulum.New(params)
	return nil
}

func pendulumSet(this js.Value, args []js.Value) interface{} {
	if sim == nil {
		return nil
	}
	cfg, ok := parseConfig("pendulumSet", args)
	if !ok {
		return nil
	}
	params := sim.Params()
	if err := cfg.apply(&params); err != nil {
		fmt.Println("pendulumSet:", err)
		return nil
	}
	sim.SetSpeed(params.Speed)
	sim.SetCoef(params.Coef)
	sim.SetStyle(params.Style)
	sim.SetLineWidth(params.LineWidth)
	sim.SetArmLength(1, params.L[0])
	sim.SetArmLength(2, params.L[1])
	return nil
}

// pendulumFrame(w, h) advances one frame for a canvas of w x h.
func pendulumFrame(this js.Value, args []js.Value) interface{} {
	if sim == nil {
		return nil
	}
	if len(args) < 2 {
		return nil
	}
	sim.Update(pendulum.Size{W: args[0].Float(), H: args[1].Float()})
	return nil
}

func pendulumRun(this js.Value, args []js.Value) interface{} {
	if sim == nil {
		return nil
	}
	if len(args) >= 1 {
		sim.SetRunning(args[0].Truthy())
	}
	return sim.Running()
}

func pendulumErase(this js.Value, args []js.Value) interface{} {
	if sim != nil {
		sim.Erase()
	}
	return nil
}

func pendulumReset(this js.Value, args []js.Value) interface{} {
	if sim != nil {
		sim.Reset()
	}
	return nil
}

// pendulumGeometry returns
//
//	{rig: [x1, y1, x2, y2, r1, r2], active: d, pending: {id, d} | null,
//	 history: [id, ...]}
//
// with d in SVG path syntax. History is sent as ids only; JS keeps the
// pending batches it received and asks pendulumBatch for any id it lacks.
func pendulumGeometry(this js.Value, args []js.Value) interface{} {
	if sim == nil {
		return nil
	}
	f := sim.Geometry()

	obj := js.Global().Get("Object").New()
	r := f.Rig
	obj.Set("rig", js.ValueOf([]interface{}{
		r.Joint1.X, r.Joint1.Y, r.Joint2.X, r.Joint2.Y, r.Rotation1, r.Rotation2,
	}))
	obj.Set("active", canvas.SVGPath(f.Active))

	if f.Pending != nil {
		obj.Set("pending", entry(f.Pending.ID.String(), canvas.SVGPath(f.Pending.Path)))
	} else {
		obj.Set("pending", js.Null())
	}

	hist := js.Global().Get("Array").New(len(f.History))
	for i, e := range f.History {
		hist.SetIndex(i, e.ID.String())
	}
	obj.Set("history", hist)
	return obj
}

// pendulumBatch(id) returns the path data of a history batch, or null.
func pendulumBatch(this js.Value, args []js.Value) interface{} {
	if sim == nil || len(args) < 1 {
		return nil
	}
	id := args[0].String()
	for _, e := range sim.Trace().OldPaths() {
		if e.ID.String() == id {
			return canvas.SVGPath(e.Path)
		}
	}
	return nil
}

func entry(id, d string) js.Value {
	o := js.Global().Get("Object").New()
	o.Set("id", id)
	o.Set("d", d)
	return o
}

func registerCallbacks() {
	js.Global().Set("pendulumInit", js.FuncOf(pendulumInit))
	js.Global().Set("pendulumSet", js.FuncOf(pendulumSet))
	js.Global().Set("pendulumFrame", js.FuncOf(pendulumFrame))
	js.Global().Set("pendulumRun", js.FuncOf(pendulumRun))
	js.Global().Set("pendulumErase", js.FuncOf(pendulumErase))
	js.Global().Set("pendulumReset", js.FuncOf(pendulumReset))
	js.Global().Set("pendulumGeometry", js.FuncOf(pendulumGeometry))
	js.Global().Set("pendulumBatch", js.FuncOf(pendulumBatch))
}

func main() {
	c := make(chan struct{})
	registerCallbacks()
	<-c
}

// $env:GOOS="js"; $env:GOARCH="wasm"; go build -ldflags="-s -w" -gcflags="all=-trimpath=${PWD}" -asmflags="all=-trimpath=${PWD}" -o web/main.wasm ./cmd/wasm
