package spill_test

import (
	"fmt"

	"github.com/BrandonKowalski/spillboard/pkg/spillboard/spill"
)

// Example walks a three step onboarding forward to completion.
func Example() {
	engine, err := spill.NewEngine(spill.Config{
		Positions: []spill.Position{spill.PositionTop, spill.PositionBottom, spill.PositionTop},
		Callbacks: spill.Callbacks{
			OnComplete:   func() { fmt.Println("complete") },
			OnSkip:       func() { fmt.Println("skip") },
			OnStepChange: func(i int) { fmt.Println("step", i) },
		},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	engine.Start()
	engine.Next()
	engine.Next()
	engine.Next()
	fmt.Println("index", engine.CurrentIndex())

	// Output:
	// step 0
	// step 1
	// step 2
	// complete
	// index 2
}

// Example_back shows the return to the intro and the host-back asymmetry.
func Example_back() {
	engine, _ := spill.NewEngine(spill.Config{
		Positions: []spill.Position{spill.PositionTop, spill.PositionTop},
		Callbacks: spill.Callbacks{
			OnComplete:   func() {},
			OnSkip:       func() { fmt.Println("skip") },
			OnStepChange: func(i int) { fmt.Println("step", i) },
		},
	})

	engine.Start()
	engine.Next()
	engine.Back()
	fmt.Println("handled:", engine.HardwareBack())
	fmt.Println("handled:", engine.HardwareBack())

	// Output:
	// step 0
	// step 1
	// step 0
	// step -1
	// handled: true
	// handled: false
}

// ExampleCompute prints the unspilled background box of a 400x800 surface.
func ExampleCompute() {
	g := spill.Compute(spill.LayoutInput{
		ScreenWidth:       400,
		ScreenHeight:      800,
		BottomPanelHeight: 240,
		SafeTop:           24,
		Position:          spill.PositionTop,
	})
	fmt.Printf("%+v radius=%v\n", g.Background, g.CornerRadius)

	// Output:
	// {X:16 Y:24 W:368 H:536} radius=12
}
