// Package spill is the transition engine behind the onboarding widget.
//
// It owns the step index, the background spill progress and the image's
// animated vertical offset, and it derives every piece of frame geometry
// from measured panel heights. Nothing in this package touches SDL: the
// host render loop feeds it measurements and ticks, and reads geometry back.
//
// # Basic Usage
//
//	engine, err := spill.NewEngine(spill.Config{
//	    Positions: []spill.Position{spill.PositionTop, spill.PositionBottom},
//	    Callbacks: spill.Callbacks{
//	        OnComplete:   func() { done = true },
//	        OnSkip:       func() { skipped = true },
//	        OnStepChange: func(i int) { log.Println("step", i) },
//	    },
//	})
//
//	// every frame:
//	engine.Timeline().Tick(dt)
//	engine.Screen().Report(screenHeight)
//	geometry := engine.Layout(spill.Viewport{Width: w, Insets: insets})
//	// ... draw, then report the heights the panels actually used
//	engine.IntroPanel().Report(introHeight)
//
// # Animation
//
// The engine never advances animations on its own. It only sets targets and
// durations on [Value]s registered with a [Timeline]; the host ticks the
// timeline once per frame. Setting a new target on a running value retargets
// it from wherever it currently is.
//
// # Geometry
//
// [Compute] is a pure function of progress, measured heights and viewport
// size. [Engine.Layout] feeds it the engine's current state and animates the
// image towards the resulting target offset.
package spill
