package spill

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	changes   []int
	completes int
	skips     int
}

func (r *recorder) callbacks() Callbacks {
	return Callbacks{
		OnComplete:   func() { r.completes++ },
		OnSkip:       func() { r.skips++ },
		OnStepChange: func(i int) { r.changes = append(r.changes, i) },
	}
}

func newTestEngine(t *testing.T, positions ...Position) (*Engine, *recorder) {
	t.Helper()
	rec := &recorder{}
	e, err := NewEngine(Config{Positions: positions, Callbacks: rec.callbacks()})
	require.NoError(t, err)
	return e, rec
}

func threeSteps(t *testing.T) (*Engine, *recorder) {
	return newTestEngine(t, PositionTop, PositionBottom, PositionTop)
}

func TestNewEngineValidation(t *testing.T) {
	t.Parallel()

	valid := (&recorder{}).callbacks()

	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{
			name: "no steps",
			cfg:  Config{Callbacks: valid},
			want: ErrNoSteps,
		},
		{
			name: "bad position",
			cfg:  Config{Positions: []Position{PositionTop, "middle"}, Callbacks: valid},
			want: ErrInvalidPosition,
		},
		{
			name: "missing complete",
			cfg: Config{Positions: []Position{PositionTop}, Callbacks: Callbacks{
				OnSkip: func() {}, OnStepChange: func(int) {},
			}},
			want: ErrMissingCallback,
		},
		{
			name: "missing skip",
			cfg: Config{Positions: []Position{PositionTop}, Callbacks: Callbacks{
				OnComplete: func() {}, OnStepChange: func(int) {},
			}},
			want: ErrMissingCallback,
		},
		{
			name: "missing step change",
			cfg: Config{Positions: []Position{PositionTop}, Callbacks: Callbacks{
				OnComplete: func() {}, OnSkip: func() {},
			}},
			want: ErrMissingCallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, err := NewEngine(tt.cfg)
			require.ErrorIs(t, err, tt.want)
			require.Nil(t, e)
		})
	}
}

func TestNewEngineDefaults(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t, PositionTop)
	assert.Equal(t, IntroIndex, e.CurrentIndex())
	assert.Equal(t, DefaultDuration, e.Duration())
	assert.Zero(t, e.Progress())
	assert.Equal(t, 1, e.StepCount())

	_, active := e.ActiveStep()
	assert.False(t, active)
}

func TestForwardScenario(t *testing.T) {
	t.Parallel()

	e, rec := threeSteps(t)

	e.Start()
	assert.Equal(t, 0, e.CurrentIndex())
	assert.Equal(t, []int{0}, rec.changes)

	e.Next()
	assert.Equal(t, 1, e.CurrentIndex())
	e.Next()
	assert.Equal(t, 2, e.CurrentIndex())
	assert.True(t, e.IsLast())

	e.Next()
	assert.Equal(t, 2, e.CurrentIndex(), "completion must not move the index")
	assert.Equal(t, 1, rec.completes)
	assert.Equal(t, []int{0, 1, 2}, rec.changes)
}

func TestBackScenario(t *testing.T) {
	t.Parallel()

	e, rec := threeSteps(t)
	e.Start()
	e.Next()
	e.Next()
	rec.changes = nil

	e.Back()
	assert.Equal(t, 1, e.CurrentIndex())
	e.Back()
	assert.Equal(t, 0, e.CurrentIndex())
	e.Back()
	assert.Equal(t, IntroIndex, e.CurrentIndex())
	assert.Equal(t, []int{1, 0, -1}, rec.changes)

	e.Back()
	assert.Equal(t, IntroIndex, e.CurrentIndex(), "back at the intro is a no-op")
	assert.Equal(t, []int{1, 0, -1}, rec.changes)
}

func TestSkipNeverMovesIndex(t *testing.T) {
	t.Parallel()

	e, rec := threeSteps(t)
	e.Start()
	e.Next()

	e.Skip()
	assert.Equal(t, 1, e.CurrentIndex())
	assert.Equal(t, 1, rec.skips)

	e.Skip()
	assert.Equal(t, 2, rec.skips)
	assert.Equal(t, []int{0, 1}, rec.changes)
}

func TestStartIsIdempotent(t *testing.T) {
	t.Parallel()

	e, rec := threeSteps(t)
	e.Start()
	e.Start()

	assert.Equal(t, 0, e.CurrentIndex())
	assert.Equal(t, []int{0}, rec.changes)
}

func TestNextBeforeStartIsNoop(t *testing.T) {
	t.Parallel()

	e, rec := threeSteps(t)
	e.Next()

	assert.Equal(t, IntroIndex, e.CurrentIndex())
	assert.Empty(t, rec.changes)
	assert.Zero(t, rec.completes)
}

func TestCompletesAfterEveryStep(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 8; n++ {
		positions := make([]Position, n)
		for i := range positions {
			positions[i] = PositionTop
			if i%2 == 1 {
				positions[i] = PositionBottom
			}
		}

		e, rec := newTestEngine(t, positions...)
		e.Start()
		for i := 0; i < n; i++ {
			e.Next()
		}

		want := make([]int, n)
		for i := range want {
			want[i] = i
		}
		assert.Equal(t, 1, rec.completes, "n=%d", n)
		assert.Equal(t, want, rec.changes, "n=%d", n)
	}
}

func TestHardwareBack(t *testing.T) {
	t.Parallel()

	e, rec := threeSteps(t)
	assert.False(t, e.HardwareBack(), "intro is left to the host")
	assert.Zero(t, rec.skips)

	e.Start()
	e.Next()
	assert.True(t, e.HardwareBack())
	assert.Equal(t, 0, e.CurrentIndex())
	assert.True(t, e.HardwareBack())
	assert.Equal(t, IntroIndex, e.CurrentIndex())
	assert.False(t, e.HardwareBack())
	assert.Zero(t, rec.skips)
}

func TestProgressFollowsStartAndBack(t *testing.T) {
	t.Parallel()

	e, _ := threeSteps(t)
	e.Start()
	assert.Zero(t, e.Progress(), "start only sets the target")

	e.Timeline().Tick(e.Duration() / 2)
	mid := e.Progress()
	assert.Greater(t, mid, 0.5, "ease-out is past halfway at half time")
	assert.Less(t, mid, 1.0)

	e.Timeline().Tick(e.Duration())
	assert.Equal(t, 1.0, e.Progress())

	e.Next()
	e.Timeline().Tick(e.Duration())
	assert.Equal(t, 1.0, e.Progress(), "step changes keep the background spilled")

	e.Back()
	e.Back()
	e.Timeline().Tick(e.Duration())
	assert.Zero(t, e.Progress())
}

func TestBackInterruptsStart(t *testing.T) {
	t.Parallel()

	e, _ := threeSteps(t)
	e.Start()
	e.Timeline().Tick(e.Duration() / 4)
	partial := e.Progress()
	require.Greater(t, partial, 0.0)

	e.Back()
	e.Timeline().Tick(time.Millisecond)
	assert.LessOrEqual(t, e.Progress(), partial, "retarget starts from the current value")

	e.Timeline().Tick(e.Duration())
	assert.Zero(t, e.Progress())
}

func TestBottomPanelHeightFollowsState(t *testing.T) {
	t.Parallel()

	e, _ := threeSteps(t)
	e.IntroPanel().Report(300)
	e.StepPanel().Report(200)

	assert.Equal(t, 300.0, e.BottomPanelHeight())
	e.Start()
	assert.Equal(t, 200.0, e.BottomPanelHeight())
}

func TestImagePosition(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t, PositionBottom, PositionTop)
	assert.Equal(t, PositionBottom, e.ImagePosition(), "intro shows the first step's image")

	e.Start()
	e.Next()
	assert.Equal(t, PositionTop, e.ImagePosition())
}

func TestLayoutFirstPaintIsImmediate(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t, PositionTop, PositionBottom)
	e.Screen().Report(800)
	e.Image().Report(100)
	e.IntroPanel().Report(300)
	e.StepPanel().Report(200)

	vp := Viewport{Width: 400, Insets: Insets{Top: 20}}

	g := e.Layout(vp)
	assert.Equal(t, 36.0, g.ImageTargetY)
	assert.Equal(t, 36.0, g.ImageY)

	e.Start()
	e.Next()

	g = e.Layout(vp)
	assert.Equal(t, 484.0, g.ImageTargetY)
	assert.Equal(t, 36.0, g.ImageY, "later target changes animate")

	e.Timeline().Tick(e.Duration() / 2)
	g = e.Layout(vp)
	assert.Greater(t, g.ImageY, 36.0)
	assert.Less(t, g.ImageY, 484.0)

	e.Timeline().Tick(e.Duration())
	g = e.Layout(vp)
	assert.InDelta(t, 484.0, g.ImageY, 1e-3)
}

func TestLayoutWaitsForScreenMeasurement(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t, PositionBottom)
	vp := Viewport{Width: 400}

	g := e.Layout(vp)
	assert.Equal(t, g.ImageTargetY, g.ImageY)

	e.Screen().Report(800)
	e.IntroPanel().Report(300)
	e.Image().Report(100)

	g = e.Layout(vp)
	assert.Equal(t, 384.0, g.ImageTargetY)
	assert.Equal(t, 384.0, g.ImageY, "nothing is painted before measurement, so no fly-in")
}

func TestSetLogger(t *testing.T) {
	t.Parallel()

	e, _ := threeSteps(t)

	var buf bytes.Buffer
	e.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	e.Start()
	assert.Contains(t, buf.String(), "step changed")

	e.SetLogger(nil)
	assert.NotPanics(t, e.Next)
}
