package spill

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// DefaultDuration is used when Config.Duration is zero.
const DefaultDuration = 500 * time.Millisecond

// IntroIndex is the step index while the intro panel is showing.
const IntroIndex = -1

// Construction errors.
var (
	ErrNoSteps         = errors.New("spill: at least one step is required")
	ErrMissingCallback = errors.New("spill: missing required callback")
	ErrInvalidPosition = errors.New("spill: invalid image position")
)

// Callbacks are the events the engine emits. All three are required.
type Callbacks struct {
	OnComplete   func()          // Next pressed on the last step
	OnSkip       func()          // Explicit skip (close control, backdrop tap)
	OnStepChange func(index int) // Every index change, including back to the intro (-1)
}

// Config configures an Engine.
type Config struct {
	Positions []Position    // Image position of each step, in order
	Duration  time.Duration // Shared transition duration (default 500ms)
	Callbacks Callbacks
	Logger    *slog.Logger // Debug logging of transitions (optional)
}

// Viewport is the host surface the engine lays out against. The height
// comes from the screen Measure, not from here.
type Viewport struct {
	Width           float64
	Insets          Insets
	PlatformPadding float64
}

// Engine owns the step index and spill progress and derives frame geometry.
//
// States are NotStarted (index -1) and Step(0..N-1). Start moves from
// NotStarted to Step(0); Next advances or completes on the last step; Back
// retreats and returns to NotStarted from Step(0); Skip never changes state.
// Calls that have no valid transition from the current state are no-ops, since
// fast taps during an animation are expected.
type Engine struct {
	positions []Position
	duration  time.Duration
	callbacks Callbacks
	logger    *slog.Logger

	index int

	timeline *Timeline
	progress *Value
	imageY   *Value
	mounted  bool

	introPanel Measure
	stepPanel  Measure
	screen     Measure
	image      Measure
}

// NewEngine validates cfg and creates an Engine at the intro (index -1)
// with zero spill progress.
func NewEngine(cfg Config) (*Engine, error) {
	if len(cfg.Positions) == 0 {
		return nil, ErrNoSteps
	}
	for i, p := range cfg.Positions {
		if !p.Valid() {
			return nil, fmt.Errorf("%w: step %d has %q", ErrInvalidPosition, i, p)
		}
	}
	switch {
	case cfg.Callbacks.OnComplete == nil:
		return nil, fmt.Errorf("%w: OnComplete", ErrMissingCallback)
	case cfg.Callbacks.OnSkip == nil:
		return nil, fmt.Errorf("%w: OnSkip", ErrMissingCallback)
	case cfg.Callbacks.OnStepChange == nil:
		return nil, fmt.Errorf("%w: OnStepChange", ErrMissingCallback)
	}

	duration := cfg.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	positions := make([]Position, len(cfg.Positions))
	copy(positions, cfg.Positions)

	e := &Engine{
		positions: positions,
		duration:  duration,
		callbacks: cfg.Callbacks,
		logger:    logger,
		index:     IntroIndex,
		timeline:  NewTimeline(),
		progress:  NewValue(0),
		imageY:    NewValue(0),
	}
	e.timeline.Track(e.progress, e.imageY)

	return e, nil
}

// Start leaves the intro. Only valid at index -1.
func (e *Engine) Start() {
	if e.index != IntroIndex {
		return
	}

	e.progress.AnimateTo(1, e.duration)
	e.setIndex(0)
}

// Next advances one step. On the last step it fires OnComplete and leaves
// the index alone; the host is expected to tear the widget down.
func (e *Engine) Next() {
	if e.index == IntroIndex {
		return
	}

	if e.IsLast() {
		e.logger.Debug("onboarding complete", "index", e.index)
		e.callbacks.OnComplete()
		return
	}

	e.setIndex(e.index + 1)
}

// Back retreats one step. From step 0 it spills the background back and
// returns to the intro; the intro panel stays mounted so it is already
// measured while the spill animates back.
func (e *Engine) Back() {
	switch {
	case e.index == IntroIndex:
		return
	case e.index == 0:
		e.progress.AnimateTo(0, e.duration)
		e.setIndex(IntroIndex)
	default:
		e.setIndex(e.index - 1)
	}
}

// Skip fires OnSkip. The index is never touched.
func (e *Engine) Skip() {
	e.logger.Debug("onboarding skipped", "index", e.index)
	e.callbacks.OnSkip()
}

// HardwareBack maps a system back press. With a step active it behaves like
// Back and returns true. At the intro it returns false so the host can apply
// its default back behaviour; it does not fire OnSkip.
func (e *Engine) HardwareBack() bool {
	if e.index == IntroIndex {
		return false
	}
	e.Back()
	return true
}

func (e *Engine) setIndex(index int) {
	from := e.index
	e.index = index
	e.logger.Debug("step changed", "from", from, "to", index)
	e.callbacks.OnStepChange(index)
}

// CurrentIndex returns the step index, -1 while the intro is showing.
func (e *Engine) CurrentIndex() int {
	return e.index
}

// ActiveStep returns the active step index and whether a step is active.
func (e *Engine) ActiveStep() (int, bool) {
	return e.index, e.index >= 0
}

// IsLast reports whether the active step is the final one.
func (e *Engine) IsLast() bool {
	return e.index == len(e.positions)-1
}

// StepCount returns the number of steps.
func (e *Engine) StepCount() int {
	return len(e.positions)
}

// Duration returns the shared transition duration.
func (e *Engine) Duration() time.Duration {
	return e.duration
}

// Progress returns the current spill progress.
func (e *Engine) Progress() float64 {
	return e.progress.Current()
}

// SetLogger replaces the transition logger. A nil logger discards.
func (e *Engine) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	e.logger = logger
}

// Timeline returns the timeline the host must tick every frame.
func (e *Engine) Timeline() *Timeline {
	return e.timeline
}

// IntroPanel is the intro panel's height, written by the intro renderer.
func (e *Engine) IntroPanel() *Measure { return &e.introPanel }

// StepPanel is the active step panel's height, written by the step container.
func (e *Engine) StepPanel() *Measure { return &e.stepPanel }

// Screen is the onboarding surface height, written by the host.
func (e *Engine) Screen() *Measure { return &e.screen }

// Image is the rendered image height, written by the image renderer.
func (e *Engine) Image() *Measure { return &e.image }

// ImagePosition returns the position of the active step's image, or of the
// first step's image while the intro is showing.
func (e *Engine) ImagePosition() Position {
	if e.index >= 0 {
		return e.positions[e.index]
	}
	return e.positions[0]
}

// BottomPanelHeight returns the measured height of whichever bottom panel
// is visible.
func (e *Engine) BottomPanelHeight() float64 {
	if e.index >= 0 {
		return e.stepPanel.Height()
	}
	return e.introPanel.Height()
}

// Layout derives this frame's geometry and retargets the image offset.
//
// Until the surface (and, for bottom images, the image) has been measured
// the target is applied without animation, so the first visible paint does
// not fly in. After that every target change animates over the shared
// duration.
func (e *Engine) Layout(vp Viewport) Geometry {
	position := e.ImagePosition()
	_, active := e.ActiveStep()

	g := Compute(LayoutInput{
		Progress:          e.progress.Current(),
		ScreenWidth:       vp.Width,
		ScreenHeight:      e.screen.Height(),
		BottomPanelHeight: e.BottomPanelHeight(),
		ImageHeight:       e.image.Height(),
		SafeTop:           vp.Insets.Top,
		PlatformPadding:   vp.PlatformPadding,
		Position:          position,
		StepActive:        active,
	})

	if e.mounted {
		e.imageY.AnimateTo(g.ImageTargetY, e.duration)
	} else {
		e.imageY.Set(g.ImageTargetY)
		e.mounted = e.screen.Measured() && (position == PositionTop || e.image.Measured())
	}

	g.ImageY = e.imageY.Current()
	return g
}
