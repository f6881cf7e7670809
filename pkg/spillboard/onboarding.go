package spillboard

import (
	"log/slog"
	"time"

	"github.com/BrandonKowalski/spillboard/pkg/spillboard/constants"
	"github.com/BrandonKowalski/spillboard/pkg/spillboard/internal"
	"github.com/BrandonKowalski/spillboard/pkg/spillboard/internal/hwback"
	"github.com/BrandonKowalski/spillboard/pkg/spillboard/internal/locale"
	"github.com/BrandonKowalski/spillboard/pkg/spillboard/spill"
	"github.com/veandco/go-sdl2/sdl"
)

// Onboarding is a configured onboarding flow. Create one with New and show
// it with Run.
type Onboarding struct {
	props     Props
	engine    *spill.Engine
	container *spill.Container
	catalog   *locale.Catalog
	insets    InsetsProvider
	logger    *slog.Logger

	allowOverlay bool
	presentation spill.Presentation
	hits         hitRegions
	warned       map[string]bool

	inputDelay time.Duration
	lastInput  time.Time

	result *Result
}

// New validates props and builds the flow at the intro. No SDL resources are
// touched until Run, and the Init options (locale, overlay, logging) are read
// again when Run starts, so New may be called before Init.
func New(props Props) (*Onboarding, error) {
	if err := props.Validate(); err != nil {
		return nil, err
	}

	catalog, err := locale.New(current.locale)
	if err != nil {
		return nil, NewInfrastructureError("load_locale", err)
	}

	o := &Onboarding{
		props:        props,
		catalog:      catalog,
		insets:       props.Insets,
		logger:       internalLogger(),
		allowOverlay: current.allowOverlay,
		warned:       make(map[string]bool),
		inputDelay:   constants.DefaultInputDelay,
	}
	if o.insets == nil {
		o.insets = zeroInsets{}
	}

	engine, err := spill.NewEngine(spill.Config{
		Positions: props.positions(),
		Duration:  props.duration(),
		Callbacks: spill.Callbacks{
			OnComplete:   o.handleComplete,
			OnSkip:       o.handleSkip,
			OnStepChange: o.handleStepChange,
		},
		Logger: o.logger,
	})
	if err != nil {
		return nil, &ConfigError{Field: "Props", Reason: "engine", Err: err}
	}

	o.engine = engine
	o.container = spill.NewContainer(engine.Timeline(), engine.Duration(), props.ShowCloseButton)

	return o, nil
}

// CurrentIndex returns the active step, -1 while the intro is showing.
func (o *Onboarding) CurrentIndex() int {
	return o.engine.CurrentIndex()
}

// Run shows the onboarding and blocks until it completes, is skipped or is
// dismissed. The Props callbacks fire as usual; the Result repeats how the
// run ended.
func (o *Onboarding) Run() (*Result, error) {
	if !current.initialized || internal.GetWindow() == nil {
		return nil, ErrNotInitialized
	}

	if err := o.applySettings(); err != nil {
		return nil, err
	}

	window := internal.GetWindow()
	canvas := internal.NewCanvas(window.Renderer)
	defer canvas.Destroy()

	themes := internal.NewThemeCache(current.baseTheme)
	theme, err := themes.Resolve(o.props.Theme, o.insets.Insets())
	if err != nil {
		return nil, &ConfigError{Field: "Theme", Reason: "colour", Err: err}
	}
	if err := o.checkFonts(theme); err != nil {
		return nil, err
	}

	back := o.startBackListener()
	if back != nil {
		defer func() {
			if err := back.Stop(); err != nil {
				o.logger.Warn("Failed to close back button device", "error", err)
			}
		}()
	}

	lastFrame := time.Now()

	for o.result == nil {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			o.handleInput(internal.TranslateEvent(event))
		}
		o.drainBackListener(back)

		now := time.Now()
		dt := min(now.Sub(lastFrame), constants.MaxFrameDelta)
		lastFrame = now

		if err := o.frame(window, canvas, themes, dt); err != nil {
			return nil, err
		}
		window.Present()
	}

	o.logger.Debug("Onboarding finished", "action", o.result.Action.String(), "index", o.result.LastIndex)
	return o.result, nil
}

// applySettings picks up the options given to Init.
func (o *Onboarding) applySettings() error {
	catalog, err := locale.New(current.locale)
	if err != nil {
		return NewInfrastructureError("load_locale", err)
	}
	o.catalog = catalog
	o.allowOverlay = current.allowOverlay
	o.logger = internalLogger()
	o.engine.SetLogger(o.logger)
	return nil
}

func (o *Onboarding) startBackListener() *hwback.Listener {
	if current.backDevicePath == "" {
		return nil
	}
	l, err := hwback.Open(current.backDevicePath, o.logger)
	if err != nil {
		o.logger.Warn("Hardware back button unavailable", "device", current.backDevicePath, "error", err)
		return nil
	}
	l.Start()
	return l
}

func (o *Onboarding) drainBackListener(l *hwback.Listener) {
	if l == nil {
		return
	}
	for n := l.Drain(); n > 0 && o.result == nil; n-- {
		o.handleNav(constants.NavHardwareBack)
	}
}

// checkFonts fails early when a default panel would need a font that was
// never configured.
func (o *Onboarding) checkFonts(theme Theme) error {
	var roles []internal.FontRole

	if _, ok := o.props.Intro.(IntroProps); ok {
		roles = append(roles, internal.FontIntroTitle, internal.FontIntroSubtitle, internal.FontIntroButton)
	}
	for _, step := range o.props.Steps {
		if _, ok := step.(DefaultStep); ok {
			roles = append(roles, internal.FontStepLabel, internal.FontStepTitle, internal.FontStepDescription,
				internal.FontStepButton, internal.FontPrimaryButton)
			break
		}
	}
	if o.props.ShowControlHints || o.props.ShowStepCounter {
		roles = append(roles, internal.FontSecondaryButton)
	}

	for _, role := range roles {
		if theme.Font(role) == "" {
			return &ConfigError{Field: "FontPath", Reason: "required", Err: errNoFont(role)}
		}
	}
	return nil
}

func (o *Onboarding) handleComplete() {
	o.finish(ActionCompleted)
	o.props.OnComplete()
}

func (o *Onboarding) handleSkip() {
	o.finish(ActionSkipped)
	o.props.OnSkip()
}

func (o *Onboarding) handleStepChange(index int) {
	o.container.Sync(index, index >= 0)
	o.props.OnStepChange(index)
}

func (o *Onboarding) finish(action Action) {
	if o.result != nil {
		return
	}
	o.result = &Result{Action: action, LastIndex: o.engine.CurrentIndex()}
}

func (o *Onboarding) handleInput(ev internal.InputEvent) {
	switch ev.Kind {
	case internal.InputQuit:
		o.finish(ActionDismissed)
	case internal.InputButton:
		now := time.Now()
		if now.Sub(o.lastInput) < o.inputDelay {
			return
		}
		o.lastInput = now
		action := constants.DefaultNavAction(ev.Button)
		o.logger.Debug("Button pressed", "button", ev.Button.GetName())
		o.handleNav(action)
	case internal.InputTap:
		o.handleTap(ev.X, ev.Y)
	}
}

func (o *Onboarding) handleNav(action constants.NavAction) {
	if o.result != nil {
		return
	}

	switch action {
	case constants.NavForward:
		if o.engine.CurrentIndex() == spill.IntroIndex {
			o.engine.Start()
		} else {
			o.engine.Next()
		}
	case constants.NavBack:
		o.engine.Back()
	case constants.NavSkip:
		o.engine.Skip()
	case constants.NavHardwareBack:
		if !o.engine.HardwareBack() {
			o.finish(ActionDismissed)
		}
	}
}

// handleTap routes a tap in window coordinates. A tap on the backdrop skips;
// anything else is matched against this frame's hit regions.
func (o *Onboarding) handleTap(x, y float64) {
	if o.result != nil {
		return
	}
	if o.presentation.BackdropHit(x, y) {
		o.engine.Skip()
		return
	}
	cx, cy := o.presentation.ToContent(x, y)
	o.hits.tap(int32(cx), int32(cy))
}
