package spillboard

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/BrandonKowalski/spillboard/pkg/spillboard/spill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultStep(title string, position spill.Position) DefaultStep {
	return DefaultStep{
		Label:       "Step",
		Title:       title,
		Description: "Something worth knowing about " + title,
		ButtonLabel: "Continue",
		Image:       "images/" + title + ".png",
		Position:    position,
	}
}

func validProps() Props {
	return Props{
		Steps: []Step{
			defaultStep("a", PositionTop),
			defaultStep("b", PositionBottom),
		},
		Intro: IntroProps{
			Title:    "Welcome to",
			Subtitle: "Spillboard",
			Button:   "Get started",
		},
		OnComplete:   func() {},
		OnSkip:       func() {},
		OnStepChange: func(int) {},
	}
}

func TestPropsValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(p *Props)
		wantField string
		wantErr   error
	}{
		{
			name:   "valid",
			mutate: func(p *Props) {},
		},
		{
			name:      "no steps",
			mutate:    func(p *Props) { p.Steps = nil },
			wantField: "Steps",
			wantErr:   spill.ErrNoSteps,
		},
		{
			name:      "missing OnComplete",
			mutate:    func(p *Props) { p.OnComplete = nil },
			wantField: "OnComplete",
			wantErr:   spill.ErrMissingCallback,
		},
		{
			name:      "missing OnSkip",
			mutate:    func(p *Props) { p.OnSkip = nil },
			wantField: "OnSkip",
			wantErr:   spill.ErrMissingCallback,
		},
		{
			name:      "missing OnStepChange",
			mutate:    func(p *Props) { p.OnStepChange = nil },
			wantField: "OnStepChange",
			wantErr:   spill.ErrMissingCallback,
		},
		{
			name:      "missing intro",
			mutate:    func(p *Props) { p.Intro = nil },
			wantField: "Intro",
		},
		{
			name: "bad position",
			mutate: func(p *Props) {
				p.Steps[1] = defaultStep("b", "middle")
			},
			wantField: "Steps[1].Position",
			wantErr:   spill.ErrInvalidPosition,
		},
		{
			name: "blank title",
			mutate: func(p *Props) {
				s := defaultStep("a", PositionTop)
				s.Title = "   "
				p.Steps[0] = s
			},
			wantField: "Steps[0].Title",
		},
		{
			name: "step without label",
			mutate: func(p *Props) {
				s := defaultStep("a", PositionTop)
				s.Label = ""
				p.Steps[0] = s
			},
		},
		{
			name: "intro with only a button",
			mutate: func(p *Props) {
				p.Intro = IntroProps{Button: "Go"}
			},
		},
		{
			name: "missing image",
			mutate: func(p *Props) {
				s := defaultStep("a", PositionTop)
				s.Image = ""
				p.Steps[0] = s
			},
			wantField: "Steps[0].Image",
		},
		{
			name: "custom step without renderer",
			mutate: func(p *Props) {
				p.Steps[0] = CustomStep{Image: "x.png", Position: PositionTop}
			},
			wantField: "Steps[0].Render",
		},
		{
			name: "custom intro without renderer",
			mutate: func(p *Props) {
				p.Intro = CustomIntro{}
			},
			wantField: "Intro.Render",
		},
		{
			name: "intro without button",
			mutate: func(p *Props) {
				p.Intro = IntroProps{Title: "a", Subtitle: "b"}
			},
			wantField: "Intro.Button",
		},
		{
			name:      "negative duration",
			mutate:    func(p *Props) { p.AnimationDuration = -1 },
			wantField: "AnimationDuration",
		},
		{
			name: "bad theme colour",
			mutate: func(p *Props) {
				p.Theme.Colors.Background.Primary = "blue"
			},
			wantField: "Theme.Colors.Background.Primary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProps()
			tt.mutate(&p)

			err := p.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			require.True(t, IsConfigError(err))

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.wantField, cfgErr.Field)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestPropsMixedStepsAreValid(t *testing.T) {
	p := validProps()
	p.Steps = append(p.Steps, CustomStep{
		Render:   func(*StepContext) int32 { return 120 },
		Image:    "images/custom.png",
		Position: PositionBottom,
	})
	p.Intro = CustomIntro{Render: func(*IntroContext) int32 { return 200 }}

	require.NoError(t, p.Validate())
}

func TestPropsDuration(t *testing.T) {
	p := validProps()
	assert.Equal(t, spill.DefaultDuration, p.duration())

	p.AnimationDuration = 250_000_000
	assert.Equal(t, p.AnimationDuration, p.duration())
}

func TestThemeFileOverridesPassValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte("[colors.background]\nprimary = \"#FF6B00\"\n[colors.text]\ncontrast = \"#fff\"\n"), 0o644))

	theme, err := LoadThemeFile(path)
	require.NoError(t, err)

	p := validProps()
	p.Theme = theme
	require.NoError(t, p.Validate())

	require.NoError(t, os.WriteFile(path, []byte("[colors.background]\nprimary = \"FF6B00\"\n"), 0o644))
	_, err = LoadThemeFile(path)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}
